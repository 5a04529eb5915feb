package packager

import (
	"encoding/json"
	"os"
	"path"
	"path/filepath"

	"github.com/codecharm-icons/codecharm/constant"
	"github.com/codecharm-icons/codecharm/definition"
	"github.com/codecharm-icons/codecharm/filesystem"
)

type sublimeTheme struct {
	Name      string            `json:"name"`
	Author    string            `json:"author"`
	Variables map[string]string `json:"variables"`
	Rules     []sublimeRule     `json:"rules"`
}

type sublimeRule struct {
	Class   string          `json:"class"`
	Parents []sublimeParent `json:"parents"`
	Layer0  sublimeLayer    `json:"layer0"`
}

type sublimeParent struct {
	Class      string   `json:"class"`
	Attributes []string `json:"attributes"`
}

type sublimeLayer struct {
	Texture string `json:"texture"`
}

// Sublime writes a Sublime Text package with a .sublime-theme manifest.
type Sublime struct {
	Product definition.Product
}

func (s *Sublime) Name() string {
	return "sublime"
}

// Dir returns the package directory under out.
func (s *Sublime) Dir(out string) string {
	return filepath.Join(out, "sublime", s.Product.DisplayName)
}

func (s *Sublime) Package(src Source, out string) (*Result, error) {
	fs := filesystem.API()
	dir := s.Dir(out)

	variants, err := src.copyIcons(dir)
	if err != nil {
		return nil, err
	}

	mappings, err := src.Mappings()
	if err != nil {
		return nil, err
	}

	ref := src.Reference().OrElse(definition.Base)
	theme := sublimeTheme{
		Name:      s.Product.DisplayName,
		Author:    s.Product.DisplayName,
		Variables: map[string]string{},
		Rules:     make([]sublimeRule, 0, len(mappings)),
	}
	for _, m := range mappings {
		theme.Rules = append(theme.Rules, sublimeRule{
			Class:   "icon_file_type",
			Parents: []sublimeParent{{Class: "tree_row", Attributes: []string{"*." + m.Extension}}},
			Layer0: sublimeLayer{
				Texture: path.Join("Packages", s.Product.DisplayName, "icons", string(ref), constant.FilesDir, m.Icon+constant.SVGExt),
			},
		})
	}

	encoded, err := json.MarshalIndent(theme, "", "  ")
	if err != nil {
		return nil, err
	}

	manifest := filepath.Join(dir, s.Product.DisplayName+".sublime-theme")
	if err := fs.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	if err := fs.WriteFile(manifest, append(encoded, '\n'), 0o644); err != nil {
		return nil, err
	}

	return &Result{
		Platform: s.Name(),
		Dir:      dir,
		Manifest: manifest,
		Variants: variants,
		Mappings: len(mappings),
	}, nil
}
