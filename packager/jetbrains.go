package packager

import (
	"encoding/json"
	"encoding/xml"
	"os"
	"path"
	"path/filepath"

	"github.com/codecharm-icons/codecharm/constant"
	"github.com/codecharm-icons/codecharm/definition"
	"github.com/codecharm-icons/codecharm/filesystem"
)

// MappingFile is the extension mapping data referenced from plugin.xml.
const MappingFile = "CodeCharmIconMappings.json"

// SinceBuild is the oldest IDE build the plugin declares support for.
const SinceBuild = "213.0"

type ideaPlugin struct {
	XMLName     xml.Name    `xml:"idea-plugin"`
	ID          string      `xml:"id"`
	Name        string      `xml:"name"`
	Version     string      `xml:"version"`
	Vendor      string      `xml:"vendor"`
	Description cdata       `xml:"description"`
	IdeaVersion ideaVersion `xml:"idea-version"`
	Depends     []string    `xml:"depends"`
	Extensions  extensions  `xml:"extensions"`
}

type cdata struct {
	Text string `xml:",cdata"`
}

type ideaVersion struct {
	SinceBuild string `xml:"since-build,attr"`
}

type extensions struct {
	Namespace  string     `xml:"defaultExtensionNs,attr"`
	IconMapper iconMapper `xml:"iconMapper"`
}

type iconMapper struct {
	MappingFile string `xml:"mappingFile,attr"`
}

// JetBrains writes an IDE plugin with a plugin.xml descriptor and its mapping file.
type JetBrains struct {
	Product definition.Product
}

func (j *JetBrains) Name() string {
	return "jetbrains"
}

// Dir returns the plugin directory under out.
func (j *JetBrains) Dir(out string) string {
	return filepath.Join(out, "jetbrains", j.Product.Name+"-icons-jetbrains")
}

func (j *JetBrains) descriptor() ideaPlugin {
	return ideaPlugin{
		ID:          "com." + j.Product.Name + ".icons",
		Name:        j.Product.DisplayName,
		Version:     j.Product.Version,
		Vendor:      j.Product.DisplayName,
		Description: cdata{j.Product.DisplayName + " file and folder icons in four color variants."},
		IdeaVersion: ideaVersion{SinceBuild},
		Depends:     []string{"com.intellij.modules.platform"},
		Extensions: extensions{
			Namespace:  "com.intellij",
			IconMapper: iconMapper{MappingFile},
		},
	}
}

func (j *JetBrains) Package(src Source, out string) (*Result, error) {
	fs := filesystem.API()
	dir := j.Dir(out)

	variants, err := src.copyIcons(dir)
	if err != nil {
		return nil, err
	}

	mappings, err := src.Mappings()
	if err != nil {
		return nil, err
	}

	data := make(map[string]string, len(mappings))
	ref := src.Reference().OrElse(definition.Base)
	for _, m := range mappings {
		data[m.Extension] = "/" + path.Join("icons", string(ref), constant.FilesDir, m.Icon+constant.SVGExt)
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := fs.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	if err := fs.WriteFile(filepath.Join(dir, MappingFile), append(encoded, '\n'), 0o644); err != nil {
		return nil, err
	}

	plugin, err := xml.MarshalIndent(j.descriptor(), "", "  ")
	if err != nil {
		return nil, err
	}

	manifest := filepath.Join(dir, "META-INF", "plugin.xml")
	if err := fs.MkdirAll(filepath.Dir(manifest), os.ModePerm); err != nil {
		return nil, err
	}
	if err := fs.WriteFile(manifest, append([]byte(xml.Header), append(plugin, '\n')...), 0o644); err != nil {
		return nil, err
	}

	return &Result{
		Platform: j.Name(),
		Dir:      dir,
		Manifest: manifest,
		Variants: variants,
		Mappings: len(mappings),
	}, nil
}
