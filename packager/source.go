package packager

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/codecharm-icons/codecharm/constant"
	"github.com/codecharm-icons/codecharm/definition"
	"github.com/codecharm-icons/codecharm/filesystem"
	"github.com/codecharm-icons/codecharm/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Source is the generated icon tree packagers read from.
type Source struct {
	IconsDir string
	Variants []definition.Variant
}

// Mapping binds one file extension to a file icon of the reference variant.
type Mapping struct {
	Extension string
	Language  string
	Icon      string
}

// Present returns the variants whose icon directory exists, in source order.
func (s Source) Present() []definition.Variant {
	return lo.Filter(s.Variants, func(v definition.Variant, _ int) bool {
		exists, err := filesystem.API().DirExists(filepath.Join(s.IconsDir, string(v)))
		return err == nil && exists
	})
}

// Reference returns the variant packages point their mappings at, base when present.
func (s Source) Reference() mo.Option[definition.Variant] {
	present := s.Present()
	if lo.Contains(present, definition.Base) {
		return mo.Some(definition.Base)
	}
	if len(present) == 0 {
		return mo.None[definition.Variant]()
	}
	return mo.Some(present[0])
}

// Icons lists the file icon names of a variant from disk, sorted.
func (s Source) Icons(v definition.Variant) ([]string, error) {
	entries, err := filesystem.API().ReadDir(filepath.Join(s.IconsDir, string(v), constant.FilesDir))
	if err != nil {
		return nil, err
	}

	var icons []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != constant.SVGExt {
			continue
		}
		icons = append(icons, util.FileStem(entry.Name()))
	}

	sort.Strings(icons)
	return icons, nil
}

// Mappings derives the extension mappings from the reference variant, sorted by extension.
// The first icon in name order claims an extension.
func (s Source) Mappings() ([]Mapping, error) {
	ref, ok := s.Reference().Get()
	if !ok {
		return nil, nil
	}

	icons, err := s.Icons(ref)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	seen := make(map[string]bool)
	var mappings []Mapping
	for _, icon := range icons {
		extensions, ok := Extensions(icon)
		if !ok {
			continue
		}
		for _, ext := range extensions {
			if seen[ext] {
				continue
			}
			seen[ext] = true
			mappings = append(mappings, Mapping{Extension: ext, Language: LanguageOf(icon), Icon: icon})
		}
	}

	sort.Slice(mappings, func(i, j int) bool {
		return mappings[i].Extension < mappings[j].Extension
	})
	return mappings, nil
}

// copyIcons copies every present variant tree into <dst>/icons/<variant>.
func (s Source) copyIcons(dst string) ([]definition.Variant, error) {
	present := s.Present()
	for _, v := range present {
		if err := util.CopyDir(filepath.Join(s.IconsDir, string(v)), filepath.Join(dst, "icons", string(v))); err != nil {
			return nil, err
		}
	}
	return present, nil
}
