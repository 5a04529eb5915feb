// Package iconset writes the SVG icon files of every variant to disk.
package iconset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/codecharm-icons/codecharm/constant"
	"github.com/codecharm-icons/codecharm/definition"
	"github.com/codecharm-icons/codecharm/filesystem"
	"github.com/codecharm-icons/codecharm/log"
	"github.com/codecharm-icons/codecharm/svg"
	"github.com/sirupsen/logrus"
)

// Options locates the output and selects the variants to build.
type Options struct {
	Dir      string
	Variants []definition.Variant
}

// Count is the number of artifacts written for one variant.
type Count struct {
	Files   int
	Folders int
}

// Result reports what a build wrote, per variant in build order.
type Result struct {
	Variants []definition.Variant
	Counts   map[definition.Variant]Count
}

// Total returns the number of files written across all variants.
func (r *Result) Total() int {
	var total int
	for _, c := range r.Counts {
		total += c.Files + c.Folders
	}
	return total
}

// Path returns <dir>/<variant>/<files|folders>/<name>[-open].svg.
func Path(dir string, v definition.Variant, kind svg.Kind, name string) string {
	switch kind {
	case svg.Folder:
		return filepath.Join(dir, string(v), constant.FoldersDir, name+constant.SVGExt)
	case svg.FolderOpen:
		return filepath.Join(dir, string(v), constant.FoldersDir, name+constant.OpenSuffix+constant.SVGExt)
	default:
		return filepath.Join(dir, string(v), constant.FilesDir, name+constant.SVGExt)
	}
}

// Build renders every icon and folder entry of table for each variant.
// Output directories are created as needed; the first write failure aborts the build.
func Build(table *definition.Table, opts Options) (*Result, error) {
	result := &Result{Counts: make(map[definition.Variant]Count, len(opts.Variants))}

	for _, v := range opts.Variants {
		count, err := buildVariant(table, opts.Dir, v)
		if err != nil {
			return nil, fmt.Errorf("variant %s: %w", v, err)
		}
		result.Variants = append(result.Variants, v)
		result.Counts[v] = count
	}

	return result, nil
}

func buildVariant(table *definition.Table, dir string, v definition.Variant) (Count, error) {
	var count Count
	logger := log.With(logrus.Fields{"variant": v})
	palette := table.Palette(v)

	for _, sub := range []string{constant.FilesDir, constant.FoldersDir} {
		if err := filesystem.API().MkdirAll(filepath.Join(dir, string(v), sub), os.ModePerm); err != nil {
			return count, err
		}
	}

	for _, e := range table.Icons {
		if err := write(Path(dir, v, svg.File, e.Name), svg.RenderEntry(svg.File, e.Name, e.Role, palette)); err != nil {
			return count, err
		}
		count.Files++
	}

	for _, e := range table.Folders {
		for _, kind := range []svg.Kind{svg.Folder, svg.FolderOpen} {
			if err := write(Path(dir, v, kind, e.Name), svg.RenderEntry(kind, e.Name, e.Role, palette)); err != nil {
				return count, err
			}
			count.Folders++
		}
	}

	logger.Infof("generated %d file icons and %d folder icons", count.Files, count.Folders)
	return count, nil
}

func write(path, content string) error {
	log.Debugf("writing %s", path)
	if err := filesystem.API().WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
