package theme

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/codecharm-icons/codecharm/constant"
	"github.com/codecharm-icons/codecharm/definition"
	"github.com/codecharm-icons/codecharm/log"
	"github.com/sirupsen/logrus"
)

// DefaultIconPrefix is the icons directory as seen from the themes directory in the default layout.
const DefaultIconPrefix = "../icons"

// languageOverrides maps editor language ids that differ from the icon name.
var languageOverrides = []struct {
	LanguageID string
	IconID     string
}{
	{"javascriptreact", "react"},
	{"typescriptreact", "react-typescript"},
	{"shellscript", "shell"},
	{"dockerfile", "docker"},
	{"ignore", "git"},
}

// Options controls how manifests are derived.
type Options struct {
	// IconPrefix is the slash-separated path from the manifest to the icons root.
	IconPrefix string
	Policy     definition.Policy
}

func (o Options) iconPath(v definition.Variant, sub, file string) string {
	prefix := o.IconPrefix
	if prefix == "" {
		prefix = DefaultIconPrefix
	}
	return path.Join(prefix, string(v), sub, file+constant.SVGExt)
}

// FolderID returns the closed and open icon ids of a folder entry.
func FolderID(name string) (closed, open string) {
	return "folder-" + name, "folder-" + name + constant.OpenSuffix
}

// Build derives the manifest of one variant.
func Build(table *definition.Table, v definition.Variant, opts Options) (*Manifest, error) {
	logger := log.With(logrus.Fields{"variant": v})
	m := newManifest()

	m.IconDefinitions[RootFile] = IconDefinition{opts.iconPath(v, constant.FilesDir, definition.DefaultFile)}
	m.IconDefinitions[RootFolder] = IconDefinition{opts.iconPath(v, constant.FoldersDir, definition.DefaultFolder)}
	m.IconDefinitions[RootFolderOpen] = IconDefinition{opts.iconPath(v, constant.FoldersDir, definition.DefaultFolder+constant.OpenSuffix)}

	var extensions, filenames definition.Claims
	for _, e := range table.Icons {
		if e.IsDefault() {
			continue
		}
		m.IconDefinitions[e.Name] = IconDefinition{opts.iconPath(v, constant.FilesDir, e.Name)}
		for _, ext := range e.Extensions {
			extensions.Add(ext, e.Name, e.Priority)
		}
		for _, name := range e.Filenames {
			filenames.Add(name, e.Name, e.Priority)
		}
	}

	var folders, expanded definition.Claims
	for _, e := range table.Folders {
		if e.IsDefault() {
			continue
		}
		closed, open := FolderID(e.Name)
		m.IconDefinitions[closed] = IconDefinition{opts.iconPath(v, constant.FoldersDir, e.Name)}
		m.IconDefinitions[open] = IconDefinition{opts.iconPath(v, constant.FoldersDir, e.Name+constant.OpenSuffix)}
		for _, name := range e.Names() {
			folders.Add(name, closed, e.Priority)
			expanded.Add(name, open, e.Priority)
		}
	}

	var err error
	if m.FileExtensions, err = resolve(logger, "fileExtensions", &extensions, opts.Policy); err != nil {
		return nil, err
	}
	if m.FileNames, err = resolve(logger, "fileNames", &filenames, opts.Policy); err != nil {
		return nil, err
	}
	if m.FolderNames, err = resolve(logger, "folderNames", &folders, opts.Policy); err != nil {
		return nil, err
	}
	if m.FolderNamesExpanded, err = resolve(logger, "folderNamesExpanded", &expanded, opts.Policy); err != nil {
		return nil, err
	}

	for _, e := range table.Icons {
		if !e.IsDefault() {
			m.LanguageIds[e.Name] = e.Name
		}
	}
	for _, o := range languageOverrides {
		if _, ok := m.IconDefinitions[o.IconID]; !ok {
			logger.Warnf("skipping language override %s: no icon %q", o.LanguageID, o.IconID)
			continue
		}
		m.LanguageIds[o.LanguageID] = o.IconID
	}

	return m, nil
}

func resolve(logger *logrus.Entry, table string, claims *definition.Claims, policy definition.Policy) (map[string]string, error) {
	resolved, collisions, err := claims.Resolve(policy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", table, err)
	}
	for _, c := range collisions {
		logger.Warnf("%s: %s, %q wins", table, c, c.Winner)
	}
	return resolved, nil
}

// relSlash returns the slash-separated path from dir to target.
// Both are made absolute first so a relative and an absolute path can be combined.
func relSlash(dir, target string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absDir, absTarget)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// BuildOptions locates the output of BuildAll.
type BuildOptions struct {
	IconsDir  string
	ThemesDir string
	Variants  []definition.Variant
	Policy    definition.Policy
	Product   definition.Product
}

// BuildAll builds and writes the manifest of every variant, returning the written paths in order.
func BuildAll(table *definition.Table, opts BuildOptions) ([]string, error) {
	prefix, err := relSlash(opts.ThemesDir, opts.IconsDir)
	if err != nil {
		return nil, fmt.Errorf("locate icons from themes: %w", err)
	}

	written := make([]string, 0, len(opts.Variants))
	for _, v := range opts.Variants {
		m, err := Build(table, v, Options{IconPrefix: prefix, Policy: opts.Policy})
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", v, err)
		}

		p := filepath.Join(opts.ThemesDir, opts.Product.ThemeFile(v))
		if err := Write(m, p); err != nil {
			return nil, err
		}
		log.Infof("wrote %s with %d icon definitions", p, len(m.IconDefinitions))
		written = append(written, p)
	}
	return written, nil
}
