// Package verify checks generated artifacts for completeness and internal consistency.
//
// The verifier only reads; it never repairs or rewrites what it finds.
package verify

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/codecharm-icons/codecharm/constant"
	"github.com/codecharm-icons/codecharm/definition"
	"github.com/codecharm-icons/codecharm/filesystem"
	"github.com/codecharm-icons/codecharm/theme"
	"github.com/codecharm-icons/codecharm/version"
	"github.com/samber/lo"
)

// Options locates the artifacts to check.
type Options struct {
	IconsDir   string
	ThemesDir  string
	Descriptor string
	Variants   []definition.Variant
	Product    definition.Product
}

// Severity classifies a finding.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "ok"
	}
}

// Section groups findings in the printed report.
type Section string

const (
	SectionIcons      Section = "icon directories"
	SectionThemes     Section = "theme manifests"
	SectionDescriptor Section = "package descriptor"
)

// Finding is one observation made while verifying.
type Finding struct {
	Section  Section
	Severity Severity
	Message  string
}

// Counts holds the per-variant numbers observed on disk.
type Counts struct {
	Files       int
	Folders     int
	Definitions int
}

// Report is the ordered result of a verification run.
type Report struct {
	Findings []Finding
	Counts   map[definition.Variant]*Counts
	Themes   int
}

func (r *Report) add(section Section, severity Severity, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Section: section, Severity: severity, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) count(severity Severity) int {
	return lo.CountBy(r.Findings, func(f Finding) bool { return f.Severity == severity })
}

// Errors returns the number of error findings.
func (r *Report) Errors() int {
	return r.count(SeverityError)
}

// Warnings returns the number of warning findings.
func (r *Report) Warnings() int {
	return r.count(SeverityWarning)
}

// OK reports whether the run found no errors.
func (r *Report) OK() bool {
	return r.Errors() == 0
}

// Run checks icon directories, theme manifests and the descriptor for every variant.
func Run(opts Options) *Report {
	r := &Report{Counts: make(map[definition.Variant]*Counts, len(opts.Variants))}
	for _, v := range opts.Variants {
		r.Counts[v] = &Counts{}
	}

	for _, v := range opts.Variants {
		checkIcons(r, opts, v)
	}
	for _, v := range opts.Variants {
		checkTheme(r, opts, v)
	}
	checkDescriptor(r, opts)

	return r
}

func countDir(dir string) (int, bool) {
	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return 0, false
	}
	return len(entries), true
}

func checkIcons(r *Report, opts Options, v definition.Variant) {
	for _, sub := range []string{constant.FilesDir, constant.FoldersDir} {
		dir := filepath.Join(opts.IconsDir, string(v), sub)
		n, ok := countDir(dir)
		if !ok {
			r.add(SectionIcons, SeverityError, "missing: %s", dir)
			continue
		}

		if sub == constant.FilesDir {
			r.Counts[v].Files = n
		} else {
			r.Counts[v].Folders = n
		}
		r.add(SectionIcons, SeverityOK, "%s/%s: %d icons", v, sub, n)
	}
}

func checkTheme(r *Report, opts Options, v definition.Variant) {
	name := opts.Product.ThemeFile(v)
	p := filepath.Join(opts.ThemesDir, name)

	exists, err := filesystem.API().Exists(p)
	if err != nil || !exists {
		r.add(SectionThemes, SeverityError, "missing: %s", name)
		return
	}

	m, err := theme.Read(p)
	if err != nil {
		r.add(SectionThemes, SeverityError, "%s", err)
		return
	}

	var missing []string
	if m.IconDefinitions == nil {
		missing = append(missing, "iconDefinitions")
	}
	if m.File == "" {
		missing = append(missing, "file")
	}
	if m.Folder == "" {
		missing = append(missing, "folder")
	}
	if m.FolderExpanded == "" {
		missing = append(missing, "folderExpanded")
	}
	if len(missing) > 0 {
		r.add(SectionThemes, SeverityError, "%s missing fields: %s", name, strings.Join(missing, ", "))
		return
	}

	r.Counts[v].Definitions = len(m.IconDefinitions)
	r.add(SectionThemes, SeverityOK, "%s: %d icon definitions", name, len(m.IconDefinitions))

	segment := "/" + string(v) + "/"
	mismatched := lo.CountBy(lo.Values(m.IconDefinitions), func(d theme.IconDefinition) bool {
		return !strings.Contains(d.IconPath, segment)
	})
	if mismatched > 0 {
		r.add(SectionThemes, SeverityWarning, "%s has %d icon paths outside %s", name, mismatched, segment)
	}

	if dangling := m.Dangling(); len(dangling) > 0 {
		r.add(SectionThemes, SeverityError, "%s references undefined icons: %s", name, strings.Join(dangling, ", "))
	}
}

func checkDescriptor(r *Report, opts Options) {
	name := filepath.Base(opts.Descriptor)

	exists, err := filesystem.API().Exists(opts.Descriptor)
	if err != nil || !exists {
		r.add(SectionDescriptor, SeverityError, "missing %s", name)
		return
	}

	d, err := theme.ReadDescriptor(opts.Descriptor)
	if err != nil {
		r.add(SectionDescriptor, SeverityError, "%s", err)
		return
	}

	if d.Contributes == nil || d.Contributes.IconThemes == nil {
		r.add(SectionDescriptor, SeverityError, "%s missing iconThemes contribution", name)
		return
	}

	if _, err := version.Parse(d.Version); err != nil {
		r.add(SectionDescriptor, SeverityWarning, "%s: %s", name, err)
	}

	r.Themes = len(d.Contributes.IconThemes)
	r.add(SectionDescriptor, SeverityOK, "%s: %d icon themes registered", name, r.Themes)

	for _, v := range opts.Variants {
		if id := opts.Product.ThemeID(v); !d.Registers(id) {
			r.add(SectionDescriptor, SeverityError, "theme %s not registered in %s", id, name)
		}
	}
}
