package definition

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/codecharm-icons/codecharm/filesystem"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed definitions.yaml
var embeddedDefinitions []byte

// Validation errors.
var (
	ErrEmptyName      = errors.New("entry without a name")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrMissingPalette = errors.New("missing palette")
	ErrInvalidColor   = errors.New("invalid color")
)

// document is the on-disk shape of a definition table.
type document struct {
	Palettes map[string]map[Role]string `yaml:"palettes"`
	Icons    []IconEntry                `yaml:"icons"`
	Folders  []FolderEntry              `yaml:"folders"`
}

// Embedded parses the definition table compiled into the binary.
func Embedded() (*Table, error) {
	return Parse(embeddedDefinitions)
}

// Load reads and parses a YAML definition table.
func Load(path string) (*Table, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definitions: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML definition table.
func Parse(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse definitions: %w", err)
	}

	table := &Table{
		Icons:    doc.Icons,
		Folders:  doc.Folders,
		Palettes: make(map[Variant]Palette, len(doc.Palettes)),
	}

	for name, colors := range doc.Palettes {
		v, err := ParseVariant(name)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		table.Palettes[v] = Palette{Variant: v, Colors: colors}
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Validate checks names and palettes, normalizes extensions and guarantees the default entries exist.
func (t *Table) Validate() error {
	seen := make(map[string]bool)
	for i, e := range t.Icons {
		if e.Name == "" {
			return fmt.Errorf("icon #%d: %w", i, ErrEmptyName)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: icon %q", ErrDuplicateEntry, e.Name)
		}
		seen[e.Name] = true
		t.Icons[i].Extensions = normalizeExtensions(e.Extensions)
		t.Icons[i].Filenames = lo.Compact(e.Filenames)
	}

	seen = make(map[string]bool)
	for i, e := range t.Folders {
		if e.Name == "" {
			return fmt.Errorf("folder #%d: %w", i, ErrEmptyName)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: folder %q", ErrDuplicateEntry, e.Name)
		}
		seen[e.Name] = true
		t.Folders[i].Aliases = lo.Compact(e.Aliases)
	}

	for _, v := range Variants() {
		palette, ok := t.Palettes[v]
		if !ok {
			return fmt.Errorf("%w for variant %q", ErrMissingPalette, v)
		}
		for role, c := range palette.Colors {
			if !hexColor.MatchString(c) {
				return fmt.Errorf("%w %q for role %q in palette %q", ErrInvalidColor, c, role, v)
			}
		}
	}

	if t.Icon(DefaultFile).IsAbsent() {
		t.Icons = append(t.Icons, IconEntry{Name: DefaultFile, Role: FallbackRole})
	}
	if t.Folder(DefaultFolder).IsAbsent() {
		t.Folders = append(t.Folders, FolderEntry{Name: DefaultFolder, Role: "folder"})
	}

	return nil
}

// normalizeExtensions strips leading dots and drops empty values.
func normalizeExtensions(exts []string) []string {
	return lo.Compact(lo.Map(exts, func(ext string, _ int) string {
		return strings.TrimPrefix(strings.TrimSpace(ext), ".")
	}))
}
