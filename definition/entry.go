package definition

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Literal default entries; they back the root icon ids and never get their own mappings.
const (
	DefaultFile   = "file"
	DefaultFolder = "folder"
)

// IconEntry binds a file icon to a color role and the names it represents.
type IconEntry struct {
	Name       string   `yaml:"name" json:"name"`
	Role       Role     `yaml:"color" json:"color"`
	Extensions []string `yaml:"extensions,omitempty" json:"extensions,omitempty"`
	Filenames  []string `yaml:"files,omitempty" json:"files,omitempty"`
	Priority   int      `yaml:"priority,omitempty" json:"priority,omitempty"`
}

// IsDefault reports whether the entry is the literal default file icon.
func (e IconEntry) IsDefault() bool {
	return e.Name == DefaultFile
}

// FolderEntry binds a folder icon to a color role and the folder names it matches besides its own.
type FolderEntry struct {
	Name     string   `yaml:"name" json:"name"`
	Role     Role     `yaml:"color" json:"color"`
	Aliases  []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Priority int      `yaml:"priority,omitempty" json:"priority,omitempty"`
}

// IsDefault reports whether the entry is the literal default folder icon.
func (e FolderEntry) IsDefault() bool {
	return e.Name == DefaultFolder
}

// Names returns the entry's own name followed by its aliases, without duplicates.
func (e FolderEntry) Names() []string {
	return lo.Uniq(append([]string{e.Name}, e.Aliases...))
}

// Table is the full declarative input of a generation run. Entry order is declaration order.
type Table struct {
	Icons    []IconEntry
	Folders  []FolderEntry
	Palettes map[Variant]Palette
}

// Icon returns the icon entry with the given name.
func (t *Table) Icon(name string) mo.Option[IconEntry] {
	e, ok := lo.Find(t.Icons, func(e IconEntry) bool { return e.Name == name })
	return lo.Ternary(ok, mo.Some(e), mo.None[IconEntry]())
}

// Folder returns the folder entry with the given name.
func (t *Table) Folder(name string) mo.Option[FolderEntry] {
	e, ok := lo.Find(t.Folders, func(e FolderEntry) bool { return e.Name == name })
	return lo.Ternary(ok, mo.Some(e), mo.None[FolderEntry]())
}

// Palette returns the palette of a variant. A missing palette resolves every role to FallbackColor.
func (t *Table) Palette(v Variant) Palette {
	if p, ok := t.Palettes[v]; ok {
		return p
	}
	return Palette{Variant: v, Colors: map[Role]string{}}
}

// MissingRoles lists, per variant, the roles referenced by entries that its palette does not define.
// These are not errors: rendering falls back to FallbackRole.
func (t *Table) MissingRoles() map[Variant][]Role {
	referenced := lo.Uniq(append(
		lo.Map(t.Icons, func(e IconEntry, _ int) Role { return e.Role }),
		lo.Map(t.Folders, func(e FolderEntry, _ int) Role { return e.Role })...,
	))

	missing := make(map[Variant][]Role)
	for _, v := range Variants() {
		palette := t.Palette(v)
		absent := lo.Filter(referenced, func(r Role, _ int) bool {
			return palette.Lookup(r).IsAbsent()
		})
		if len(absent) > 0 {
			missing[v] = absent
		}
	}
	return missing
}
