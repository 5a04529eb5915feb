package definition

import (
	"regexp"

	"github.com/samber/mo"
)

// Role is a semantic color key, e.g. "primary" or "warning", resolved per variant.
type Role string

const (
	// FallbackRole is used whenever an entry references a role its palette lacks.
	FallbackRole Role = "file"

	// FallbackColor is used when a palette lacks even the fallback role.
	FallbackColor = "#cba6f7"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Palette maps color roles to hex colors for one variant.
type Palette struct {
	Variant Variant
	Colors  map[Role]string
}

// Lookup returns the color bound to role, if any.
func (p Palette) Lookup(role Role) mo.Option[string] {
	if c, ok := p.Colors[role]; ok {
		return mo.Some(c)
	}
	return mo.None[string]()
}

// Resolve returns the color for role, falling back to FallbackRole and then FallbackColor.
// It never fails.
func (p Palette) Resolve(role Role) string {
	return p.Lookup(role).
		OrElse(p.Lookup(FallbackRole).
			OrElse(FallbackColor))
}
