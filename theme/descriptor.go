package theme

import (
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/codecharm-icons/codecharm/definition"
	"github.com/codecharm-icons/codecharm/filesystem"
	"github.com/samber/lo"
)

// ThemeContribution registers one icon theme with the editor host.
type ThemeContribution struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Contributes is the host's contribution point section.
type Contributes struct {
	IconThemes []ThemeContribution `json:"iconThemes,omitempty"`
}

// Descriptor is the top-level package descriptor. Contributes is a pointer so a missing section is detectable.
type Descriptor struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Version     string       `json:"version"`
	Contributes *Contributes `json:"contributes,omitempty"`
}

// Registers reports whether the descriptor contains a theme entry with the given id.
func (d *Descriptor) Registers(id string) bool {
	if d.Contributes == nil {
		return false
	}
	return lo.ContainsBy(d.Contributes.IconThemes, func(c ThemeContribution) bool {
		return c.ID == id
	})
}

// contributionPath joins themesPath and file, marking paths that stay below the descriptor with "./".
func contributionPath(themesPath, file string) string {
	p := path.Join(themesPath, file)
	if p == ".." || strings.HasPrefix(p, "../") || path.IsAbs(p) {
		return p
	}
	return "./" + p
}

// NewDescriptor builds a descriptor registering one theme per variant.
// themesPath is the slash-separated path from the descriptor to the themes directory.
func NewDescriptor(product definition.Product, variants []definition.Variant, themesPath string) *Descriptor {
	return &Descriptor{
		Name:        product.Name + "-icons",
		DisplayName: product.DisplayName,
		Version:     product.Version,
		Contributes: &Contributes{
			IconThemes: lo.Map(variants, func(v definition.Variant, _ int) ThemeContribution {
				return ThemeContribution{
					ID:    product.ThemeID(v),
					Label: product.ThemeLabel(v),
					Path:  contributionPath(themesPath, product.ThemeFile(v)),
				}
			}),
		},
	}
}

// WriteDescriptor builds and writes the descriptor at descriptorPath, pointing at manifests in themesDir.
func WriteDescriptor(descriptorPath, themesDir string, product definition.Product, variants []definition.Variant) (*Descriptor, error) {
	rel, err := relSlash(filepath.Dir(descriptorPath), themesDir)
	if err != nil {
		return nil, fmt.Errorf("locate themes from descriptor: %w", err)
	}

	d := NewDescriptor(product, variants, rel)
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, err
	}

	if err := filesystem.API().MkdirAll(filepath.Dir(descriptorPath), 0o755); err != nil {
		return nil, err
	}
	if err := filesystem.API().WriteFile(descriptorPath, append(data, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", descriptorPath, err)
	}
	return d, nil
}

// ReadDescriptor parses a descriptor file.
func ReadDescriptor(p string) (*Descriptor, error) {
	data, err := filesystem.API().ReadFile(p)
	if err != nil {
		return nil, err
	}

	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(p), err)
	}
	return &d, nil
}
