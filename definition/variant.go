// Package definition holds the declarative icon, folder and palette table every generator compiles from.
//
// A Table is loaded once, validated, and then passed explicitly to the builders;
// nothing in this package keeps mutable package-level state.
package definition

import (
	"errors"
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Variant is one named color scheme applied uniformly across the icon set.
type Variant string

const (
	Base  Variant = "base"
	Light Variant = "light"
	Soft  Variant = "soft"
	Warm  Variant = "warm"
)

// ErrUnknownVariant is returned for variant names outside of the fixed set.
var ErrUnknownVariant = errors.New("unknown variant")

// Variants returns every supported variant in canonical order.
func Variants() []Variant {
	return []Variant{Base, Light, Soft, Warm}
}

// Title returns the capitalized variant name used in labels.
func (v Variant) Title() string {
	if v == "" {
		return ""
	}
	s := string(v)
	return string(s[0]-'a'+'A') + s[1:]
}

// ParseVariant validates a variant name, suggesting the closest known one on failure.
func ParseVariant(name string) (Variant, error) {
	if lo.Contains(Variants(), Variant(name)) {
		return Variant(name), nil
	}

	closest := lo.MinBy(Variants(), func(a, b Variant) bool {
		return levenshtein.Distance(name, string(a)) < levenshtein.Distance(name, string(b))
	})
	return "", fmt.Errorf("%w %q, did you mean %q?", ErrUnknownVariant, name, closest)
}

// ParseVariants validates a list of names, keeping their order and dropping duplicates.
func ParseVariants(names []string) ([]Variant, error) {
	variants := make([]Variant, 0, len(names))
	for _, name := range lo.Uniq(names) {
		v, err := ParseVariant(name)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}
