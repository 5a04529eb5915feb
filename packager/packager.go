// Package packager assembles editor-specific packages from the generated icon tree.
package packager

import (
	"fmt"

	"github.com/codecharm-icons/codecharm/definition"
	"github.com/codecharm-icons/codecharm/log"
	"github.com/sirupsen/logrus"
)

// Packager builds one platform package into an output root.
type Packager interface {
	Name() string
	Package(src Source, out string) (*Result, error)
}

// Result describes a written package.
type Result struct {
	Platform string
	Dir      string
	Manifest string
	Variants []definition.Variant
	Mappings int
}

// Packagers returns the supported packagers in build order.
func Packagers(product definition.Product) []Packager {
	return []Packager{
		&JetBrains{Product: product},
		&Sublime{Product: product},
		&Neovim{Product: product},
	}
}

// All runs every packager in order and stops at the first failure.
func All(src Source, out string, product definition.Product) ([]*Result, error) {
	var results []*Result
	for _, p := range Packagers(product) {
		result, err := p.Package(src, out)
		if err != nil {
			return results, fmt.Errorf("%s: %w", p.Name(), err)
		}

		log.With(logrus.Fields{
			"platform": result.Platform,
			"variants": len(result.Variants),
			"mappings": result.Mappings,
		}).Info("package written to " + result.Dir)
		results = append(results, result)
	}
	return results, nil
}
