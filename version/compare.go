// Package version parses and compares the major.minor.patch versions written into package manifests.
package version

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Version is a parsed major.minor.patch triple.
type Version struct {
	Major, Minor, Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse reads a version such as 1.2.3 or v1.2.3. Anything after the patch number is rejected.
func Parse(s string) (Version, error) {
	var (
		v    Version
		rest string
	)

	n, _ := fmt.Sscanf(strings.TrimPrefix(s, "v"), "%d.%d.%d%s", &v.Major, &v.Minor, &v.Patch, &rest)
	if n != 3 || v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return Version{}, fmt.Errorf("invalid version %q, expected major.minor.patch", s)
	}
	return v, nil
}

// Compare performs a semantic comparison between two version strings.
// Returns 1 if a > b, -1 if a < b, and 0 if equal.
func Compare(a, b string) (int, error) {
	av, err := Parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := Parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range []lo.Tuple2[int, int]{
		{A: av.Major, B: bv.Major},
		{A: av.Minor, B: bv.Minor},
		{A: av.Patch, B: bv.Patch},
	} {
		if pair.A > pair.B {
			return 1, nil
		}

		if pair.A < pair.B {
			return -1, nil
		}
	}

	return 0, nil
}
