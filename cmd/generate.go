package cmd

import (
	"fmt"
	"os"

	"github.com/codecharm-icons/codecharm/color"
	"github.com/codecharm-icons/codecharm/config"
	"github.com/codecharm-icons/codecharm/definition"
	"github.com/codecharm-icons/codecharm/glyph"
	"github.com/codecharm-icons/codecharm/iconset"
	"github.com/codecharm-icons/codecharm/packager"
	"github.com/codecharm-icons/codecharm/style"
	"github.com/codecharm-icons/codecharm/theme"
	"github.com/codecharm-icons/codecharm/util"
	"github.com/codecharm-icons/codecharm/verify"
	"github.com/codecharm-icons/codecharm/version"
	"github.com/codecharm-icons/codecharm/where"
)

// inputs gathers everything a generator reads from configuration.
type inputs struct {
	table    *definition.Table
	variants []definition.Variant
	policy   definition.Policy
	product  definition.Product
}

func loadInputs() (*inputs, error) {
	variants, err := config.Variants()
	if err != nil {
		return nil, err
	}

	policy, err := config.Policy()
	if err != nil {
		return nil, err
	}

	table, err := config.Table()
	if err != nil {
		return nil, err
	}

	product := config.Product()
	if _, err := version.Parse(product.Version); err != nil {
		return nil, fmt.Errorf("product version: %w", err)
	}

	return &inputs{
		table:    table,
		variants: variants,
		policy:   policy,
		product:  product,
	}, nil
}

func success(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(glyph.Get(glyph.Success)), fmt.Sprintf(format, args...))
}

func generateIcons(in *inputs) error {
	missing := in.table.MissingRoles()
	for _, v := range in.variants {
		if roles, ok := missing[v]; ok {
			fmt.Printf("%s %s palette lacks %v, using the %s color\n",
				style.Fg(color.Yellow)(glyph.Get(glyph.Warn)), v, roles, definition.FallbackRole)
		}
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Generating icons...", glyph.Get(glyph.Progress)))
	result, err := iconset.Build(in.table, iconset.Options{Dir: where.Icons(), Variants: in.variants})
	erase()
	if err != nil {
		return err
	}

	for _, v := range result.Variants {
		count := result.Counts[v]
		fmt.Printf("%s %s: %s, %s\n",
			style.Fg(color.Purple)(glyph.Get(glyph.Variant)),
			v,
			util.Quantify(count.Files, "file icon", "file icons"),
			util.Quantify(count.Folders, "folder icon", "folder icons"),
		)
	}
	success("Generated %s in %s", util.Quantify(result.Total(), "icon", "icons"), where.Icons())
	return nil
}

func generateThemes(in *inputs) error {
	written, err := theme.BuildAll(in.table, theme.BuildOptions{
		IconsDir:  where.Icons(),
		ThemesDir: where.Themes(),
		Variants:  in.variants,
		Policy:    in.policy,
		Product:   in.product,
	})
	if err != nil {
		return err
	}

	for _, p := range written {
		fmt.Printf("%s %s\n", style.Fg(color.Blue)(glyph.Get(glyph.Theme)), p)
	}

	if _, err := theme.WriteDescriptor(where.Descriptor(), where.Themes(), in.product, in.variants); err != nil {
		return err
	}
	success("Registered %s in %s", util.Quantify(len(in.variants), "theme", "themes"), where.Descriptor())
	return nil
}

func generatePackages(in *inputs) error {
	src := packager.Source{IconsDir: where.Icons(), Variants: in.variants}
	results, err := packager.All(src, where.Packages(), in.product)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("%s %s: %s\n",
			style.Fg(color.Cyan)(glyph.Get(glyph.Package)),
			r.Platform,
			r.Dir,
		)
	}
	success("Generated %s in %s", util.Quantify(len(results), "package", "packages"), where.Packages())
	return nil
}

func runVerify(in *inputs) error {
	report := verify.Run(verify.Options{
		IconsDir:   where.Icons(),
		ThemesDir:  where.Themes(),
		Descriptor: where.Descriptor(),
		Variants:   in.variants,
		Product:    in.product,
	})
	report.Print(os.Stdout)

	if !report.OK() {
		return fmt.Errorf("verification failed with %s", util.Quantify(report.Errors(), "error", "errors"))
	}
	return nil
}
