package cmd

import (
	"fmt"

	"github.com/codecharm-icons/codecharm/filesystem"
	"github.com/codecharm-icons/codecharm/glyph"
	"github.com/codecharm-icons/codecharm/util"
	"github.com/codecharm-icons/codecharm/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a generated artifact eligible for removal.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"icon sets", "icons", mo.Some("i"), where.Icons},
	{"theme manifests", "themes", mo.Some("t"), where.Themes},
	{"platform packages", "packages", mo.Some("p"), where.Packages},
	{"package descriptor", "descriptor", mo.Some("d"), where.Descriptor},
	{"logs", "logs", mo.None[string](), where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolP("all", "a", false, "clear every generated artifact")
	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove generated artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool
		all := lo.Must(cmd.Flags().GetBool("all"))

		for _, target := range clearTargets {
			if !all && !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}
			if all && target.argLong == "logs" {
				continue
			}

			anyCleared = true
			location := target.location()
			if exists, _ := filesystem.API().Exists(location); !exists {
				continue
			}

			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", glyph.Get(glyph.Progress), target.name))
			err := util.Delete(location)
			e()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", glyph.Get(glyph.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
