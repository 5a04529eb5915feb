package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/codecharm-icons/codecharm/color"
	"github.com/codecharm-icons/codecharm/config"
	"github.com/codecharm-icons/codecharm/definition"
	"github.com/codecharm-icons/codecharm/style"
	"github.com/codecharm-icons/codecharm/util"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// listItem is one row of the definition table as printed by list.
type listItem struct {
	name     string
	role     definition.Role
	matchers []string
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("query", "q", "", "Fuzzy filter entries by name, or match an extension or filename exactly")
	listCmd.Flags().StringP("variant", "V", string(definition.Base), "Variant whose palette colors the swatches")
	listCmd.Flags().BoolP("folders", "f", false, "List folder entries instead of file icons")
	lo.Must0(listCmd.RegisterFlagCompletionFunc("variant", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(definition.Variants(), func(v definition.Variant, _ int) string { return string(v) }), cobra.ShellCompDirectiveNoFileComp
	}))
}

func listItems(table *definition.Table, folders bool) []listItem {
	if folders {
		return lo.Map(table.Folders, func(e definition.FolderEntry, _ int) listItem {
			return listItem{name: e.Name, role: e.Role, matchers: e.Aliases}
		})
	}
	return lo.Map(table.Icons, func(e definition.IconEntry, _ int) listItem {
		return listItem{
			name: e.Name,
			role: e.Role,
			matchers: append(
				lo.Map(e.Extensions, func(ext string, _ int) string { return "." + ext }),
				e.Filenames...,
			),
		}
	})
}

// filterItems keeps fuzzy name matches ordered by distance, followed by exact extension or filename matches.
func filterItems(items []listItem, query string) []listItem {
	if query == "" {
		return items
	}

	names := lo.Map(items, func(i listItem, _ int) string { return i.name })
	ranks := fuzzy.RankFindFold(query, names)
	sort.Stable(ranks)

	matched := lo.Map(ranks, func(r fuzzy.Rank, _ int) listItem { return items[r.OriginalIndex] })
	exact := lo.Filter(items, func(i listItem, _ int) bool {
		return lo.ContainsBy(i.matchers, func(m string) bool {
			return strings.EqualFold(strings.TrimPrefix(m, "."), strings.TrimPrefix(query, "."))
		})
	})

	return lo.UniqBy(append(matched, exact...), func(i listItem) string { return i.name })
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the entries of the definition table with their palette colors",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			query   = lo.Must(cmd.Flags().GetString("query"))
			folders = lo.Must(cmd.Flags().GetBool("folders"))
		)

		variant, err := definition.ParseVariant(lo.Must(cmd.Flags().GetString("variant")))
		handleErr(err)

		table, err := config.Table()
		handleErr(err)

		palette := table.Palette(variant)
		items := filterItems(listItems(table, folders), query)
		if len(items) == 0 {
			handleErr(fmt.Errorf("no entries match %q", query))
		}

		width := 80
		if w, _, err := util.TerminalSize(); err == nil && w > 0 {
			width = w
		}

		for _, item := range items {
			fmt.Printf("%s %s %s\n",
				style.Swatch(color.Role(palette, item.role)),
				style.Bold(item.name),
				style.Faint(string(item.role)),
			)
			if len(item.matchers) > 0 {
				fmt.Println(indent.String(wordwrap.String(strings.Join(item.matchers, " "), width-4), 3))
			}
		}

		fmt.Println()
		kind := lo.Ternary(folders, "folder", "icon")
		fmt.Println(style.Faint(util.Quantify(len(items), kind, kind+"s")))
	},
}
