// Package cmd implements the command-line interface for codecharm.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/codecharm-icons/codecharm/color"
	"github.com/codecharm-icons/codecharm/constant"
	"github.com/codecharm-icons/codecharm/glyph"
	"github.com/codecharm-icons/codecharm/key"
	"github.com/codecharm-icons/codecharm/log"
	"github.com/codecharm-icons/codecharm/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("glyphs", "G", "", "Set the status glyph style (emoji, nerd, plain, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("glyphs", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return glyph.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.CliGlyphs, rootCmd.PersistentFlags().Lookup("glyphs")))

	rootCmd.PersistentFlags().StringP("output", "o", "", "Directory every generated artifact is written under")
	lo.Must0(viper.BindPFlag(key.OutputRoot, rootCmd.PersistentFlags().Lookup("output")))
}

// rootCmd defines the entry point for the codecharm application.
var rootCmd = &cobra.Command{
	Use:   constant.Codecharm,
	Short: "Icon theme generator for editors and IDEs",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Purple).Render("    - Icon theme generator for editors and IDEs"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)(glyph.Get(glyph.Fail)), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
