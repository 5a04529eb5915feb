package cmd

import (
	"github.com/spf13/cobra"
)

// generator runs one or more pipeline stages against freshly loaded inputs.
func generator(stages ...func(*inputs) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		in, err := loadInputs()
		handleErr(err)

		for _, stage := range stages {
			handleErr(stage(in))
		}
	}
}

func init() {
	rootCmd.AddCommand(iconsCmd, themesCmd, packagesCmd, verifyCmd, allCmd)
}

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Render the SVG icon set of every configured variant",
	Args:  cobra.NoArgs,
	Run:   generator(generateIcons),
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Write the theme manifest of every variant and the package descriptor",
	Args:  cobra.NoArgs,
	Run:   generator(generateThemes),
}

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "Assemble the JetBrains, Sublime Text and Neovim packages from generated icons",
	Args:  cobra.NoArgs,
	Run:   generator(generatePackages),
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check generated icons, manifests and the descriptor",
	Long:  "Check generated icons, manifests and the descriptor. Exits with status 1 when any error is found.",
	Args:  cobra.NoArgs,
	Run:   generator(runVerify),
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate icons, themes and packages, then verify the result",
	Args:  cobra.NoArgs,
	Run:   generator(generateIcons, generateThemes, generatePackages, runVerify),
}
