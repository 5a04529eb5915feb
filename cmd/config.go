package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/codecharm-icons/codecharm/color"
	"github.com/codecharm-icons/codecharm/config"
	"github.com/codecharm-icons/codecharm/definition"
	"github.com/codecharm-icons/codecharm/glyph"
	"github.com/codecharm-icons/codecharm/key"
	"github.com/codecharm-icons/codecharm/style"
	"github.com/codecharm-icons/codecharm/version"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func errUnknownKey(k string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
	return fmt.Errorf("unknown key %s, did you mean %s?", style.Fg(color.Red)(k), style.Fg(color.Yellow)(closest))
}

// lookupField returns the registered field for k.
func lookupField(k string) (config.Field, error) {
	field, ok := config.Default[k]
	if !ok {
		return config.Field{}, errUnknownKey(k)
	}
	return field, nil
}

// parseValue converts raw command-line values to the type of the field's default and validates them.
func parseValue(field config.Field, raw []string) (any, error) {
	var v any
	switch field.Value.(type) {
	case string:
		v = raw[0]
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %q", field.Key, raw[0])
		}
		v = b
	case []string:
		v = raw
	default:
		return nil, fmt.Errorf("%s cannot be set from the command line", field.Key)
	}

	if err := validateValue(field.Key, v); err != nil {
		return nil, err
	}
	return v, nil
}

// validateValue rejects values the generators would fail on later.
func validateValue(k string, v any) error {
	switch k {
	case key.GenerateVariants:
		_, err := definition.ParseVariants(v.([]string))
		return err
	case key.GenerateCollisions:
		_, err := definition.ParsePolicy(v.(string))
		return err
	case key.ProductVersion:
		_, err := version.Parse(v.(string))
		return err
	case key.CliGlyphs:
		if !lo.Contains(glyph.AvailableVariants(), v.(string)) {
			return fmt.Errorf("unknown glyph style %q", v)
		}
	}
	return nil
}

// persist writes the in-memory configuration, creating the file on first use.
func persist() error {
	if err := viper.WriteConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return viper.SafeWriteConfig()
		}
		return err
	}
	return nil
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd, configGetCmd, configSetCmd, configResetCmd)

	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	configInfoCmd.SetOut(os.Stdout)

	configResetCmd.Flags().BoolP("all", "a", false, "Restore every setting to its default")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change generator settings",
}

var configInfoCmd = &cobra.Command{
	Use:               "info [key...]",
	Short:             "Describe settings, their current values and defaults",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		fields := lo.Values(config.Default)
		if len(args) > 0 {
			fields = lo.Map(args, func(k string, _ int) config.Field {
				field, err := lookupField(k)
				handleErr(err)
				return field
			})
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i, field := range fields {
			cmd.Print(field.Pretty())
			if i < len(fields)-1 {
				cmd.Print("\n\n")
			}
		}
		cmd.Println()
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the current value of a setting",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		_, err := lookupField(args[0])
		handleErr(err)
		fmt.Println(viper.Get(args[0]))
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value...>",
	Short:             "Change a setting and save it to the config file",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := lookupField(args[0])
		handleErr(err)

		v, err := parseValue(field, args[1:])
		handleErr(err)

		viper.Set(field.Key, v)
		handleErr(persist())

		fmt.Printf("%s set %s to %s\n",
			style.Fg(color.Green)(glyph.Get(glyph.Success)),
			style.Fg(color.Purple)(field.Key),
			style.Fg(color.Yellow)(fmt.Sprint(v)),
		)
	},
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key]",
	Short:             "Restore a setting, or all of them, to the default",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		if all == (len(args) == 1) {
			handleErr(fmt.Errorf("pass either a key or --all"))
		}

		fields := lo.Values(config.Default)
		if !all {
			field, err := lookupField(args[0])
			handleErr(err)
			fields = []config.Field{field}
		}

		for _, field := range fields {
			viper.Set(field.Key, field.Value)
		}
		handleErr(persist())

		fmt.Printf("%s reset %s\n",
			style.Fg(color.Green)(glyph.Get(glyph.Success)),
			lo.Ternary(all, "all settings", style.Fg(color.Purple)(fields[0].Key)),
		)
	},
}
