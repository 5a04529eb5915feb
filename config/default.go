// Package config provides centralized management for generator settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/codecharm-icons/codecharm/color"
	"github.com/codecharm-icons/codecharm/constant"
	"github.com/codecharm-icons/codecharm/definition"
	"github.com/codecharm-icons/codecharm/key"
	"github.com/codecharm-icons/codecharm/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Codecharm + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	variants := lo.Map(definition.Variants(), func(v definition.Variant, _ int) string {
		return string(v)
	})

	register(key.OutputRoot, ".", "Directory every generated artifact is written under")
	register(key.OutputIcons, "icons", "Icon sets directory, relative to the output root unless absolute")
	register(key.OutputThemes, "themes", "Theme manifests directory, relative to the output root unless absolute")
	register(key.OutputPackages, "ide-packages", "Platform packages directory, relative to the output root unless absolute")
	register(key.OutputDescriptor, "package.json", "Top-level package descriptor, relative to the output root unless absolute")
	register(key.GenerateVariants, variants, "Variants to generate.\nAvailable options are: "+strings.Join(variants, ", "))
	register(key.GenerateCollisions, string(definition.PolicyReject), "What to do when two entries of equal priority claim the same extension, filename or folder name.\nAvailable options are: reject, last")
	register(key.DefinitionsPath, "", "YAML definition table to use instead of the embedded one")
	register(key.ProductName, constant.Codecharm, "Product id, theme ids are <product>-<variant>")
	register(key.ProductDisplayName, "CodeCharm Icons", "Human readable product name")
	register(key.ProductVersion, constant.Version, "Version written into the descriptor and plugin manifests")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliGlyphs, "plain", "Status glyphs.\nAvailable options are: emoji, nerd, plain, squares")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
