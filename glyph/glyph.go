// Package glyph renders the status symbols printed in front of command output.
//
// Glyphs can be displayed as emoji, nerd-font glyphs, plain ASCII or
// Unicode squares depending on the cli.glyphs setting.
package glyph

import (
	"github.com/codecharm-icons/codecharm/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns every supported glyph style.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Glyph identifies one status symbol.
type Glyph int

const (
	Success Glyph = iota
	Fail
	Warn
	Progress
	Variant
	Package
	Theme
)

type glyphDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

var glyphs = map[Glyph]glyphDef{
	Success:  {emoji: "✨", nerd: "", plain: "ok", squares: "🟩"},
	Fail:     {emoji: "❌", nerd: "", plain: "x", squares: "🟥"},
	Warn:     {emoji: "⚠️", nerd: "", plain: "!", squares: "🟨"},
	Progress: {emoji: "🔍", nerd: "", plain: "..", squares: "🟦"},
	Variant:  {emoji: "🎨", nerd: "", plain: "*", squares: "🟪"},
	Package:  {emoji: "📦", nerd: "", plain: "#", squares: "🟫"},
	Theme:    {emoji: "📄", nerd: "", plain: "-", squares: "⬜"},
}

func (d glyphDef) get() string {
	switch viper.GetString(key.CliGlyphs) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the symbol of g in the configured style, or "" for an unknown style.
func Get(g Glyph) string {
	return glyphs[g].get()
}
