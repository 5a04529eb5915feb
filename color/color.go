// Package color provides the terminal colors used by command output.
package color

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/codecharm-icons/codecharm/definition"
)

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
)

// Role returns the color a palette assigns to a role, falling back like the icon renderer does.
func Role(p definition.Palette, r definition.Role) lipgloss.Color {
	return New(p.Resolve(r))
}
