// Package svg renders the 32x32 file and folder icon documents.
//
// Rendering is a pure function of (kind, label, color): identical inputs give byte-identical output.
package svg

import (
	"strings"
	"text/template"

	"github.com/codecharm-icons/codecharm/definition"
	"github.com/samber/lo"
)

// Kind selects the icon shape.
type Kind int

const (
	File Kind = iota
	Folder
	FolderOpen
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Folder:
		return "folder"
	case FolderOpen:
		return "folder-open"
	default:
		return "unknown"
	}
}

const (
	filePath   = "M6 2C4.89543 2 4 2.89543 4 4V28C4 29.1046 4.89543 30 6 30H26C27.1046 30 28 29.1046 28 28V10L20 2H6Z"
	foldPath   = "M20 2V8C20 9.10457 20.8954 10 22 10H28L20 2Z"
	folderPath = "M4 6C4 4.89543 4.89543 4 6 4H12L14 7H26C27.1046 7 28 7.89543 28 9V26C28 27.1046 27.1046 28 26 28H6C4.89543 28 4 27.1046 4 26V6Z"
	tabPath    = "M4 6C4 4.89543 4.89543 4 6 4H12L14 7H26C27.1046 7 28 7.89543 28 9V11H4V6Z"
	trayPath   = "M2 11H30L28 26C27.8 27.2 26.7 28 25.5 28H6.5C5.3 28 4.2 27.2 4 26L2 11Z"
	openPath   = "M4 6C4 4.89543 4.89543 4 6 4H12L14 7H26C27.1046 7 28 7.89543 28 9V11M2 11H30L28 26C27.8 27.2 26.7 28 25.5 28H6.5C5.3 28 4.2 27.2 4 26L2 11Z"
)

// layer is one <path> of an icon; a zero Opacity marks the stroked outline.
type layer struct {
	D       string
	Opacity string
}

type document struct {
	Color  string
	Layers []layer
	Label  string
}

var shapes = map[Kind][]layer{
	File:       {{filePath, "0.2"}, {foldPath, "0.4"}, {filePath, ""}},
	Folder:     {{folderPath, "0.3"}, {folderPath, ""}},
	FolderOpen: {{tabPath, "0.3"}, {trayPath, "0.2"}, {openPath, ""}},
}

var tmpl = lo.Must(template.New("svg").Parse(
	`<svg width="32" height="32" viewBox="0 0 32 32" xmlns="http://www.w3.org/2000/svg">
{{- range .Layers }}
  {{ if .Opacity -}}
  <path d="{{ .D }}" fill="{{ $.Color }}" opacity="{{ .Opacity }}"/>
  {{- else -}}
  <path d="{{ .D }}" stroke="{{ $.Color }}" stroke-width="1.5" fill="none"/>
  {{- end }}
{{- end }}
{{- if .Label }}
  <text x="16" y="22" font-family="Arial, sans-serif" font-size="8" font-weight="bold" fill="{{ .Color }}" text-anchor="middle">{{ .Label }}</text>
{{- end }}
</svg>
`))

// Label returns the short text drawn on file icons: the first three characters of name, upper-cased.
func Label(name string) string {
	runes := []rune(name)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

// Render returns a complete SVG document for kind in the given color.
// The label is only drawn on file icons.
func Render(kind Kind, label, color string) string {
	doc := document{
		Color:  template.HTMLEscapeString(color),
		Layers: shapes[kind],
	}
	if kind == File {
		doc.Label = template.HTMLEscapeString(label)
	}

	var b strings.Builder
	lo.Must0(tmpl.Execute(&b, doc))
	return b.String()
}

// RenderEntry renders the icon of a named entry, resolving role through the palette.
// Unknown roles fall back to definition.FallbackRole.
func RenderEntry(kind Kind, name string, role definition.Role, palette definition.Palette) string {
	return Render(kind, Label(name), palette.Resolve(role))
}
