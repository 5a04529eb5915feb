package verify

import (
	"fmt"
	"io"
	"strings"

	"github.com/codecharm-icons/codecharm/color"
	"github.com/codecharm-icons/codecharm/glyph"
	"github.com/codecharm-icons/codecharm/style"
	"github.com/codecharm-icons/codecharm/util"
)

func marker(s Severity) string {
	switch s {
	case SeverityError:
		return style.Fg(color.Red)(glyph.Get(glyph.Fail))
	case SeverityWarning:
		return style.Fg(color.Yellow)(glyph.Get(glyph.Warn))
	default:
		return style.Fg(color.Green)(glyph.Get(glyph.Success))
	}
}

// Print writes a human readable report to w, grouped by section in check order.
func (r *Report) Print(w io.Writer) {
	var section Section
	for _, f := range r.Findings {
		if f.Section != section {
			if section != "" {
				fmt.Fprintln(w)
			}
			section = f.Section
			fmt.Fprintln(w, style.Bold("Checking "+string(section)+"..."))
		}
		fmt.Fprintf(w, "  %s %s\n", marker(f.Severity), f.Message)
	}

	rule := style.Faint(strings.Repeat("=", 50))
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	switch {
	case r.Errors() == 0 && r.Warnings() == 0:
		fmt.Fprintf(w, "%s All checks passed\n", marker(SeverityOK))
	default:
		if n := r.Errors(); n > 0 {
			fmt.Fprintf(w, "%s Found %s\n", marker(SeverityError), util.Quantify(n, "error", "errors"))
		}
		if n := r.Warnings(); n > 0 {
			fmt.Fprintf(w, "%s Found %s\n", marker(SeverityWarning), util.Quantify(n, "warning", "warnings"))
		}
	}
	fmt.Fprintln(w, rule)
}
