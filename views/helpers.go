package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// tw joins class lists, skipping empty ones.
func tw(classes ...string) string {
	var out []string
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}

// TagLabel formats a tag for display: "web-dev" becomes "Web Dev".
func TagLabel(tag string) string {
	return titleCaser.String(strings.ReplaceAll(strings.TrimSpace(tag), "-", " "))
}

// TagClass returns CSS classes for a tag pill, with active variant.
func TagClass(active bool) string {
	base := "inline-flex items-center rounded border border-theme-300 dark:border-theme-700 px-2.5 py-1 text-[11px] font-semibold uppercase tracking-[0.12em]"
	if active {
		base += " bg-theme-900 dark:bg-white text-white dark:text-theme-900"
	}
	return base
}

// esc is shorthand for templ.EscapeString.
func esc(s string) string {
	return templ.EscapeString(s)
}

// printf writes formatted markup; callers escape dynamic values.
func printf(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// renderAll renders children in order, stopping at the first error.
func renderAll(ctx context.Context, w io.Writer, children []templ.Component) error {
	for _, c := range children {
		if c == nil {
			continue
		}
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}
