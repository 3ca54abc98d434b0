package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// CodeClass styles inline code spans.
const CodeClass = "py-1 px-1.5 font-normal rounded border " +
	"bg-transparent text-theme-700 dark:text-theme-200 " +
	"border-theme-300 dark:border-theme-700"

// Code wraps text in a styled inline <code> element.
func Code(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return printf(w, `<code class="%s"><span>%s</span></code>`, CodeClass, esc(text))
	})
}
