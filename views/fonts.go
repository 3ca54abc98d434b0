package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// FontFace is one file of a locally hosted font family.
type FontFace struct {
	Path   string
	Weight string
	Style  string
}

// FontFamily is a locally hosted font exposed to CSS through a custom property.
type FontFamily struct {
	Family   string
	Variable string
	Display  string
	Preload  bool
	Faces    []FontFace
}

// ClassName is the class that defines the family's CSS variable.
func (f FontFamily) ClassName() string {
	return strings.TrimPrefix(f.Variable, "--")
}

const fontDir = "/public/fonts/fira-code/"

// FiraCode is the static-weight Fira Code family used for code on post pages.
var FiraCode = FontFamily{
	Family:   "Fira Code",
	Variable: "--font-fira-code",
	Display:  "swap",
	Preload:  true,
	Faces: []FontFace{
		{Path: fontDir + "FiraCode-Bold.woff2", Weight: "700", Style: "normal"},
		{Path: fontDir + "FiraCode-SemiBold.woff2", Weight: "600", Style: "normal"},
		{Path: fontDir + "FiraCode-Medium.woff2", Weight: "500", Style: "normal"},
		{Path: fontDir + "FiraCode-Regular.woff2", Weight: "400", Style: "normal"},
		{Path: fontDir + "FiraCode-Light.woff2", Weight: "300", Style: "normal"},
	},
}

// FiraCodeVF is the variable-weight Fira Code family.
var FiraCodeVF = FontFamily{
	Family:   "Fira Code VF",
	Variable: "--font-fira-code-vf",
	Display:  "swap",
	Preload:  true,
	Faces: []FontFace{
		{Path: fontDir + "FiraCode-VF.woff2", Weight: "300 700", Style: "normal"},
	},
}

// Fonts renders preload links and @font-face rules for the given families.
func Fonts(families ...FontFamily) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var css strings.Builder
		for _, f := range families {
			for _, face := range f.Faces {
				if f.Preload {
					if err := printf(w, `<link rel="preload" href="%s" as="font" type="font/woff2" crossorigin>`, esc(face.Path)); err != nil {
						return err
					}
				}
				css.WriteString(`@font-face{font-family:'` + f.Family + `';src:url('` + face.Path + `') format('woff2');font-weight:` +
					face.Weight + `;font-style:` + face.Style + `;font-display:` + f.Display + `;}`)
			}
			css.WriteString(`.` + f.ClassName() + `{` + f.Variable + `:'` + f.Family + `',ui-monospace,monospace;}`)
		}
		return printf(w, `<style>%s</style>`, css.String())
	})
}
