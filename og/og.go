// Package og draws the Open Graph preview image of a page.
package og

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// Width and Height are the dimensions of the encoded image.
	Width  = 1200
	Height = 630

	// text is drawn on a canvas this many times smaller, then scaled up
	scale = 4

	maxTitleLines = 4
	charsPerLine  = 40
)

var (
	background = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}
	foreground = color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff}
	muted      = color.RGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xff}
)

// Card is the text printed on a preview image.
type Card struct {
	Title    string
	SiteName string
}

// Draw renders the card into a Width x Height image.
func Draw(c Card) image.Image {
	small := image.NewRGBA(image.Rect(0, 0, Width/scale, Height/scale))
	draw.Draw(small, small.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil() + 4
	margin := 16

	title := strings.TrimSpace(c.Title)
	if title == "" {
		title = c.SiteName
	}
	y := margin + lineHeight
	for _, line := range wrap(title, charsPerLine, maxTitleLines) {
		drawText(small, face, foreground, margin, y, line)
		y += lineHeight
	}
	if c.SiteName != "" {
		drawText(small, face, muted, margin, small.Bounds().Dy()-margin, c.SiteName)
	}

	dst := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), small, small.Bounds(), draw.Over, nil)
	return dst
}

// Encode writes the card as a PNG.
func Encode(w io.Writer, c Card) error {
	return png.Encode(w, Draw(c))
}

func drawText(dst draw.Image, face font.Face, col color.Color, x, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// wrap breaks s into at most maxLines lines of width runes, cutting on spaces
// where possible and marking truncation with "...".
func wrap(s string, width, maxLines int) []string {
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(s) {
		r := []rune(word)
		for len(r) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(r[:width]))
			r = r[width:]
		}
		switch {
		case len(cur) == 0:
			cur = r
		case len(cur)+1+len(r) <= width:
			cur = append(append(cur, ' '), r...)
		default:
			lines = append(lines, string(cur))
			cur = r
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		last := []rune(lines[maxLines-1])
		if len(last) > width-3 {
			last = last[:width-3]
		}
		lines[maxLines-1] = string(last) + "..."
	}
	return lines
}
