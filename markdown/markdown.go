// Package markdown renders post bodies to HTML with goldmark and extracts
// their table of contents.
package markdown

import (
	"bytes"
	"context"
	"strings"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Heading is one entry in a post's table of contents.
type Heading struct {
	ID    string
	Text  string
	Level int
}

// Document is the rendered form of a markdown source.
type Document struct {
	HTML  string
	TOC   []Heading
	Words int
}

// Option configures a Renderer.
type Option func(*options)

type options struct {
	style    string
	codeSpan func(string) templ.Component
	minLevel int
	maxLevel int
}

// WithStyle sets the chroma style used for fenced code blocks (default "dracula").
func WithStyle(name string) Option {
	return func(o *options) { o.style = name }
}

// WithCodeSpan replaces the markup of inline code spans with the given component.
func WithCodeSpan(fn func(string) templ.Component) Option {
	return func(o *options) { o.codeSpan = fn }
}

// WithTOCLevels limits the headings collected into the table of contents.
func WithTOCLevels(min, max int) Option {
	return func(o *options) {
		o.minLevel = min
		o.maxLevel = max
	}
}

// Renderer converts markdown to HTML. It is safe for concurrent use.
type Renderer struct {
	md       goldmark.Markdown
	minLevel int
	maxLevel int
}

// New builds a Renderer with GFM, typographer, heading ids and syntax highlighting.
func New(opts ...Option) *Renderer {
	o := options{style: "dracula", minLevel: 2, maxLevel: 3}
	for _, opt := range opts {
		opt(&o)
	}

	rendererOpts := []renderer.Option{html.WithUnsafe()}
	if o.codeSpan != nil {
		rendererOpts = append(rendererOpts, renderer.WithNodeRenderers(
			util.Prioritized(&codeSpanRenderer{component: o.codeSpan}, 100),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithStyle(o.style),
				highlighting.WithFormatOptions(),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &Renderer{md: md, minLevel: o.minLevel, maxLevel: o.maxLevel}
}

// Render parses src once and returns its HTML, headings and word count.
func (r *Renderer) Render(src []byte) (Document, error) {
	doc := r.md.Parser().Parse(text.NewReader(src))

	var out Document
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level < r.minLevel || node.Level > r.maxLevel {
				return ast.WalkContinue, nil
			}
			h := Heading{Level: node.Level, Text: nodeText(node, src)}
			if id, ok := node.AttributeString("id"); ok {
				if b, ok := id.([]byte); ok {
					h.ID = string(b)
				}
			}
			out.TOC = append(out.TOC, h)
		case *ast.Text:
			out.Words += len(strings.Fields(string(node.Segment.Value(src))))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return Document{}, err
	}

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, src, doc); err != nil {
		return Document{}, err
	}
	out.HTML = buf.String()
	return out, nil
}

// nodeText concatenates the text and string leaves below n.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch leaf := c.(type) {
		case *ast.Text:
			b.Write(leaf.Segment.Value(src))
			if leaf.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(leaf.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// codeSpanRenderer hands inline code to a templ component.
type codeSpanRenderer struct {
	component func(string) templ.Component
}

func (r *codeSpanRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindCodeSpan, r.renderCodeSpan)
}

func (r *codeSpanRenderer) renderCodeSpan(w util.BufWriter, src []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			continue
		}
		value := t.Segment.Value(src)
		if bytes.HasSuffix(value, []byte("\n")) {
			b.Write(value[:len(value)-1])
			b.WriteByte(' ')
			continue
		}
		b.Write(value)
	}
	if err := r.component(b.String()).Render(context.Background(), w); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkSkipChildren, nil
}
