// Package markdown renders post and author bodies to sanitised HTML as templ
// components.
package markdown

import (
	"bytes"
	"context"
	"io"
	"regexp"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to HTML. Raw HTML in the source passes through
// goldmark and is then cleaned by a UGC sanitiser policy.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

var reLanguageClass = regexp.MustCompile(`^language-[a-zA-Z0-9+#_-]+$`)

// NewRenderer returns a Renderer with GFM, footnotes and heading anchors.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	p := bluemonday.UGCPolicy()
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6", "li", "sup")
	p.AllowAttrs("class").Matching(reLanguageClass).OnElements("code")
	p.RequireNoFollowOnLinks(false)

	return &Renderer{md: md, policy: p}
}

// Render converts src to sanitised HTML.
func (r *Renderer) Render(src string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return nil, err
	}
	return r.policy.SanitizeBytes(buf.Bytes()), nil
}

var defaultRenderer = NewRenderer()

// Markdown returns a templ.Component that renders content as HTML.
func Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := defaultRenderer.Render(content)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	})
}
