package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

// markup accumulates the HTML of one component.
type markup struct {
	bytes.Buffer
}

func (m *markup) raw(parts ...string) {
	for _, p := range parts {
		m.WriteString(p)
	}
}

// text writes s escaped for element content or a quoted attribute value.
func (m *markup) text(s string) {
	m.WriteString(templ.EscapeString(s))
}

// url writes href sanitised (javascript: and friends are neutralised) and
// escaped.
func (m *markup) url(href string) {
	m.WriteString(templ.EscapeString(string(templ.URL(href))))
}

func (m *markup) child(ctx context.Context, c templ.Component) error {
	if c == nil {
		return nil
	}
	return c.Render(ctx, &m.Buffer)
}

// component adapts a markup builder to templ.Component. Output is buffered so
// a failing child never leaves half a page on the wire.
func component(build func(ctx context.Context, m *markup) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var m markup
		if err := build(ctx, &m); err != nil {
			return err
		}
		_, err := w.Write(m.Bytes())
		return err
	})
}
