package view

import (
	"bytes"
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/jrgriffin/site/internal/content"
)

// Options controls what the document head links to.
type Options struct {
	Stylesheets []string
	Scripts     []string
}

func Document(c content.Content, opts Options, body g.Node) g.Node {
	lang := c.Meta.Lang
	if lang == "" {
		lang = "en"
	}

	return h.Doctype(
		h.HTML(
			h.Lang(lang),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(c.Meta.Title)),
				g.If(c.Meta.Description != "", h.Meta(h.Name("description"), h.Content(c.Meta.Description))),
				g.Map(opts.Stylesheets, func(href string) g.Node {
					return h.Link(h.Rel("stylesheet"), h.Href(href))
				}),
				g.Map(opts.Scripts, func(src string) g.Node {
					return h.Script(h.Src(src))
				}),
			),
			h.Body(body),
		),
	)
}

// Render writes the full page document for c to w.
func Render(w io.Writer, c content.Content, opts Options) error {
	return Document(c, opts, Page(c)).Render(w)
}

func RenderBytes(c content.Content, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, c, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Renderer binds a set of document Options so the page can be rendered
// through the usecase Renderer port.
type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

func (r *Renderer) Render(w io.Writer, c content.Content) error {
	return Render(w, c, r.opts)
}
