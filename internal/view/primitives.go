package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/jrgriffin/site/internal/content"
)

// Section backgrounds alternate for visual rhythm only.
const (
	BgMuted = "bg-neutral-100"
	BgWhite = "bg-white"
	BgBase  = "bg-neutral-50"
)

const (
	headingClass = "text-3xl sm:text-4xl font-display font-semibold tracking-tight text-neutral-900 mb-8"
	panelClass   = "rounded-3xl border border-neutral-200/60 p-8 sm:p-10 shadow-sm"
	kickerClass  = "text-xs font-display font-medium tracking-wider uppercase text-neutral-500 mb-2"
	markerClass  = "mt-2 h-1.5 w-1.5 shrink-0 rounded-full bg-neutral-400"
)

// Container is the centered, width-constrained band every section sits in.
func Container(children ...g.Node) g.Node {
	return h.Div(h.Class("mx-auto w-full max-w-5xl px-5 sm:px-6 lg:px-8"), g.Group(children))
}

// Section is an anchor-addressable block with a heading and a content slot.
func Section(id, title, bg string, children ...g.Node) g.Node {
	if bg == "" {
		bg = BgBase
	}
	return h.Section(
		h.ID(id),
		h.Class("scroll-mt-24 py-16 sm:py-20 "+bg),
		Container(
			h.H2(h.Class(headingClass), g.Text(title)),
			h.Div(h.Class("mt-8"), g.Group(children)),
		),
	)
}

func Card(t content.Tile) g.Node {
	return h.Div(
		h.Class("rounded-2xl border border-neutral-200/60 bg-white p-6 sm:p-8 shadow-sm hover:shadow-md transition-shadow"),
		h.Div(h.Class("text-lg font-display font-semibold text-neutral-900 mb-3"), g.Text(t.Title)),
		h.P(h.Class("text-sm leading-relaxed text-neutral-600"), g.Text(t.Body)),
	)
}

// BulletList renders items in the order given, one marker per item.
func BulletList(items []string) g.Node {
	return h.Ul(
		h.Class("space-y-4 text-sm sm:text-base text-neutral-600 leading-relaxed"),
		g.Map(items, func(item string) g.Node {
			return h.Li(
				h.Class("flex gap-4"),
				h.Span(h.Class(markerClass), h.Aria("hidden", "true")),
				h.Span(g.Text(item)),
			)
		}),
	)
}

// LabeledRow stacks a de-emphasized label above its value.
func LabeledRow(row content.LabeledValue) g.Node {
	return h.Div(
		h.Class("pb-6 border-b border-neutral-100 last:border-b-0 last:pb-0"),
		h.Div(h.Class(kickerClass), g.Text(row.Label)),
		h.Div(h.Class("text-sm sm:text-base text-neutral-900 leading-relaxed"), g.Text(row.Value)),
	)
}

func PartnerLine(line content.LabeledValue) g.Node {
	return h.Div(
		h.Span(h.Class("font-display font-semibold text-neutral-900"), g.Text(line.Label+":")),
		g.Text(" "),
		h.Span(g.Text(line.Value)),
	)
}

func panel(bg string, children ...g.Node) g.Node {
	return h.Div(h.Class(panelClass+" "+bg), g.Group(children))
}

func ctaLink(label, href, size string) g.Node {
	return h.A(
		h.Href(href),
		h.Class("inline-flex items-center rounded-xl bg-neutral-900 "+size+" text-sm font-display font-medium text-white hover:bg-neutral-800 transition-colors"),
		g.Text(label),
	)
}
