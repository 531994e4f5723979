package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/jrgriffin/site/internal/content"
)

// Page lays the content out top to bottom: header, hero, partnering tiles,
// partner types, experience, focus areas, contact and footer.
func Page(c content.Content) g.Node {
	return h.Main(
		h.Class("min-h-screen bg-neutral-50 text-neutral-900 antialiased"),
		header(c),
		hero(c.Hero),
		about(c.About),
		partners(c.Partners),
		experience(c.Experience),
		focus(c.Focus),
		contact(c.Contact, c.DealChecklist),
		footer(c.Footer),
	)
}

func header(c content.Content) g.Node {
	return h.Header(
		h.Class("sticky top-0 z-50 border-b border-neutral-200/60 bg-white/80 backdrop-blur-sm"),
		Container(
			h.Div(
				h.Class("flex h-14 items-center justify-between"),
				h.Div(
					h.Class("text-sm font-display font-semibold tracking-tight"),
					h.A(h.Href("#top"), h.Class("hover:opacity-80 transition-opacity"), g.Text(c.Brand)),
				),
				h.Nav(
					h.Class("hidden md:flex items-center gap-8 text-sm text-neutral-600"),
					g.Map(c.Nav, func(n content.NavEntry) g.Node {
						return h.A(h.Href(n.Href), h.Class("hover:text-neutral-900 transition-colors font-medium"), g.Text(n.Label))
					}),
				),
				h.Div(
					h.Class("flex items-center gap-2"),
					ctaLink(c.Hero.CTALabel, c.Hero.CTAHref, "px-4 py-2"),
				),
			),
		),
	)
}

func hero(hr content.Hero) g.Node {
	return h.Section(
		h.ID("top"),
		h.Class("pt-14 sm:pt-20 pb-32 sm:pb-40 "+BgBase),
		Container(
			h.Div(
				h.Class("rounded-3xl border border-neutral-200/60 bg-white p-10 sm:p-16 shadow-sm"),
				h.H1(h.Class("text-4xl sm:text-6xl font-display font-semibold tracking-tight text-neutral-900 leading-[1.1]"), g.Text(hr.Headline)),
				h.P(h.Class("mt-10 max-w-3xl text-base sm:text-lg leading-relaxed text-neutral-600"), g.Text(hr.Subhead)),
				h.Div(h.Class("mt-12"), ctaLink(hr.CTALabel, hr.CTAHref, "px-6 py-3 shadow-sm")),
			),
		),
	)
}

func about(a content.About) g.Node {
	return Section("about", a.Title, BgWhite,
		h.Div(
			h.Class("grid grid-cols-1 md:grid-cols-3 gap-4"),
			g.Map(a.Tiles, Card),
		),
	)
}

func partners(p content.Partners) g.Node {
	return Section("partners", p.Title, BgMuted,
		panel(BgWhite,
			h.Div(
				h.Class("space-y-5 text-sm sm:text-base text-neutral-600 leading-relaxed"),
				g.Map(p.Lines, PartnerLine),
			),
		),
	)
}

func experience(e content.Experience) g.Node {
	return Section("experience", e.Title, BgWhite,
		panel(BgBase,
			g.If(e.Intro != "",
				h.P(h.Class("text-sm sm:text-base text-neutral-600 leading-relaxed mb-8"), g.Text(e.Intro)),
			),
			BulletList(e.Bullets),
		),
	)
}

func focus(f content.Focus) g.Node {
	return Section("focus", f.Title, BgMuted,
		panel(BgWhite,
			h.Div(h.Class("space-y-6"), g.Map(f.Items, LabeledRow)),
		),
	)
}

func contact(c content.Contact, checklist content.Checklist) g.Node {
	linkClass := "mt-1 inline-block font-display font-semibold text-neutral-900 hover:text-neutral-700 transition-colors"

	return Section("contact", c.Title, BgWhite,
		panel(BgWhite,
			h.Div(
				h.Class("lg:grid lg:grid-cols-5 lg:gap-6"),
				h.Div(
					h.Class("lg:col-span-3"),
					h.P(h.Class("text-sm sm:text-base text-neutral-600 leading-relaxed"), g.Text(c.Subhead)),
					h.Div(
						h.Class("mt-8 space-y-5 text-sm sm:text-base"),
						h.Div(
							h.Div(h.Class(kickerClass), g.Text("General")),
							h.A(h.Href(c.MailtoHref()), h.Class(linkClass), g.Text(c.Email)),
						),
						h.Div(
							h.Div(h.Class(kickerClass), g.Text("LinkedIn")),
							h.A(h.Href(c.LinkedIn), h.Target("_blank"), h.Rel("noreferrer"), h.Class(linkClass), g.Text("View profile")),
						),
					),
				),
				h.Div(
					h.Class("lg:col-span-2 mt-8 lg:mt-0 rounded-3xl border border-neutral-200/60 bg-white p-4 shadow-sm"),
					h.Div(
						h.Class("w-full rounded-2xl overflow-hidden"),
						headshot(c.Image),
					),
				),
			),
			h.Div(
				h.Class("mt-10 pt-8 border-t border-neutral-200/60"),
				h.Div(h.Class("text-lg font-display font-semibold text-neutral-900 mb-6"), g.Text(checklist.Title)),
				h.Div(BulletList(checklist.Items)),
			),
		),
	)
}

func headshot(img content.Image) g.Node {
	return h.Img(
		h.Src(img.Src),
		h.Alt(img.Alt),
		g.If(img.Width > 0, h.Width(strconv.Itoa(img.Width))),
		g.If(img.Height > 0, h.Height(strconv.Itoa(img.Height))),
		h.Class("w-full h-auto object-cover rounded-2xl"),
	)
}

func footer(text string) g.Node {
	return h.Footer(
		h.Class("border-t border-neutral-200/60 py-12"),
		Container(
			h.Div(
				h.Class("flex flex-col sm:flex-row items-start sm:items-center justify-end gap-4 text-sm text-neutral-500"),
				h.Div(h.Class("font-display"), g.Text(text)),
			),
		),
	)
}
