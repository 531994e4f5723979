package content

const contactEmail = "jeremy@jrgriffin.co"

var defaultContent = Content{
	Brand: "Jeremy Griffin",

	Meta: Meta{
		Title:       "Jeremy Griffin — Real Estate Investing + Advisory",
		Description: "Real estate investing + advisory. Los Angeles-based with a national network. Flexible across equity and structured capital. Partnering with LPs, sponsors/operators, and brokers/advisors.",
		Lang:        "en",
	},

	Nav: []NavEntry{
		{Label: "Home", Href: "#top"},
		{Label: "For Partners", Href: "#about"},
		{Label: "Experience", Href: "#experience"},
		{Label: "Current Focus", Href: "#focus"},
		{Label: "Contact", Href: "#contact"},
	},

	Hero: Hero{
		Headline: "Real estate investing + advisory.",
		Subhead:  "Aligning investors with compelling risk-adjusted opportunities. Los Angeles-based with a national network. I partner across equity and structured capital — focused on situations where structure, speed, and judgment matter.",
		CTALabel: "Connect",
		CTAHref:  "mailto:" + contactEmail,
	},

	About: About{
		Title: "How I Partner",
		Tiles: []Tile{
			{
				Title: "Invest",
				Body:  "Direct investments across the capital structure — GP/co-GP/LP equity and structured solutions (preferred equity / mezzanine) depending on the situation.",
			},
			{
				Title: "Partner",
				Body:  "A collaborative capital partner for sponsors and operators: clear feedback, thoughtful structuring, reliable execution — and a strong focus on alignment.",
			},
			{
				Title: "Advise",
				Body:  "Select advisory work for investors, operators, and entrepreneurs — including an \"outsourced CIO\" style role. Underwriting, structuring / re-structuring, thesis & strategy, and capital markets.",
			},
		},
	},

	Experience: Experience{
		Title: "Experience",
		Intro: "I've spent 14 years in real estate private equity and 4 years at a public REIT, investing through multiple cycles, from post-GFC and COVID to today's environment, across both distressed and expansionary markets. I invest across the capital stack in assets, portfolios and platforms, focusing on situations where structure and judgment drive outcomes. I'm actively building new relationships with LPs, sponsors, and brokers who value clarity, alignment, and clean execution.",
		Bullets: []string{
			"20+ years investing and operating in real estate",
			"Experience across equity (LP, GP, co-GP, programmatic JVs) and debt/structured capital (preferred equity, mezzanine, bespoke solutions)",
			"14+ years at Rialto Capital Management — Managing Director, Investment Management; led West Coast investing efforts and served as the primary relationship and execution point of contact for sponsors, brokers, and partners across the region",
			"$2bn+ transaction volume across cycles and property types",
			"MBA from Columbia Business School, BA from UCLA",
			"Additional transaction experience and case studies available upon request",
			"Not an offer to sell or the solicitation of an offer to buy securities; information available upon request.",
		},
	},

	Focus: Focus{
		Title: "Areas of Focus",
		Items: []LabeledValue{
			{Label: "Property types", Value: "Multifamily · Industrial · Office · R&D · Self-storage · Retail"},
			{Label: "Deal size", Value: "$25–$50MM+ asset value · $5–$20MM equity investments"},
			{Label: "Structures", Value: "Equity (LP, GP/co-GP, programmatic JVs) · preferred equity · mezzanine / structured debt"},
			{Label: "Deal types", Value: "Motivated/forced selling · capital stack solutions · DPOs · transitional business plans where structure and certainty matter · selective thematic growth opportunities"},
			{Label: "Geography", Value: "Major US primary and secondary markets (relationship-driven)"},
		},
	},

	Partners: Partners{
		Title: "Who I partner with",
		Lines: []LabeledValue{
			{Label: "Sponsors / Operators", Value: "Collaborative capital for acquisitions, transitional business plans, and capital stack solutions."},
			{Label: "LPs / Capital Partners", Value: "Disciplined, relationship-driven investing with aligned capital."},
			{Label: "Brokers / Advisors", Value: "Quick responses and clean execution."},
		},
		CTALabel: "Connect",
		CTAHref:  "mailto:" + contactEmail,
	},

	DealChecklist: Checklist{
		Title: "For deals, please include (if available)",
		Items: []string{
			"Address / market + quick property summary",
			"Capital structure + debt / lender information and timeline",
			"T-12 and rent roll (or operating snapshot)",
			"Thesis + Business plan",
			"Your process expectations + timing",
		},
	},

	Contact: Contact{
		Title:    "Let's connect",
		Subhead:  "If you're working on a deal, need a capital solution, or want to compare notes, please reach out.",
		Email:    contactEmail,
		LinkedIn: "https://www.linkedin.com/in/jeremy-griffin-a01b491/",
		Image: Image{
			Src:    "/headshot.png",
			Alt:    "Jeremy Griffin",
			Width:  600,
			Height: 800,
		},
	},

	Footer: "© 2026 Jeremy Griffin",
}

// Default returns the page copy as published.
func Default() Content {
	return defaultContent.Clone()
}
