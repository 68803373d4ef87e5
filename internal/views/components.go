package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const svgNS = "http://www.w3.org/2000/svg"

const (
	badgeBase   = "badge inline-flex items-center border font-semibold transition-colors"
	buttonBase  = "button inline-flex items-center justify-center whitespace-nowrap text-sm font-medium transition-colors"
	buttonLarge = "h-11 px-8"
	cardBase    = "card rounded-xl border bg-card text-card-foreground shadow"
)

// Stroke glyphs drawn on a 24x24 grid
var (
	IconArrowDown    = []string{"M19 14l-7 7m0 0l-7-7m7 7V3"}
	IconExternalLink = []string{
		"M15 3h6v6",
		"M10 14 21 3",
		"M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6",
	}
	IconLinkedIn = []string{
		"M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-2-2 2 2 0 0 0-2 2v7h-4v-7a6 6 0 0 1 6-6z",
		"M2 9h4v12H2z",
		"M4 2a2 2 0 1 0 0 4 2 2 0 1 0 0-4z",
	}
	IconInstagram = []string{
		"M7 2h10a5 5 0 0 1 5 5v10a5 5 0 0 1-5 5H7a5 5 0 0 1-5-5V7a5 5 0 0 1 5-5z",
		"M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z",
		"M17.5 6.5h.01",
	}
	IconMail = []string{
		"M4 4h16a2 2 0 0 1 2 2v12a2 2 0 0 1-2 2H4a2 2 0 0 1-2-2V6a2 2 0 0 1 2-2z",
		"m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7",
	}
	IconPaintbrush = []string{
		"m14.622 17.897-10.68-2.913",
		"M18.376 2.622a1 1 0 1 1 3.002 3.002L17.36 9.643a.5.5 0 0 0 0 .707l.944.944a2.41 2.41 0 0 1 0 3.408l-.944.944a.5.5 0 0 1-.707 0L8.354 7.348a.5.5 0 0 1 0-.707l.944-.944a2.41 2.41 0 0 1 3.408 0l.944.944a.5.5 0 0 0 .707 0z",
		"M9 8c-1.804 2.71-3.97 3.46-6.583 3.948a.507.507 0 0 0-.302.819l7.32 8.883a1 1 0 0 0 1.185.204C12.735 20.405 16 16.792 16 15",
	}
)

// Icon draws a stroke glyph sized by class
func Icon(class string, paths ...string) g.Node {
	nodes := make([]g.Node, 0, len(paths))
	for _, d := range paths {
		nodes = append(nodes, g.El("path", g.Attr("d", d)))
	}
	return g.El("svg",
		h.Class(class),
		g.Attr("xmlns", svgNS),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Group(nodes),
	)
}

// Tooltip wraps trigger so text is disclosed on hover
func Tooltip(text string, trigger g.Node) g.Node {
	return h.Span(
		h.Class("tooltip group relative inline-flex"),
		trigger,
		h.Span(
			h.Class("tooltip-content pointer-events-none absolute bottom-full left-1/2 z-50 mb-2 -translate-x-1/2 whitespace-nowrap rounded-md bg-[#FFF4F0] px-3 py-1.5 text-xs text-[#0B0C2A] opacity-0 transition-opacity group-hover:opacity-100"),
			g.Attr("role", "tooltip"),
			h.P(g.Text(text)),
		),
	)
}

// blob draws one of the filled decorative shapes on a 200x200 canvas
func blob(class, d string) g.Node {
	return g.El("svg",
		h.Class(class),
		g.Attr("viewBox", "0 0 200 200"),
		g.Attr("xmlns", svgNS),
		g.El("path",
			g.Attr("fill", "currentColor"),
			g.Attr("d", d),
			g.Attr("transform", "translate(100 100)"),
		),
	)
}

// heading renders an h2 with a colored underline bar and a trailing emoji
func heading(text, barColor, emoji string) g.Node {
	return h.H2(
		h.Class("text-3xl md:text-4xl font-bold mb-12 inline-block"),
		h.Span(
			h.Class("relative"),
			g.Text(text),
			h.Span(h.Class("absolute -bottom-1 left-0 w-full h-2 "+barColor+" opacity-70")),
			h.Span(h.Class("ml-2"), g.Text(emoji)),
		),
	)
}
