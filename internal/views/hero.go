package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vpawar/folio/internal/motion"
	"github.com/vpawar/folio/internal/portfolio"
)

// HeroProps configures the hero banner. A nil Tags slice means the default
// tags; an empty non-nil slice renders no badges.
type HeroProps struct {
	Name  string   `mapstructure:"name"`
	Title string   `mapstructure:"title"`
	Tags  []string `mapstructure:"tags"`
}

func (p HeroProps) withDefaults() HeroProps {
	if p.Name == "" {
		p.Name = portfolio.DefaultName
	}
	if p.Title == "" {
		p.Title = portfolio.DefaultTitle
	}
	if p.Tags == nil {
		p.Tags = portfolio.DefaultTags()
	}
	return p
}

var tagBadgeClasses = [...]string{
	"bg-[#E9FF70] text-[#0B0C2A]",
	"bg-[#FF5EA0] text-white",
	"bg-[#BB86FC] text-white",
}

// TagBadgeClass picks the badge color for the tag at index i. Indices past
// the third reuse the third style.
func TagBadgeClass(i int) string {
	if i >= len(tagBadgeClasses) {
		i = len(tagBadgeClasses) - 1
	}
	return tagBadgeClasses[i]
}

// Hero renders the banner with avatar, name, title, tag badges and the
// call to action scrolling to the projects section.
func Hero(p HeroProps) g.Node {
	p = p.withDefaults()

	badges := make([]g.Node, 0, len(p.Tags))
	for i, tag := range p.Tags {
		badges = append(badges, h.Span(
			h.Class(badgeBase+" text-sm md:text-base py-2 px-4 rounded-full "+TagBadgeClass(i)),
			g.Attr("data-tag-index", strconv.Itoa(i)),
			g.Text(tag),
		))
	}

	return h.Section(
		h.ID("hero"),
		h.Class("relative min-h-[800px] w-full bg-[#0B0C2A] flex items-center justify-center px-4 md:px-8 lg:px-16 overflow-hidden"),

		h.Div(
			h.Class("absolute inset-0 opacity-10"),
			h.Div(h.Class("h-full w-full bg-[linear-gradient(#BB86FC_1px,transparent_1px),linear-gradient(90deg,#BB86FC_1px,transparent_1px)] bg-[size:40px_40px]")),
		),

		h.Div(
			h.Class("absolute top-20 right-[20%] w-32 h-32 rounded-full bg-[#FF5EA0] opacity-20 blur-xl"),
			motion.Pulse([]float64{1, 1.2, 1}, []float64{0.2, 0.3, 0.2}, 5).Attr(),
		),
		h.Div(
			h.Class("absolute bottom-20 left-[15%] w-40 h-40 rounded-full bg-[#E9FF70] opacity-20 blur-xl"),
			motion.Pulse([]float64{1, 1.3, 1}, []float64{0.2, 0.25, 0.2}, 6).Delayed(0.5).Attr(),
		),

		squiggle("absolute top-[15%] left-[10%] w-32 h-32 text-[#FF5EA0] opacity-60",
			"M10,50 Q25,30 40,50 T70,50 T100,50", motion.DrawPath(2, 1)),
		squiggle("absolute bottom-[20%] right-[10%] w-40 h-24 text-[#E9FF70] opacity-60",
			"M0,50 Q20,20 40,50 T80,50 T120,50", motion.DrawPath(2.5, 0.5)),

		sticker("absolute top-[30%] right-[15%] bg-[#BB86FC] text-white p-3 rounded-full rotate-12", "✌️", motion.Pop(12, 0.5)),
		sticker("absolute bottom-[30%] left-[20%] bg-[#FFF4F0] p-3 rounded-full -rotate-6", "✨", motion.Pop(-6, 0.8)),
		sticker("absolute top-[60%] left-[10%] bg-[#E9FF70] p-4 rounded-full rotate-6", "👋", motion.Pop(6, 1)),

		h.Div(
			h.Class("relative z-10 max-w-4xl mx-auto text-center"),
			h.Div(
				h.Class("flex justify-center mb-8"),
				h.Div(
					h.Class("relative w-32 h-32 md:w-40 md:h-40 rounded-full overflow-hidden border-4 border-[#FF5EA0]"),
					h.Img(
						h.Src(portfolio.DefaultAvatarURL),
						h.Alt(p.Name),
						h.Class("w-full h-full object-cover"),
					),
				),
			),
			h.H1(
				h.Class("text-4xl md:text-6xl font-bold text-white mb-4"),
				motion.FadeUp(20, 0.6).Attr(),
				g.Text(p.Name+" "),
				h.Span(h.Class("text-[#E9FF70]"), g.Text("|")),
				g.Text(" "),
				h.Span(h.Class("text-[#FF5EA0]"), g.Text("Portfolio")),
			),
			h.P(
				h.Class("text-lg md:text-xl text-[#FFF4F0] mb-8"),
				motion.FadeUp(20, 0.6).Delayed(0.2).Attr(),
				g.Text(p.Title),
			),
			h.Div(
				h.Class("hero-tags flex flex-wrap justify-center gap-3"),
				motion.FadeUp(20, 0.6).Delayed(0.4).Attr(),
				g.Group(badges),
			),
			h.Div(
				h.Class("mt-12"),
				motion.FadeUp(20, 0.6).Delayed(0.6).Attr(),
				h.A(
					h.Href("#projects"),
					h.Class("inline-flex items-center justify-center px-6 py-3 bg-[#E9FF70] text-[#0B0C2A] rounded-full font-medium hover:bg-opacity-90 transition-all"),
					g.Text("View My Work"),
					Icon("ml-2 w-5 h-5", IconArrowDown...),
				),
			),
		),
	)
}

func squiggle(class, d string, spec motion.Spec) g.Node {
	return g.El("svg",
		h.Class(class),
		g.Attr("viewBox", "0 0 100 100"),
		g.Attr("xmlns", svgNS),
		g.El("path",
			g.Attr("d", d),
			g.Attr("stroke", "currentColor"),
			g.Attr("stroke-width", "3"),
			g.Attr("fill", "none"),
			spec.Attr(),
		),
	)
}

func sticker(class, emoji string, spec motion.Spec) g.Node {
	return h.Div(
		h.Class(class),
		spec.Attr(),
		h.Span(h.Class("text-xl"), g.Text(emoji)),
	)
}
