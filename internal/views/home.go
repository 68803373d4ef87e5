package views

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vpawar/folio/internal/motion"
)

// Sections carries optional overrides for every parameterized section.
// The zero value renders the built-in content. Project and skill lists sit
// at the top level of a content file; hero and contact fields are nested.
type Sections struct {
	Hero     HeroProps        `mapstructure:"hero"`
	Projects ProjectGridProps `mapstructure:",squash"`
	Skills   SkillsProps      `mapstructure:",squash"`
	Contact  ContactProps     `mapstructure:"contact"`
}

var (
	homeItem    = motion.SpringItem(100, 15)
	homeStagger = motion.Stagger(0.3, 0.2, homeItem)
)

// Home renders the full page with every section at its defaults
func Home() g.Node {
	return HomeWith(Sections{})
}

// HomeWith renders the full page using the given section overrides
func HomeWith(s Sections) g.Node {
	return h.Div(
		h.Class("min-h-screen bg-[#0B0C2A] text-white overflow-hidden"),
		background(),
		h.Main(
			h.Class("relative z-10 container mx-auto px-4 md:px-8 py-8"),
			homeStagger.Attr(),

			h.Div(h.Class("mb-24"), motion.Item(), Hero(s.Hero)),

			h.Div(
				h.Class("mb-24"),
				motion.Item(),
				heading("Selected Work", "bg-[#E9FF70]", "✨"),
				ProjectGrid(s.Projects),
			),

			h.Div(
				h.Class("mb-24"),
				motion.Item(),
				heading("Tools & Skills", "bg-[#FF5EA0]", "🛠️"),
				Skills(s.Skills),
			),

			h.Section(
				h.ID("journey"),
				h.Class("mb-24"),
				motion.Item(),
				heading("Journey So Far", "bg-[#BB86FC]", "🚀"),
				journeyCards(),
			),

			h.Section(
				h.ID("highlights"),
				h.Class("mb-24"),
				motion.Item(),
				highlights(),
			),

			h.Div(motion.Item(), Contact(s.Contact)),
		),
	)
}

func background() g.Node {
	lines := make([]g.Node, 0, len(backgroundSquiggles))
	for i, d := range backgroundSquiggles {
		stroke := "#FF5EA0"
		if i%2 != 0 {
			stroke = "#E9FF70"
		}
		draw := motion.Spec{
			Trigger:    motion.OnMount,
			Initial:    motion.State{"pathLength": 0, "opacity": 0},
			Animate:    motion.State{"pathLength": 1, "opacity": 0.3},
			Transition: motion.Transition{Duration: 2, Delay: float64(i) * 0.5},
		}
		lines = append(lines, g.El("svg",
			h.Class("absolute"),
			g.Attr("xmlns", svgNS),
			g.Attr("style", fmt.Sprintf("top: %d%%; left: %d%%; width: 300px; height: 100px; transform: rotate(%ddeg)", i*25+10, i*15, i*30)),
			g.El("path",
				g.Attr("d", d),
				g.Attr("stroke", stroke),
				g.Attr("stroke-width", "3"),
				g.Attr("fill", "none"),
				draw.Attr(),
			),
		))
	}

	return h.Div(
		h.Class("fixed inset-0 z-0 opacity-20 pointer-events-none"),
		h.Div(
			h.Class("absolute inset-0"),
			g.Attr("style", "background-image: linear-gradient(rgba(255,255,255,0.05) 1px, transparent 1px), linear-gradient(90deg, rgba(255,255,255,0.05) 1px, transparent 1px); background-size: 50px 50px"),
		),
		g.Group(lines),
		h.Div(
			h.Class("absolute top-[15%] right-[10%] w-12 h-12 rounded-full bg-[#BB86FC] opacity-60"),
			motion.Float(motion.State{"y": []float64{0, -15, 0}, "rotate": []float64{0, 10, 0}}, 4).Attr(),
		),
		h.Div(
			h.Class("absolute top-[60%] left-[5%] w-16 h-16 rounded-full bg-[#E9FF70] opacity-40"),
			motion.Float(motion.State{"y": []float64{0, 20, 0}, "rotate": []float64{0, -15, 0}}, 5).Attr(),
		),
		h.Div(
			h.Class("absolute bottom-[20%] right-[15%] w-10 h-10 rounded-full bg-[#FF5EA0] opacity-50"),
			motion.Float(motion.State{"y": []float64{0, -10, 0}, "x": []float64{0, 10, 0}}, 6).Attr(),
		),
	)
}

func journeyCards() g.Node {
	cards := make([]g.Node, 0, len(journey))
	for _, entry := range journey {
		class := "journey-card bg-white/5 backdrop-blur-sm rounded-xl p-6 border border-white/10 hover:border-[" + entry.Accent + "]/30 transition-all"
		if entry.Wide {
			class += " md:col-span-2"
		}
		cards = append(cards, h.Div(
			h.Class(class),
			h.Div(h.Class("text-["+entry.Accent+"] text-xl mb-2"), g.Text(entry.Period)),
			h.H3(h.Class("text-2xl font-bold mb-2"), g.Text(entry.Role)),
			h.P(h.Class("text-white/70"), g.Text(entry.Summary)),
		))
	}
	return h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 gap-8"), g.Group(cards))
}

func highlights() g.Node {
	return h.Div(
		h.Class("bg-white/5 backdrop-blur-sm rounded-xl p-8 border border-white/10 relative overflow-hidden"),
		h.Div(h.Class("absolute -right-10 -top-10 w-40 h-40 rounded-full bg-[#E9FF70] opacity-10")),
		h.Div(h.Class("absolute -left-10 -bottom-10 w-40 h-40 rounded-full bg-[#FF5EA0] opacity-10")),

		h.H3(h.Class("text-2xl font-bold mb-6"), g.Text("Things I Love Designing:")),
		chips(lovesDesigning, "#E9FF70"),

		h.H3(h.Class("text-2xl font-bold mb-6"), g.Text("Currently Exploring:")),
		chips(currentlyExploring, "#FF5EA0"),

		h.Div(
			h.Class("mt-12 text-center"),
			h.P(
				h.Class("text-xl italic font-light text-white/80 max-w-lg mx-auto"),
				g.Attr("style", "font-family: cursive"),
				g.Text(motto),
			),
		),
	)
}

func chips(items []string, hover string) g.Node {
	nodes := make([]g.Node, 0, len(items))
	for _, item := range items {
		nodes = append(nodes, h.Div(
			h.Class("chip px-4 py-2 rounded-full border border-white/20 hover:border-["+hover+"] hover:text-["+hover+"] transition-all cursor-pointer"),
			g.Text(item),
		))
	}
	return h.Div(h.Class("flex flex-wrap gap-4 mb-8"), g.Group(nodes))
}
