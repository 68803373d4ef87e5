package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vpawar/folio/internal/motion"
	"github.com/vpawar/folio/internal/portfolio"
)

// ProjectGridProps configures the showcase. A nil Projects slice means the
// default projects.
type ProjectGridProps struct {
	Projects []portfolio.Project `mapstructure:"projects"`
}

// ProjectGrid renders one card per project, preserving order
func ProjectGrid(p ProjectGridProps) g.Node {
	projects := p.Projects
	if projects == nil {
		projects = portfolio.DefaultProjects()
	}

	cards := make([]g.Node, 0, len(projects))
	for i, project := range projects {
		cards = append(cards, h.Div(
			h.Class("project"),
			g.Attr("data-key", project.ID),
			motion.FadeUp(30, 0.5).Delayed(float64(i)*0.1).WhenInView(true, 0).Attr(),
			ProjectCard(project),
		))
	}

	return h.Section(
		h.ID("projects"),
		h.Class("w-full py-16 px-4 md:px-8 bg-[#0B0C2A]"),
		h.Div(
			h.Class("max-w-7xl mx-auto"),
			h.Div(
				h.Class("mb-12 text-center"),
				motion.FadeUp(20, 0.5).WhenInView(true, 0).Attr(),
				h.H2(
					h.Class("text-3xl md:text-4xl font-bold mb-4 text-white"),
					g.Text("Selected Work "),
					h.Span(h.Class("text-[#E9FF70]"), g.Text("✨")),
				),
				h.P(
					h.Class("text-lg text-gray-300 max-w-2xl mx-auto"),
					g.Text("A showcase of my recent projects spanning UI/UX, branding, and digital storytelling."),
				),
			),
			h.Div(
				h.Class("project-grid grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(cards),
			),
		),
	)
}

// ProjectCard renders a single project with its role badge and case link
func ProjectCard(project portfolio.Project) g.Node {
	return h.Div(
		h.Class(cardBase+" h-full overflow-hidden border-none bg-gray-900/50 backdrop-blur-sm hover:shadow-lg transition-all duration-300"),
		h.Div(
			h.Class("relative overflow-hidden aspect-video"),
			h.Img(
				h.Src(project.ImageURL),
				h.Alt(project.Title),
				g.Attr("loading", "lazy"),
				h.Class("w-full h-full object-cover transition-transform duration-500 hover:scale-105"),
			),
			h.Div(
				h.Class("absolute inset-0 opacity-0 hover:opacity-100 transition-opacity duration-300 flex items-center justify-center bg-black/60"),
				h.Span(
					h.Class(buttonBase+" h-10 px-4 py-2 rounded-md border bg-black/60 border-white text-white hover:bg-white hover:text-black"),
					g.Text("View Details"),
				),
			),
		),
		h.Div(
			h.Class("pt-6 p-6"),
			h.Div(
				h.Class("flex items-start justify-between mb-2"),
				h.H3(h.Class("text-xl font-bold text-white"), g.Text(project.Title)),
				h.Span(
					h.Class(badgeBase+" role rounded-full px-2.5 py-0.5 text-xs font-medium text-black"),
					g.Attr("style", "background-color: "+project.Color),
					g.Text(project.Role),
				),
			),
			h.P(h.Class("text-gray-400 text-sm line-clamp-2"), g.Text(project.Description)),
		),
		h.Div(
			h.Class("flex items-center p-6 pt-2 pb-6"),
			h.A(
				h.Href(project.CaseStudyURL),
				h.Target("_blank"),
				h.Rel("noopener noreferrer"),
				h.Class(buttonBase+" case-link hover:text-white p-0 gap-2"),
				g.Attr("style", "color: "+project.Color),
				g.Text("View Case "),
				Icon("w-4 h-4", IconExternalLink...),
			),
		),
	)
}
