package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vpawar/folio/internal/motion"
	"github.com/vpawar/folio/internal/portfolio"
)

// SkillsProps configures the toolbox and skill categories. Nil slices mean
// the defaults.
type SkillsProps struct {
	Tools           []portfolio.Tool          `mapstructure:"tools"`
	SkillCategories []portfolio.SkillCategory `mapstructure:"skill_categories"`
}

func (p SkillsProps) withDefaults() SkillsProps {
	if p.Tools == nil {
		p.Tools = portfolio.DefaultTools()
	}
	if p.SkillCategories == nil {
		p.SkillCategories = portfolio.DefaultSkillCategories()
	}
	return p
}

// SkillTooltip is the hover text shown for a skill badge
func SkillTooltip(skill string) string {
	return "Expertise in " + skill
}

var skillsStagger = motion.Stagger(0.1, 0, motion.SpringItem(100, 0))

// Skills renders the tool grid followed by the skill categories
func Skills(p SkillsProps) g.Node {
	p = p.withDefaults()

	tools := make([]g.Node, 0, len(p.Tools))
	for _, tool := range p.Tools {
		tools = append(tools, h.Div(
			h.Class("tool flex flex-col items-center"),
			g.Attr("data-key", tool.Name),
			motion.Item(),
			motion.HoverScale(1.05).Attr(),
			h.Div(
				h.Class(cardBase+" w-full aspect-square flex items-center justify-center bg-opacity-10 border-opacity-20 hover:bg-opacity-20 transition-all cursor-pointer"),
				h.Div(
					h.Class("p-6 flex flex-col items-center justify-center h-full"),
					h.Span(h.Class("text-4xl mb-2"), g.Text(tool.Icon)),
					h.Span(h.Class("font-medium text-center"), g.Text(tool.Name)),
				),
			),
		))
	}

	categories := make([]g.Node, 0, len(p.SkillCategories))
	for _, category := range p.SkillCategories {
		categories = append(categories, skillCategory(category))
	}

	return h.Section(
		h.ID("skills"),
		h.Class("relative w-full py-20 bg-[#0B0C2A] text-white"),
		h.Div(
			h.Class("container mx-auto px-4 max-w-7xl"),
			h.Div(
				h.Class("mb-16"),
				skillsStagger.WhenInView(true, 0.2).Attr(),
				h.H2(
					h.Class("text-4xl md:text-5xl font-bold mb-6 relative inline-block"),
					motion.Item(),
					h.Span(h.Class("relative z-10"), g.Text("Tools & Skills")),
					h.Span(h.Class("absolute bottom-1 left-0 w-full h-3 bg-[#E9FF70] opacity-40 -rotate-1 z-0")),
				),
				h.P(
					h.Class("text-xl text-gray-300 max-w-2xl"),
					motion.Item(),
					g.Text("My digital toolbox and areas of expertise that help bring creative visions to life."),
				),
			),

			h.Div(
				h.Class("mb-20"),
				h.H3(h.Class("text-2xl font-bold mb-8 text-[#E9FF70]"), g.Text("Design Tools")),
				h.Div(
					h.Class("tool-grid grid grid-cols-2 sm:grid-cols-3 md:grid-cols-6 gap-6"),
					skillsStagger.WhenInView(true, 0.1).Attr(),
					g.Group(tools),
				),
			),

			h.Div(
				h.H3(h.Class("text-2xl font-bold mb-8 text-[#FF5EA0]"), g.Text("Skills & Expertise")),
				h.Div(
					h.Class("categories space-y-10"),
					skillsStagger.WhenInView(true, 0.1).Attr(),
					g.Group(categories),
				),
			),

			h.Div(h.Class("absolute -right-20 top-1/4 w-40 h-40 bg-[#BB86FC] rounded-full blur-[100px] opacity-20")),
			h.Div(h.Class("absolute -left-20 bottom-1/4 w-60 h-60 bg-[#E9FF70] rounded-full blur-[120px] opacity-10")),
		),
	)
}

func skillCategory(category portfolio.SkillCategory) g.Node {
	skills := make([]g.Node, 0, len(category.Skills))
	for _, skill := range category.Skills {
		skills = append(skills, Tooltip(SkillTooltip(skill), h.Span(
			h.Class(badgeBase+" skill rounded-full border-white/20 px-4 py-2 text-sm cursor-pointer hover:bg-white/10 transition-colors"),
			g.Attr("data-key", skill),
			g.Text(skill),
		)))
	}

	return h.Div(
		h.Class("category space-y-4"),
		g.Attr("data-key", category.Name),
		motion.Item(),
		h.Span(
			h.Class(badgeBase+" category-name border-transparent "+category.Color+" text-sm px-3 py-1 rounded-full"),
			g.Text(category.Name),
		),
		h.Div(h.Class("skills flex flex-wrap gap-3"), g.Group(skills)),
	)
}
