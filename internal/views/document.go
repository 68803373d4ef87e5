package views

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PageTitle is the browser title of the portfolio page
const PageTitle = "Vaishnavi Pawar | Portfolio"

// Document wraps body in the HTML shell. staticPrefix is where motion.js is
// served from, "/static" for the server and "static" for exports.
func Document(staticPrefix string, body g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(PageTitle)),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Script(h.Src(staticPrefix+"/motion.js"), h.Defer()),
			),
			h.Body(
				h.Class("bg-[#0B0C2A]"),
				body,
			),
		),
	)
}

// RenderPage writes the complete page for s to w
func RenderPage(w io.Writer, staticPrefix string, s Sections) error {
	if err := Document(staticPrefix, HomeWith(s)).Render(w); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// Section returns a single section by name, rendered with its overrides
// from s. The boolean is false for unknown names.
func Section(name string, s Sections) (g.Node, bool) {
	switch name {
	case "hero":
		return Hero(s.Hero), true
	case "projects":
		return ProjectGrid(s.Projects), true
	case "skills":
		return Skills(s.Skills), true
	case "contact":
		return Contact(s.Contact), true
	}
	return nil, false
}
