package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"navjot.dev/internal/models"
	"navjot.dev/internal/motion"
)

// Projects renders the project gallery
func Projects(projects []models.Project, allHref string) g.Node {
	cards := make([]g.Node, 0, len(projects))
	for i, p := range projects {
		cards = append(cards, projectCard(p, i))
	}

	return h.Section(
		h.ID("projects"),
		h.Class("py-20 md:py-32 relative overflow-hidden"),
		h.Div(
			h.Class("container mx-auto px-4"),
			sectionHeader("Featured", "Projects",
				"A selection of projects that demonstrate my skills in frontend development, design, and problem-solving."),
			h.Div(
				h.Class("project-grid grid md:grid-cols-2 lg:grid-cols-3 gap-8 mb-16"),
				revealContainer(motion.Projects),
				g.Group(cards),
			),
			h.Div(
				h.Class("text-center"),
				revealSelf(motion.Header),
				h.A(h.Href(allHref), h.Class("btn btn-accent btn-lg"), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Text("View All Projects")),
			),
		),
	)
}

func projectCard(p models.Project, i int) g.Node {
	return h.Article(
		h.ID("project-"+p.Slug),
		h.Class("project-card group relative h-full"),
		g.Attr("data-featured", strconv.FormatBool(p.Featured)),
		revealItem(motion.Projects, i),
		h.Div(
			h.Class("card h-full overflow-hidden"),
			h.Div(
				h.Class("project-image relative overflow-hidden"),
				h.Img(h.Src(p.Image), h.Alt(p.Title), g.Attr("loading", "lazy")),
			),
			h.Div(
				h.Class("p-6"),
				h.H3(h.Class("text-xl font-bold mb-2"), g.Text(p.Title)),
				h.P(h.Class("text-foreground/60 text-sm mb-4 line-clamp-2"), g.Text(p.Description)),
				h.Div(
					h.Class("flex flex-wrap gap-2 mb-6"),
					g.Map(p.VisibleTechnologies(), func(tech string) g.Node {
						return h.Span(h.Class("tech-tag"), g.Text(tech))
					}),
					g.If(p.HiddenTechCount() > 0,
						h.Span(h.Class("tech-tag tech-more"), g.Text("+"+strconv.Itoa(p.HiddenTechCount()))),
					),
				),
				h.Div(
					h.Class("flex gap-3"),
					h.A(h.Href(p.Link), h.Class("btn btn-primary btn-sm flex-1"), g.Text("View Project"), icon("external-link", 16)),
					h.A(h.Href(p.GitHub), h.Class("btn btn-outline btn-sm flex-1"), g.Attr("aria-label", p.Title+" on GitHub"), icon("github", 16)),
				),
			),
		),
	)
}
