package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"navjot.dev/internal/models"
	"navjot.dev/internal/motion"
)

// Hero renders the landing banner
func Hero(profile models.Profile, socials []models.SocialLink) g.Node {
	seq := motion.Hero

	return h.Section(
		h.ID("home"),
		h.Class("hero relative min-h-screen flex items-center justify-center overflow-hidden pt-20"),
		h.Div(h.Class("hero-bg absolute inset-0"), g.Attr("style", "background-image:url("+profile.HeroImage+")")),
		h.Div(h.Class("hero-overlay absolute inset-0")),
		h.Div(
			h.Class("container mx-auto px-4 relative"),
			revealContainer(seq),
			h.Div(
				h.Class("max-w-3xl"),
				h.Div(
					h.Class("mb-6"),
					revealItem(seq, 0),
					h.Span(h.Class("badge"), g.Text(profile.Greeting)),
				),
				h.H1(
					h.Class("text-6xl md:text-7xl font-bold mb-6"),
					revealItem(seq, 1),
					h.Span(h.Class("block text-foreground"), g.Text("Hi, I'm")),
					h.Span(h.Class("gradient-text"), g.Text(profile.Name)),
				),
				h.P(
					h.Class("text-xl md:text-2xl text-foreground/80 mb-8"),
					revealItem(seq, 2),
					g.Text("A passionate "),
					h.Span(h.Class("text-primary font-semibold"), g.Text(profile.Role)),
					g.Text(" "+profile.Intro),
				),
				h.P(
					h.Class("text-lg text-foreground/60 mb-8 max-w-2xl"),
					revealItem(seq, 3),
					g.Text(profile.Description),
				),
				h.Div(
					h.Class("flex flex-col sm:flex-row gap-4 mb-12"),
					revealItem(seq, 4),
					h.A(h.Href("#projects"), h.Class("btn btn-primary btn-lg"), g.Text("View My Work"), icon("arrow-right", 20)),
					h.A(h.Href("#contact"), h.Class("btn btn-outline btn-lg"), g.Text("Get in Touch")),
				),
				h.Div(
					h.Class("flex gap-6"),
					revealItem(seq, 5),
					g.Map(socials, func(s models.SocialLink) g.Node {
						return h.A(
							h.Href(s.Href),
							h.Class("social-link"),
							g.Attr("aria-label", s.Label),
							icon(s.Icon, 24),
						)
					}),
				),
			),
		),
		h.Div(
			h.Class("scroll-indicator"),
			g.Attr("aria-hidden", "true"),
			h.Div(h.Class("scroll-indicator-dot")),
		),
	)
}
