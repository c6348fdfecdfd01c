package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"navjot.dev/internal/models"
	"navjot.dev/internal/motion"
)

// Footer renders the page footer
func Footer(profile models.Profile, socials []models.SocialLink, links []models.NavItem) g.Node {
	seq := motion.Footer

	socialNodes := make([]g.Node, 0, len(socials))
	for i, s := range socials {
		socialNodes = append(socialNodes, h.A(
			h.Href(s.Href),
			h.Class("social-link"),
			g.Attr("aria-label", s.Label),
			revealItem(seq, i),
			icon(s.Icon, 20),
		))
	}

	linkNodes := make([]g.Node, 0, len(links))
	for i, l := range links {
		linkNodes = append(linkNodes, h.A(
			h.Href(l.Href),
			h.Class("hover:text-primary"),
			revealItem(seq, i),
			g.Text(l.Label),
		))
	}

	return h.Footer(
		h.Class("site-footer relative"),
		h.Div(
			h.Class("container mx-auto px-4 py-12 md:py-16"),
			h.Div(
				h.Class("flex flex-col md:flex-row items-center justify-between gap-8"),
				revealContainer(seq),
				h.Div(
					h.Class("text-center md:text-left"),
					revealItem(seq, 0),
					h.H3(h.Class("text-2xl font-bold gradient-text mb-2"), g.Text(profile.Name)),
					h.P(h.Class("text-foreground/60"), g.Text(profile.FooterTagline)),
				),
				h.Div(h.Class("flex gap-6"), revealContainer(seq), g.Group(socialNodes)),
				h.A(
					h.Href("#home"),
					h.Class("scroll-top"),
					g.Attr("data-scroll-top", ""),
					g.Attr("aria-label", "Scroll to top"),
					revealItem(seq, 2),
					icon("arrow-up", 20),
				),
			),
			h.Div(h.Class("footer-divider my-8"), revealSelf(motion.FooterDivider)),
			h.Div(
				h.Class("flex flex-col md:flex-row items-center justify-between gap-4 text-sm text-foreground/60"),
				revealContainer(seq),
				h.P(revealItem(seq, 0), g.Text("© "+strconv.Itoa(profile.CopyrightYear)+" "+profile.Name+". All rights reserved.")),
				h.Div(h.Class("flex gap-6"), revealContainer(seq), g.Group(linkNodes)),
			),
		),
	)
}
