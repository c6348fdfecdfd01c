package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"navjot.dev/internal/models"
	"navjot.dev/internal/motion"
)

// Navigation renders the fixed top bar and the mobile menu
func Navigation(profile models.Profile, items []models.NavItem, menu Menu) g.Node {
	links := make([]g.Node, 0, len(items))
	for i, item := range items {
		links = append(links, h.A(
			h.Href(item.Href),
			h.Class("nav-link text-foreground/80 hover:text-primary text-sm font-medium"),
			revealItem(motion.Nav, i),
			g.Text(item.Label),
		))
	}

	return h.Nav(
		h.ID("site-nav"),
		h.Class("site-nav fixed top-0 w-full z-50 backdrop-blur-md"),
		h.Div(
			h.Class("container mx-auto px-4 py-4 flex items-center justify-between"),
			h.A(h.Href("#home"), h.Class("logo text-2xl font-bold gradient-text"), g.Text(profile.Initials)),
			h.Div(
				h.Class("nav-links hidden md:flex items-center gap-8"),
				revealContainer(motion.Nav),
				g.Group(links),
			),
			h.Div(
				h.Class("nav-cta hidden md:flex items-center gap-4"),
				h.A(h.Href("#contact"), h.Class("btn btn-accent"), g.Text("Get in Touch")),
				downloadCV(profile, "btn btn-primary"),
			),
			h.A(
				h.Href(menu.ToggleHref()),
				h.Class("menu-toggle md:hidden"),
				g.Attr("data-menu-toggle", ""),
				g.Attr("aria-controls", "mobile-menu"),
				g.Attr("aria-expanded", strconv.FormatBool(menu.Open)),
				g.Attr("aria-label", "Toggle menu"),
				icon(menu.Icon(), 24),
			),
		),
		mobileMenu(profile, items, menu),
	)
}

// mobileMenu links back to "/" so following a link also closes the menu
func mobileMenu(profile models.Profile, items []models.NavItem, menu Menu) g.Node {
	links := make([]g.Node, 0, len(items))
	for _, item := range items {
		links = append(links, h.A(
			h.Href("/"+item.Href),
			h.Class("mobile-link py-2"),
			g.Attr("data-menu-close", ""),
			g.Text(item.Label),
		))
	}

	return h.Div(
		h.ID("mobile-menu"),
		h.Class("mobile-menu md:hidden overflow-hidden"),
		g.Attr("data-open", strconv.FormatBool(menu.Open)),
		g.Attr("aria-hidden", strconv.FormatBool(!menu.Open)),
		g.Attr("style", menu.Style()),
		h.Div(
			h.Class("container mx-auto px-4 py-4 flex flex-col gap-4"),
			g.Group(links),
			h.A(h.Href("/#contact"), h.Class("btn btn-accent w-full mt-2"), g.Attr("data-menu-close", ""), g.Text("Get in Touch")),
			downloadCV(profile, "btn btn-primary w-full mt-2"),
		),
	)
}

func downloadCV(profile models.Profile, class string) g.Node {
	return h.A(
		h.Href(profile.CVPath),
		h.Class(class),
		g.Attr("download", profile.CVFileName),
		h.Target("_blank"),
		h.Rel("noopener noreferrer"),
		g.Attr("data-toast", "Downloading CV…"),
		icon("download", 18),
		g.Text("Download My CV"),
	)
}
