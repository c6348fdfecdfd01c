package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"navjot.dev/internal/models"
)

const lucideScript = "https://unpkg.com/lucide@0.460.0/dist/umd/lucide.min.js"

// noscriptStyle shows every animated element at rest when scripts are off
const noscriptStyle = `[data-reveal] [data-reveal=item],[data-reveal=self]{opacity:1!important;transform:none!important}.bar{width:var(--bar-width)!important}`

// Document wraps body content in the HTML shell
func Document(profile models.Profile, body ...g.Node) g.Node {
	title := profile.Name + " | " + profile.Role
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("description"), h.Content(profile.Description)),
				g.El("title", g.Text(title)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
				g.El("noscript", g.El("style", g.Raw(noscriptStyle))),
				h.Script(h.Src(lucideScript), h.Defer()),
				h.Script(h.Src("/static/js/reveal.js"), h.Defer()),
				h.Script(h.Src("/static/js/nav.js"), h.Defer()),
				h.Script(h.Src("/static/js/contact.js"), h.Defer()),
			),
			h.Body(body...),
		),
	)
}

// Home composes the sections in page order
func Home(p Page) g.Node {
	pf := p.Portfolio
	return Document(pf.Profile,
		h.Div(
			h.Class("min-h-screen bg-background text-foreground overflow-hidden"),
			Navigation(pf.Profile, pf.Nav, p.Menu),
			h.Main(
				Hero(pf.Profile, pf.Socials),
				Skills(pf.Skills, pf.Proficiencies),
				Projects(pf.Projects, pf.Profile.ProjectsURL),
				Contact(pf.Contact, pf.Socials, p.Contact),
			),
			Footer(pf.Profile, pf.Socials, pf.FooterLinks),
		),
		h.Div(h.ID("toast"), h.Class("toast"), g.Attr("role", "status"), g.Attr("aria-live", "polite")),
	)
}
