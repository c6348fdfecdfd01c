package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"navjot.dev/internal/contact"
	"navjot.dev/internal/models"
	"navjot.dev/internal/motion"
)

// Contact renders the contact details and the mock contact form
func Contact(info []models.ContactInfo, socials []models.SocialLink, form ContactForm) g.Node {
	cards := make([]g.Node, 0, len(info))
	for i, c := range info {
		cards = append(cards, h.A(
			h.Href(c.Href),
			h.Class("contact-card flex items-start gap-4 p-4"),
			revealItem(motion.ContactInfo, i),
			h.Div(h.Class("contact-icon"), icon(c.Icon, 24)),
			h.Div(
				h.P(h.Class("text-sm text-foreground/60 mb-1"), g.Text(c.Label)),
				h.P(h.Class("font-semibold"), g.Text(c.Value)),
			),
		))
	}

	return h.Section(
		h.ID("contact"),
		h.Class("py-20 md:py-32 relative overflow-hidden"),
		h.Div(
			h.Class("container mx-auto px-4"),
			sectionHeader("Let's", "Connect",
				"Have a project in mind or want to collaborate? I'd love to hear from you. Let's create something amazing together."),
			h.Div(
				h.Class("grid md:grid-cols-2 gap-12 max-w-5xl mx-auto"),
				h.Div(
					revealContainer(motion.ContactInfo),
					h.H3(h.Class("text-2xl font-bold mb-8"), g.Text("Get in Touch")),
					h.Div(h.Class("space-y-6 mb-12"), g.Group(cards)),
					h.Div(
						revealItem(motion.ContactInfo, len(info)),
						h.H4(h.Class("text-lg font-semibold mb-4"), g.Text("Follow Me")),
						h.Div(
							h.Class("flex gap-4"),
							g.Map(socials, func(s models.SocialLink) g.Node {
								return h.A(
									h.Href(s.Href),
									h.Class("social-link"),
									h.Target("_blank"),
									h.Rel("noopener noreferrer"),
									g.Attr("aria-label", s.Label),
									icon(s.Icon, 20),
								)
							}),
						),
					),
				),
				h.Div(
					revealSelf(motion.Block),
					contactForm(form),
				),
			),
		),
	)
}

func contactForm(cf ContactForm) g.Node {
	f := cf.Form
	return g.El("form",
		h.ID("contact-form"),
		h.Class("space-y-6"),
		h.Method("post"),
		h.Action("/contact#contact"),
		g.Attr("data-submitted", strconv.FormatBool(f.Submitted)),
		g.If(f.Submitted, g.Attr("data-reset-after", strconv.FormatInt(cf.ResetIn.Milliseconds(), 10))),
		field("name", "Your Name", "text", "John Doe", f.State.Name),
		field("email", "Your Email", "email", "john@example.com", f.State.Email),
		h.Div(
			h.Class("field relative"),
			g.El("label", h.For("message"), h.Class("block text-sm font-medium mb-2"), g.Text("Message")),
			h.Textarea(
				h.ID("message"),
				h.Name("message"),
				g.Attr("rows", "5"),
				h.Required(),
				h.Placeholder("Tell me about your project..."),
				h.Class("input resize-none"),
				g.Text(f.State.Message),
			),
		),
		h.Button(
			h.Type("submit"),
			h.Class("btn btn-primary btn-lg w-full"),
			g.If(f.Disabled(), h.Disabled()),
			h.Span(h.Class("submit-label"), g.Text(f.SubmitLabel())),
			icon("send", 20),
		),
		g.If(f.Submitted, h.P(h.Class("form-status text-center text-primary font-medium"), g.Text(contact.StatusMessage))),
		g.If(cf.Error != "", h.P(h.Class("form-error text-center"), g.Attr("role", "alert"), g.Text(cf.Error))),
	)
}

func field(name, label, typ, placeholder, value string) g.Node {
	return h.Div(
		h.Class("field relative"),
		g.El("label", h.For(name), h.Class("block text-sm font-medium mb-2"), g.Text(label)),
		h.Input(
			h.Type(typ),
			h.ID(name),
			h.Name(name),
			h.Value(value),
			h.Required(),
			h.Placeholder(placeholder),
			h.Class("input"),
		),
	)
}
