// Package views renders the portfolio page.
//
// Every section is a function returning a gomponents node built from its
// slice of content and, for Navigation and Contact, the small amount of
// visitor state they own. Home composes the sections in page order.
package views

import (
	"io"
	"strings"
	"time"

	g "maragu.dev/gomponents"

	"navjot.dev/internal/contact"
	"navjot.dev/internal/models"
)

// Page is everything needed to render the home page for one request
type Page struct {
	Portfolio *models.Portfolio
	Menu      Menu
	Contact   ContactForm
}

// ContactForm is the contact form's display state
type ContactForm struct {
	Form    contact.Form
	Error   string
	ResetIn time.Duration
}

// Menu is the mobile navigation toggle
type Menu struct {
	Open bool
}

// Toggle flips the menu
func (m Menu) Toggle() Menu {
	return Menu{Open: !m.Open}
}

// Close collapses the menu
func (m Menu) Close() Menu {
	return Menu{}
}

// ToggleHref is where the toggle points when scripts are unavailable
func (m Menu) ToggleHref() string {
	if m.Open {
		return "/"
	}
	return "/?menu=open"
}

// Icon returns the icon id for the toggle button
func (m Menu) Icon() string {
	if m.Open {
		return "close"
	}
	return "menu"
}

// Style returns the inline style of the mobile panel
func (m Menu) Style() string {
	if m.Open {
		return "height:auto;opacity:1"
	}
	return "height:0;opacity:0"
}

// Render writes a node to w
func Render(w io.Writer, node g.Node) error {
	return node.Render(w)
}

// RenderString renders a node to a string
func RenderString(node g.Node) (string, error) {
	var b strings.Builder
	if err := node.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
