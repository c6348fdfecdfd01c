// Package icons maps the icon identifiers used in content to Lucide names.
//
// Content refers to icons by a short stable id so it never depends on the
// icon set's naming; the views resolve ids here and the Lucide script in
// the browser replaces each placeholder with the SVG.
package icons

const defaultLucideName = "sparkle"

var lucideIconNames = map[string]string{
	"github":        "github",
	"linkedin":      "linkedin",
	"mail":          "mail",
	"phone":         "phone",
	"map-pin":       "map-pin",
	"code":          "code-xml",
	"palette":       "palette",
	"git-branch":    "git-branch",
	"menu":          "menu",
	"close":         "x",
	"download":      "download",
	"arrow-right":   "arrow-right",
	"arrow-up":      "arrow-up",
	"external-link": "external-link",
	"send":          "send",
}

// LucideName returns the Lucide icon name for an icon id.
func LucideName(id string) (string, bool) {
	name, ok := lucideIconNames[id]
	return name, ok
}

// LucideNameOrDefault provides a stable Lucide name even when the id is unknown.
func LucideNameOrDefault(id string) string {
	if name, ok := lucideIconNames[id]; ok {
		return name
	}
	return defaultLucideName
}

// IDs returns every known icon id.
func IDs() []string {
	ids := make([]string, 0, len(lucideIconNames))
	for id := range lucideIconNames {
		ids = append(ids, id)
	}
	return ids
}
