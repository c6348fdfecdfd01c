// Package content loads the authored portfolio content.
//
// The default content ships embedded in the binary; a YAML file on disk
// with the same shape can replace it at start-up.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"navjot.dev/internal/models"
)

//go:embed portfolio.yaml
var defaultContent []byte

// ErrInvalidContent is returned when authored content breaks an invariant
var ErrInvalidContent = errors.New("invalid content")

// Load reads content from path, or the embedded default when path is empty
func Load(path string) (*models.Portfolio, error) {
	if path == "" {
		return Parse(defaultContent)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data)
}

// Default returns the embedded content
func Default() (*models.Portfolio, error) {
	return Parse(defaultContent)
}

// Parse decodes and validates a YAML content document
func Parse(data []byte) (*models.Portfolio, error) {
	var p models.Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}

	for i := range p.Projects {
		if p.Projects[i].Slug == "" {
			p.Projects[i].Slug = Slugify(p.Projects[i].Title)
		}
	}

	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the authoring-time invariants
func Validate(p *models.Portfolio) error {
	var errs []error
	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%s is required", field))
		}
	}

	require("profile.name", p.Profile.Name)
	require("profile.role", p.Profile.Role)

	if len(p.Nav) == 0 {
		errs = append(errs, errors.New("nav must have at least one item"))
	}
	for i, item := range p.Nav {
		require(fmt.Sprintf("nav[%d].label", i), item.Label)
		require(fmt.Sprintf("nav[%d].href", i), item.Href)
	}
	for i, s := range p.Socials {
		require(fmt.Sprintf("socials[%d].label", i), s.Label)
		require(fmt.Sprintf("socials[%d].href", i), s.Href)
	}
	for i, c := range p.Skills {
		require(fmt.Sprintf("skills[%d].title", i), c.Title)
	}
	for i, pr := range p.Proficiencies {
		require(fmt.Sprintf("proficiencies[%d].name", i), pr.Name)
		if pr.Level < 0 || pr.Level > 100 {
			errs = append(errs, fmt.Errorf("proficiencies[%d].level %d out of range 0..100", i, pr.Level))
		}
	}

	seen := make(map[string]bool, len(p.Projects))
	for i, pj := range p.Projects {
		require(fmt.Sprintf("projects[%d].title", i), pj.Title)
		if seen[pj.Slug] {
			errs = append(errs, fmt.Errorf("projects[%d] duplicate slug %q", i, pj.Slug))
		}
		seen[pj.Slug] = true
	}
	for i, c := range p.Contact {
		require(fmt.Sprintf("contact[%d].label", i), c.Label)
		require(fmt.Sprintf("contact[%d].value", i), c.Value)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidContent, errors.Join(errs...))
	}
	return nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a URL-safe identifier
func Slugify(title string) string {
	s := nonSlug.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}
