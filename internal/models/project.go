package models

// Project represents a portfolio project card
type Project struct {
	Slug         string   `json:"slug" yaml:"slug"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Image        string   `json:"image" yaml:"image"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Link         string   `json:"link" yaml:"link"`
	GitHub       string   `json:"github" yaml:"github"`
	Featured     bool     `json:"featured,omitempty" yaml:"featured"`
}

// VisibleTechCount is how many technology tags a card shows before
// collapsing the rest into an overflow badge.
const VisibleTechCount = 3

// VisibleTechnologies returns the tags shown on the card
func (p Project) VisibleTechnologies() []string {
	if len(p.Technologies) <= VisibleTechCount {
		return p.Technologies
	}
	return p.Technologies[:VisibleTechCount]
}

// HiddenTechCount returns the number of tags folded into the "+N" badge
func (p Project) HiddenTechCount() int {
	if len(p.Technologies) <= VisibleTechCount {
		return 0
	}
	return len(p.Technologies) - VisibleTechCount
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}
