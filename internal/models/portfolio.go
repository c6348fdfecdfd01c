package models

// NavItem is a link in the navigation bar
type NavItem struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

// SocialLink points at an external profile
type SocialLink struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
	Icon  string `json:"icon" yaml:"icon"`
}

// SkillCategory groups related skills under one card
type SkillCategory struct {
	Title  string   `json:"title" yaml:"title"`
	Icon   string   `json:"icon" yaml:"icon"`
	Skills []string `json:"skills" yaml:"skills"`
	Color  string   `json:"color" yaml:"color"` // gradient utility classes
}

// Proficiency is a named skill with a percentage level
type Proficiency struct {
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level" yaml:"level"`
}

// ContactInfo is one way to reach the site owner
type ContactInfo struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
	Href  string `json:"href" yaml:"href"`
	Icon  string `json:"icon" yaml:"icon"`
}

// Profile holds the owner's identity and the copy around it
type Profile struct {
	Name          string `json:"name" yaml:"name"`
	Initials      string `json:"initials" yaml:"initials"`
	Role          string `json:"role" yaml:"role"`
	Greeting      string `json:"greeting" yaml:"greeting"`
	Intro         string `json:"intro" yaml:"intro"`
	Description   string `json:"description" yaml:"description"`
	HeroImage     string `json:"hero_image" yaml:"hero_image"`
	CVPath        string `json:"cv_path" yaml:"cv_path"`
	CVFileName    string `json:"cv_file_name" yaml:"cv_file_name"`
	ProjectsURL   string `json:"projects_url" yaml:"projects_url"`
	FooterTagline string `json:"footer_tagline" yaml:"footer_tagline"`
	CopyrightYear int    `json:"copyright_year" yaml:"copyright_year"`
}

// Portfolio is the full content of the page
type Portfolio struct {
	Profile       Profile         `json:"profile" yaml:"profile"`
	Nav           []NavItem       `json:"nav" yaml:"nav"`
	Socials       []SocialLink    `json:"socials" yaml:"socials"`
	Skills        []SkillCategory `json:"skills" yaml:"skills"`
	Proficiencies []Proficiency   `json:"proficiencies" yaml:"proficiencies"`
	Projects      []Project       `json:"projects" yaml:"projects"`
	Contact       []ContactInfo   `json:"contact" yaml:"contact"`
	FooterLinks   []NavItem       `json:"footer_links" yaml:"footer_links"`
}

// FormState holds the contact form field values
type FormState struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// IsEmpty reports whether all fields are blank
func (f FormState) IsEmpty() bool {
	return f.Name == "" && f.Email == "" && f.Message == ""
}
