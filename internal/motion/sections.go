package motion

import "time"

// Section sequences used across the page
var (
	Nav = Sequence{
		Name:      "nav",
		Container: Container{Stagger: 100 * time.Millisecond, DelayChildren: 200 * time.Millisecond},
		Item:      Item{Axis: AxisY, Offset: -20, Duration: 500 * time.Millisecond},
		Trigger:   OnLoad,
		Once:      true,
	}

	Hero = Sequence{
		Name:      "hero",
		Container: Container{Stagger: 200 * time.Millisecond, DelayChildren: 300 * time.Millisecond},
		Item:      Item{Axis: AxisY, Offset: 20, Duration: 800 * time.Millisecond},
		Trigger:   OnLoad,
		Once:      true,
	}

	// Header is the single-item reveal of each section title
	Header = Sequence{
		Name:    "header",
		Item:    Item{Axis: AxisY, Offset: 20, Duration: 600 * time.Millisecond},
		Trigger: InView,
		Once:    true,
	}

	SkillCards = Sequence{
		Name:      "skills",
		Container: Container{Stagger: 200 * time.Millisecond, DelayChildren: 100 * time.Millisecond},
		Item:      Item{Axis: AxisY, Offset: 30, Duration: 600 * time.Millisecond},
		Trigger:   InView,
		Once:      true,
	}

	SkillTags = Sequence{
		Name:      "skill-tags",
		Container: Container{Stagger: 100 * time.Millisecond},
		Item:      Item{Scale: 0.8, Duration: 400 * time.Millisecond},
		Trigger:   InView,
		Once:      true,
	}

	Proficiency = Sequence{
		Name:      "proficiency",
		Container: Container{Stagger: 100 * time.Millisecond},
		Item:      Item{Axis: AxisX, Offset: -30, Duration: 500 * time.Millisecond},
		Trigger:   InView,
		Once:      true,
	}

	// ProficiencyBar grows each bar from zero to its level
	ProficiencyBar = Sequence{
		Name:    "proficiency-bar",
		Item:    Item{Duration: time.Second, Delay: 200 * time.Millisecond},
		Trigger: InView,
		Once:    true,
	}

	Projects = Sequence{
		Name:      "projects",
		Container: Container{Stagger: 150 * time.Millisecond, DelayChildren: 100 * time.Millisecond},
		Item:      Item{Axis: AxisY, Offset: 40, Duration: 600 * time.Millisecond},
		Trigger:   InView,
		Once:      true,
	}

	ContactInfo = Sequence{
		Name:      "contact",
		Container: Container{Stagger: 100 * time.Millisecond, DelayChildren: 100 * time.Millisecond},
		Item:      Item{Axis: AxisY, Offset: 20, Duration: 600 * time.Millisecond},
		Trigger:   InView,
		Once:      true,
	}

	// Block is the single reveal of a larger panel (proficiency list, contact form)
	Block = Sequence{
		Name:    "block",
		Item:    Item{Axis: AxisY, Offset: 30, Duration: 600 * time.Millisecond},
		Trigger: InView,
		Once:    true,
	}

	Footer = Sequence{
		Name:      "footer",
		Container: Container{Stagger: 100 * time.Millisecond, DelayChildren: 100 * time.Millisecond},
		Item:      Item{Axis: AxisY, Offset: 10, Duration: 500 * time.Millisecond},
		Trigger:   InView,
		Once:      true,
	}

	FooterDivider = Sequence{
		Name:    "footer-divider",
		Item:    Item{Duration: 600 * time.Millisecond, Delay: 200 * time.Millisecond},
		Trigger: InView,
		Once:    true,
	}
)

// All returns every section sequence in page order
func All() []Sequence {
	return []Sequence{
		Nav, Hero, Header, SkillCards, SkillTags, Proficiency, ProficiencyBar,
		Projects, ContactInfo, Block, Footer, FooterDivider,
	}
}
