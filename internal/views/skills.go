package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"navjot.dev/internal/models"
	"navjot.dev/internal/motion"
)

// Skills renders the skill cards and the proficiency bars
func Skills(categories []models.SkillCategory, levels []models.Proficiency) g.Node {
	cards := make([]g.Node, 0, len(categories))
	for i, c := range categories {
		cards = append(cards, skillCard(c, i))
	}

	rows := make([]g.Node, 0, len(levels))
	for i, p := range levels {
		rows = append(rows, proficiencyRow(p, i))
	}

	return h.Section(
		h.ID("skills"),
		h.Class("py-20 md:py-32 relative overflow-hidden"),
		h.Div(
			h.Class("container mx-auto px-4"),
			sectionHeader("My", "Skills & Expertise",
				"A comprehensive toolkit of technologies and practices that enable me to build exceptional web experiences."),
			h.Div(
				h.Class("skill-grid grid md:grid-cols-3 gap-8 mb-16"),
				revealContainer(motion.SkillCards),
				g.Group(cards),
			),
			h.Div(
				h.Class("proficiency max-w-2xl mx-auto"),
				revealSelf(motion.Block),
				h.H3(h.Class("text-2xl font-bold mb-8 text-center"), g.Text("Proficiency Levels")),
				h.Div(
					revealContainer(motion.Proficiency),
					g.Group(rows),
				),
			),
		),
	)
}

func skillCard(c models.SkillCategory, i int) g.Node {
	tags := make([]g.Node, 0, len(c.Skills))
	for j, skill := range c.Skills {
		tags = append(tags, h.Span(
			h.Class("skill-tag"),
			revealItem(motion.SkillTags, j),
			g.Text(skill),
		))
	}

	return h.Div(
		h.Class("skill-card group relative"),
		revealItem(motion.SkillCards, i),
		h.Div(
			h.Class("card p-8"),
			h.Div(h.Class("card-icon bg-gradient-to-br "+c.Color), icon(c.Icon, 32)),
			h.H3(h.Class("text-2xl font-bold mb-4"), g.Text(c.Title)),
			h.Div(
				h.Class("flex flex-wrap gap-3"),
				revealContainer(motion.SkillTags),
				g.Group(tags),
			),
		),
	)
}

func proficiencyRow(p models.Proficiency, i int) g.Node {
	level := strconv.Itoa(p.Level)
	bar := motion.ProficiencyBar.Vars(0)
	bar["--bar-width"] = level + "%"

	return h.Div(
		h.Class("proficiency-row mb-6"),
		revealItem(motion.Proficiency, i),
		h.Div(
			h.Class("flex justify-between mb-2"),
			h.Span(h.Class("font-semibold"), g.Text(p.Name)),
			h.Span(h.Class("text-primary font-bold"), g.Text(level+"%")),
		),
		h.Div(
			h.Class("bar-track"),
			h.Div(
				h.Class("bar"),
				g.Attr("role", "progressbar"),
				g.Attr("aria-label", p.Name),
				g.Attr("aria-valuemin", "0"),
				g.Attr("aria-valuemax", "100"),
				g.Attr("aria-valuenow", level),
				revealSelfVars(motion.ProficiencyBar, bar),
			),
		),
	)
}
