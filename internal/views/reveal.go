package views

import (
	"sort"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"navjot.dev/internal/icons"
	"navjot.dev/internal/motion"
)

// revealContainer marks an element whose children enter in sequence
func revealContainer(seq motion.Sequence) g.Node {
	return g.Group{
		g.Attr("data-reveal", "container"),
		g.Attr("data-reveal-name", seq.Name),
		g.Attr("data-reveal-trigger", seq.Trigger.String()),
		g.Attr("data-reveal-once", strconv.FormatBool(seq.Once)),
	}
}

// revealItem marks the i-th child of a container
func revealItem(seq motion.Sequence, i int) g.Node {
	return g.Group{
		g.Attr("data-reveal", "item"),
		g.Attr("style", styleVars(seq.Vars(i))),
	}
}

// revealSelf marks an element that is its own container
func revealSelf(seq motion.Sequence) g.Node {
	return revealSelfVars(seq, seq.Vars(0))
}

func revealSelfVars(seq motion.Sequence, vars map[string]string) g.Node {
	return g.Group{
		g.Attr("data-reveal", "self"),
		g.Attr("data-reveal-name", seq.Name),
		g.Attr("data-reveal-trigger", seq.Trigger.String()),
		g.Attr("data-reveal-once", strconv.FormatBool(seq.Once)),
		g.Attr("style", styleVars(vars)),
	}
}

// styleVars renders custom properties in a stable order
func styleVars(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+":"+vars[k])
	}
	return strings.Join(parts, ";")
}

// icon renders a Lucide placeholder
func icon(id string, size int) g.Node {
	s := strconv.Itoa(size)
	return g.El("i",
		g.Attr("data-lucide", icons.LucideNameOrDefault(id)),
		g.Attr("width", s),
		g.Attr("height", s),
		g.Attr("aria-hidden", "true"),
	)
}

// sectionHeader renders a section title that reveals on scroll
func sectionHeader(lead, highlight, blurb string) g.Node {
	return h.Div(
		h.Class("section-header mb-16 text-center"),
		revealSelf(motion.Header),
		h.H2(
			h.Class("text-5xl md:text-6xl font-bold mb-4"),
			g.Text(lead+" "),
			h.Span(h.Class("gradient-text"), g.Text(highlight)),
		),
		h.P(h.Class("text-xl text-foreground/60 max-w-2xl mx-auto"), g.Text(blurb)),
	)
}
