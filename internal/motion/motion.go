// Package motion describes the entrance animations of the page.
//
// A Sequence pairs a container variant, which releases its children one
// after another, with the item variant each child animates through. The
// server computes the per-child schedule and writes it into the markup;
// the browser only decides when a container becomes visible.
package motion

import (
	"fmt"
	"strconv"
	"time"
)

// Axis is the direction an item travels while entering
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

// Trigger decides what makes a container visible
type Trigger int

const (
	// OnLoad containers become visible as soon as the page loads
	OnLoad Trigger = iota
	// InView containers become visible when they scroll into the viewport
	InView
)

func (t Trigger) String() string {
	switch t {
	case OnLoad:
		return "load"
	case InView:
		return "view"
	default:
		return "unknown"
	}
}

// Container releases child animations in document order
type Container struct {
	Stagger       time.Duration
	DelayChildren time.Duration
}

// ChildDelay returns when the i-th child starts, relative to the container
func (c Container) ChildDelay(i int) time.Duration {
	if i < 0 {
		i = 0
	}
	return c.DelayChildren + time.Duration(i)*c.Stagger
}

// Item is a single element's hidden/visible definition. Hidden means
// transparent and displaced by Offset along Axis (or shrunk to Scale);
// visible means opaque and at rest.
type Item struct {
	Axis     Axis
	Offset   float64 // pixels
	Scale    float64 // initial scale; zero means unscaled
	Duration time.Duration
	Delay    time.Duration
}

// Sequence is a container and the variant its children share
type Sequence struct {
	Name      string
	Container Container
	Item      Item
	Trigger   Trigger
	Once      bool
}

// Step is the computed timing of one child
type Step struct {
	Index    int
	Delay    time.Duration
	Duration time.Duration
}

// Schedule returns the timing of n children in document order
func (s Sequence) Schedule(n int) []Step {
	steps := make([]Step, n)
	for i := range steps {
		steps[i] = s.Step(i)
	}
	return steps
}

// Step returns the timing of the i-th child
func (s Sequence) Step(i int) Step {
	return Step{
		Index:    i,
		Delay:    s.Container.ChildDelay(i) + s.Item.Delay,
		Duration: s.Item.Duration,
	}
}

// Total returns how long the whole sequence takes for n children
func (s Sequence) Total(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	last := s.Step(n - 1)
	return last.Delay + last.Duration
}

// Vars returns the CSS custom properties for the i-th child
func (s Sequence) Vars(i int) map[string]string {
	step := s.Step(i)
	vars := map[string]string{
		"--reveal-delay":    ms(step.Delay),
		"--reveal-duration": ms(step.Duration),
	}
	switch s.Item.Axis {
	case AxisX:
		vars["--reveal-x"] = px(s.Item.Offset)
	case AxisY:
		vars["--reveal-y"] = px(s.Item.Offset)
	}
	if s.Item.Scale > 0 {
		vars["--reveal-scale"] = strconv.FormatFloat(s.Item.Scale, 'f', -1, 64)
	}
	return vars
}

func ms(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

func px(v float64) string {
	return fmt.Sprintf("%spx", strconv.FormatFloat(v, 'f', -1, 64))
}
