package motion

// State is the visibility of a container
type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Viewport tracks a container's visibility as it crosses the viewport.
// With once set, the first intersection is final.
type Viewport struct {
	once  bool
	state State
	fired int
}

// NewViewport returns a hidden viewport tracker
func NewViewport(once bool) *Viewport {
	return &Viewport{once: once}
}

// Observe feeds an intersection change and reports whether the state changed
func (v *Viewport) Observe(intersecting bool) bool {
	switch {
	case intersecting && v.state == Hidden:
		v.state = Visible
		v.fired++
		return true
	case !intersecting && v.state == Visible && !v.once:
		v.state = Hidden
		return true
	}
	return false
}

// State returns the current visibility
func (v *Viewport) State() State {
	return v.state
}

// Fired returns how many times the container entered the visible state
func (v *Viewport) Fired() int {
	return v.fired
}

// Done reports whether no further transition can happen
func (v *Viewport) Done() bool {
	return v.once && v.state == Visible
}
