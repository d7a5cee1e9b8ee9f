package content

import "time"

// Visibility is the display state of one project card during filtering.
type Visibility int

const (
	// Shown cards are fully visible.
	Shown Visibility = iota
	// Appearing cards are laid out but not yet at full opacity.
	Appearing
	// Fading cards are still laid out but on their way out.
	Fading
	// Hidden cards are removed from the layout.
	Hidden
)

func (v Visibility) String() string {
	switch v {
	case Shown:
		return "shown"
	case Appearing:
		return "appearing"
	case Fading:
		return "fading"
	case Hidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Visible reports whether the card takes up space on the page.
func (v Visibility) Visible() bool {
	return v != Hidden
}

// Transition tells the caller to call Settle(Generation) after Delay.
type Transition struct {
	Generation int
	Delay      time.Duration
	Phase      Visibility // the visibility that settles: Appearing or Fading
}

// ProjectFilter tracks the active category button and per-card visibility.
// Appearing cards settle to Shown after ShowDelay; fading cards settle to
// Hidden after HideDelay.
type ProjectFilter struct {
	ShowDelay time.Duration
	HideDelay time.Duration

	projects   []Project
	active     string
	states     []Visibility
	generation int
}

// NewProjectFilter starts with every project shown and "all" active.
func NewProjectFilter(projects []Project, showDelay, hideDelay time.Duration) *ProjectFilter {
	states := make([]Visibility, len(projects))
	return &ProjectFilter{
		ShowDelay: showDelay,
		HideDelay: hideDelay,
		projects:  projects,
		active:    CategoryAll,
		states:    states,
	}
}

// Active returns the active category.
func (f *ProjectFilter) Active() string {
	return f.active
}

// Apply activates category and returns the settle transitions to schedule.
func (f *ProjectFilter) Apply(category string) []Transition {
	f.active = category
	f.generation++

	var appearing, fading bool
	for i, project := range f.projects {
		match := category == CategoryAll || project.Category == category
		switch {
		case match && f.states[i] != Shown:
			f.states[i] = Appearing
			appearing = true
		case !match && f.states[i] != Hidden:
			f.states[i] = Fading
			fading = true
		}
	}

	var transitions []Transition
	if appearing {
		transitions = append(transitions, Transition{Generation: f.generation, Delay: f.ShowDelay, Phase: Appearing})
	}
	if fading {
		transitions = append(transitions, Transition{Generation: f.generation, Delay: f.HideDelay, Phase: Fading})
	}
	return transitions
}

// Settle completes a transition. Transitions from an older Apply are ignored.
func (f *ProjectFilter) Settle(t Transition) bool {
	if t.Generation != f.generation {
		return false
	}
	changed := false
	for i, state := range f.states {
		switch {
		case t.Phase == Appearing && state == Appearing:
			f.states[i] = Shown
			changed = true
		case t.Phase == Fading && state == Fading:
			f.states[i] = Hidden
			changed = true
		}
	}
	return changed
}

// Visibility returns the state of project i.
func (f *ProjectFilter) Visibility(i int) Visibility {
	if i < 0 || i >= len(f.states) {
		return Hidden
	}
	return f.states[i]
}

// VisibleIndexes returns the indexes of cards that take up space, in order.
func (f *ProjectFilter) VisibleIndexes() []int {
	var out []int
	for i, state := range f.states {
		if state.Visible() {
			out = append(out, i)
		}
	}
	return out
}

// Projects returns the filtered project list.
func (f *ProjectFilter) Projects() []Project {
	return f.projects
}
