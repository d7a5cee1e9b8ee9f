package content

import (
	"reflect"
	"testing"
	"time"
)

func filterFixture() *ProjectFilter {
	projects := []Project{
		{Title: "Queue", Category: "backend"},
		{Title: "Dash", Category: "web"},
		{Title: "Broker", Category: "backend"},
	}
	return NewProjectFilter(projects, 100*time.Millisecond, 300*time.Millisecond)
}

func states(f *ProjectFilter) []Visibility {
	out := make([]Visibility, len(f.Projects()))
	for i := range out {
		out[i] = f.Visibility(i)
	}
	return out
}

func TestFilterStartsWithAllShown(t *testing.T) {
	f := filterFixture()
	if f.Active() != CategoryAll {
		t.Errorf("Active() = %s, want all", f.Active())
	}
	if got := f.VisibleIndexes(); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("VisibleIndexes() = %v", got)
	}
}

func TestFilterHidesAfterHideDelay(t *testing.T) {
	f := filterFixture()

	transitions := f.Apply("backend")
	if f.Active() != "backend" {
		t.Errorf("Active() = %s", f.Active())
	}
	if len(transitions) != 1 || transitions[0].Phase != Fading || transitions[0].Delay != 300*time.Millisecond {
		t.Fatalf("unexpected transitions %+v", transitions)
	}
	if got := states(f); !reflect.DeepEqual(got, []Visibility{Shown, Fading, Shown}) {
		t.Errorf("states before settle = %v", got)
	}

	if !f.Settle(transitions[0]) {
		t.Error("Settle() reported no change")
	}
	if got := f.VisibleIndexes(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("VisibleIndexes() after settle = %v", got)
	}
}

func TestFilterShowsAfterShowDelay(t *testing.T) {
	f := filterFixture()
	for _, tr := range f.Apply("web") {
		f.Settle(tr)
	}

	transitions := f.Apply(CategoryAll)
	if len(transitions) != 1 || transitions[0].Phase != Appearing || transitions[0].Delay != 100*time.Millisecond {
		t.Fatalf("unexpected transitions %+v", transitions)
	}
	if got := states(f); !reflect.DeepEqual(got, []Visibility{Appearing, Shown, Appearing}) {
		t.Errorf("states before settle = %v", got)
	}
	if got := f.VisibleIndexes(); len(got) != 3 {
		t.Errorf("appearing cards must take space immediately, got %v", got)
	}

	f.Settle(transitions[0])
	if got := states(f); !reflect.DeepEqual(got, []Visibility{Shown, Shown, Shown}) {
		t.Errorf("states after settle = %v", got)
	}
}

func TestFilterIgnoresStaleTransitions(t *testing.T) {
	f := filterFixture()

	stale := f.Apply("web")
	fresh := f.Apply("backend")

	for _, tr := range stale {
		if f.Settle(tr) {
			t.Errorf("stale transition %+v applied", tr)
		}
	}
	for _, tr := range fresh {
		f.Settle(tr)
	}
	if got := f.VisibleIndexes(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("VisibleIndexes() = %v", got)
	}
}

func TestVisibilityOutOfRange(t *testing.T) {
	f := filterFixture()
	if f.Visibility(-1) != Hidden || f.Visibility(10) != Hidden {
		t.Error("out of range indexes must be hidden")
	}
	if Fading.String() != "fading" || !Fading.Visible() || Hidden.Visible() {
		t.Error("unexpected visibility helpers")
	}
}
