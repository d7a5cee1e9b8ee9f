package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{in: "light", want: Light},
		{in: "dark", want: Dark},
		{in: " DARK ", want: Dark},
		{in: "sepia", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTheme) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidTheme", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("Parse(%q) = %v, %v", tt.in, got, err)
			}
		})
	}
}

func TestLoadFallsBack(t *testing.T) {
	store := NewMemoryStore()
	if got := Load(store, Light); got != Light {
		t.Errorf("empty store: got %s", got)
	}

	_ = store.Set(Key, "purple")
	if got := Load(store, Light); got != Light {
		t.Errorf("invalid value: got %s", got)
	}

	store.Err = errors.New("boom")
	if got := Load(store, Dark); got != Dark {
		t.Errorf("failing store: got %s", got)
	}

	if got := Load(nil, Dark); got != Dark {
		t.Errorf("nil store: got %s", got)
	}
}

func TestToggleRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	next, err := Toggle(store, Load(store, Light))
	if err != nil || next != Dark {
		t.Fatalf("Toggle() = %s, %v", next, err)
	}
	if got := Load(store, Light); got != Dark {
		t.Errorf("saved theme = %s, want dark", got)
	}

	next, err = Toggle(store, next)
	if err != nil || next != Light {
		t.Fatalf("second Toggle() = %s, %v", next, err)
	}
	if got := Load(store, Dark); got != Light {
		t.Errorf("saved theme = %s, want light", got)
	}
}

func TestToggleReportsSaveError(t *testing.T) {
	store := NewMemoryStore()
	store.Err = errors.New("disk full")

	next, err := Toggle(store, Light)
	if next != Dark {
		t.Errorf("Toggle() must still flip, got %s", next)
	}
	if err == nil {
		t.Error("expected save error")
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.yaml")
	store := NewFileStore(path)

	if _, ok, err := store.Get(Key); ok || err != nil {
		t.Fatalf("Get() on missing file = %v, %v", ok, err)
	}

	if err := Save(store, Dark); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("state file mode = %v, want 0600", perm)
	}

	reopened := NewFileStore(path)
	if got := Load(reopened, Light); got != Dark {
		t.Errorf("reloaded theme = %s, want dark", got)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	if err := os.WriteFile(path, []byte("- a\n- b\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path)

	if got := Load(store, Light); got != Light {
		t.Errorf("corrupt file: got %s", got)
	}
	if err := Save(store, Dark); err != nil {
		t.Fatalf("Save() over corrupt file: %v", err)
	}
	if got := Load(store, Light); got != Dark {
		t.Errorf("after rewrite: got %s", got)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	if err := Save(NewMemoryStore(), Theme("blue")); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("Save() error = %v", err)
	}
}
