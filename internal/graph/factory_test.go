package graph

import (
	"strings"
	"testing"

	"github.com/anthropics/og/internal/model"
)

func TestNew_DefaultsToMemory(t *testing.T) {
	t.Setenv(EnvBackend, "")
	eng, err := New("", Options{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if eng.Name() != BackendMemory {
		t.Errorf("backend = %q, want %q", eng.Name(), BackendMemory)
	}
}

func TestNew_EnvSelectsBackend(t *testing.T) {
	t.Setenv(EnvBackend, BackendMemory)
	eng, err := New("", Options{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if eng.Name() != BackendMemory {
		t.Errorf("backend = %q, want %q", eng.Name(), BackendMemory)
	}
}

func TestNew_ExplicitNameWinsOverEnv(t *testing.T) {
	t.Setenv(EnvBackend, "bogus")
	eng, err := New(BackendMemory, Options{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if eng.Name() != BackendMemory {
		t.Errorf("backend = %q, want %q", eng.Name(), BackendMemory)
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New("neo4j", Options{})
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if model.KindOf(err) != model.ErrValidation {
		t.Errorf("error kind = %s, want %s", model.KindOf(err), model.ErrValidation)
	}
	if !strings.Contains(err.Error(), BackendMemory) {
		t.Errorf("error should list available backends: %v", err)
	}
}

func TestBackends_ListsBuiltins(t *testing.T) {
	names := Backends()
	want := map[string]bool{BackendMemory: false, BackendSQL: false, BackendDolt: false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("backend %q missing from %v", name, names)
		}
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("backends not sorted: %v", names)
		}
	}
}
