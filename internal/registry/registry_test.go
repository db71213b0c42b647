package registry

import "testing"

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"sequential", "parallel"} {
		if !Exists(id) {
			t.Errorf("builtin strategy %q not registered", id)
		}
	}

	infos := List()
	if len(infos) < 2 {
		t.Fatalf("expected at least 2 strategies, got %d", len(infos))
	}
	// List is sorted by ID
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("List not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
}

func TestCreate(t *testing.T) {
	s, err := Create("sequential", Options{})
	if err != nil {
		t.Fatalf("Create(sequential): %v", err)
	}
	if s.ID() != "sequential" {
		t.Errorf("wrong strategy ID: %q", s.ID())
	}

	p, err := Create("parallel", Options{Workers: 3})
	if err != nil {
		t.Fatalf("Create(parallel): %v", err)
	}
	if p.ID() != "parallel" {
		t.Errorf("wrong strategy ID: %q", p.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("gpu", Options{}); err == nil {
		t.Errorf("expected error for unknown strategy")
	}
	if Exists("gpu") {
		t.Errorf("Exists should be false for unknown strategy")
	}
}
