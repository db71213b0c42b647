package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	for _, id := range BuiltinIDs() {
		s, err := Load(id, "")
		if err != nil {
			t.Fatalf("Load(%q): %v", id, err)
		}
		if err := s.Validate(); err != nil {
			t.Errorf("embedded scenario %q invalid: %v", id, err)
		}
		if s.Population.Ships <= 0 {
			t.Errorf("scenario %q has no ships", id)
		}
	}
}

func TestLoadUnknownID(t *testing.T) {
	if _, err := Load("does-not-exist", ""); err == nil {
		t.Errorf("expected error for unknown scenario ID")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte(`
population:
  ships: 7
  planets: 2
physics:
  area_size: 50
  gravity: 10
  min_planet_radius: 1
  max_planet_radius: 3
  min_ship_speed: 1
  max_ship_speed: 2
run:
  tick_rate: 30
  ticks: 100
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load("orbit", path)
	if err != nil {
		t.Fatalf("Load custom: %v", err)
	}
	if s.Population.Ships != 7 || s.Physics.AreaSize != 50 || s.Run.TickRate != 30 {
		t.Errorf("custom scenario not applied: %+v", s)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load("orbit", "/nonexistent/path.yaml"); err == nil {
		t.Errorf("expected error for missing custom path")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"negative ships", func(s *Scenario) { s.Population.Ships = -1 }},
		{"zero area", func(s *Scenario) { s.Physics.AreaSize = 0 }},
		{"inverted radius range", func(s *Scenario) { s.Physics.MinPlanetRadius = 20 }},
		{"inverted speed range", func(s *Scenario) { s.Physics.MinShipSpeed = 99 }},
		{"zero tick rate", func(s *Scenario) { s.Run.TickRate = 0 }},
	}

	for _, tc := range cases {
		s := DefaultScenario()
		tc.mutate(&s)
		if err := s.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}

	if err := DefaultScenario().Validate(); err != nil {
		t.Errorf("default scenario should validate, got %v", err)
	}
}

func TestSimConfig(t *testing.T) {
	s := DefaultScenario()
	cfg := s.SimConfig()

	if cfg.ShipCount != s.Population.Ships {
		t.Errorf("ShipCount: got %d, want %d", cfg.ShipCount, s.Population.Ships)
	}
	if cfg.PlanetCount != s.Population.Planets {
		t.Errorf("PlanetCount: got %d, want %d", cfg.PlanetCount, s.Population.Planets)
	}
	if cfg.AreaSize != s.Physics.AreaSize || cfg.Gravity != s.Physics.Gravity {
		t.Errorf("physics fields not carried over: %+v", cfg)
	}
}
