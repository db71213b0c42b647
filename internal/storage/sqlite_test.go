package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun(scenario, strategy string, durationMS int64) RunRecord {
	return RunRecord{
		Scenario:   scenario,
		Strategy:   strategy,
		Ships:      200,
		Planets:    5,
		Ticks:      3600,
		Dt:         1.0 / 60,
		Seed:       12345,
		DurationMS: durationMS,
		Checksum:   "deadbeefcafebabe",
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RunRecord{
		sampleRun("orbit", "sequential", 900),
		sampleRun("orbit", "parallel", 300),
		sampleRun("orbit", "parallel", 250),
		sampleRun("dense", "parallel", 4000),
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RunsByScenario("orbit", 10)
	if err != nil {
		t.Fatalf("RunsByScenario() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 orbit runs, got %d", len(runs))
	}
	for _, r := range runs {
		if r.Scenario != "orbit" {
			t.Errorf("Expected scenario orbit, got %q", r.Scenario)
		}
		if r.Checksum != "deadbeefcafebabe" {
			t.Errorf("Checksum not round-tripped: %q", r.Checksum)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 4 {
		t.Errorf("Expected 4 recent runs, got %d", len(recent))
	}
}

func TestBestDuration(t *testing.T) {
	store := openTestStore(t)

	for _, ms := range []int64{900, 300, 250} {
		if _, err := store.SaveRun(sampleRun("orbit", "parallel", ms)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err := store.BestDuration("orbit", "parallel")
	if err != nil {
		t.Fatalf("BestDuration() failed: %v", err)
	}
	if best != 250 {
		t.Errorf("Expected best 250, got %d", best)
	}

	// No runs for this pair yet
	none, err := store.BestDuration("orbit", "sequential")
	if err != nil {
		t.Fatalf("BestDuration() failed: %v", err)
	}
	if none != 0 {
		t.Errorf("Expected 0 for missing pair, got %d", none)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(sampleRun("orbit", "sequential", 100)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(sampleRun("dense", "sequential", 100)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	if err := store.ClearRuns("orbit"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.RunsByScenario("orbit", 10)
	if err != nil {
		t.Fatalf("RunsByScenario() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected 0 orbit runs after clear, got %d", len(runs))
	}

	dense, err := store.RunsByScenario("dense", 10)
	if err != nil {
		t.Fatalf("RunsByScenario() failed: %v", err)
	}
	if len(dense) != 1 {
		t.Errorf("Clear should not touch other scenarios, got %d dense runs", len(dense))
	}
}

func TestScenarioStats(t *testing.T) {
	store := openTestStore(t)

	for _, ms := range []int64{100, 200, 300} {
		if _, err := store.SaveRun(sampleRun("orbit", "parallel", ms)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.GetScenarioStats("orbit")
	if err != nil {
		t.Fatalf("GetScenarioStats() failed: %v", err)
	}
	if stats.RunCount != 3 {
		t.Errorf("Expected 3 runs, got %d", stats.RunCount)
	}
	if stats.BestMS != 100 {
		t.Errorf("Expected best 100ms, got %d", stats.BestMS)
	}
	if stats.AvgMS != 200 {
		t.Errorf("Expected avg 200ms, got %f", stats.AvgMS)
	}
}
