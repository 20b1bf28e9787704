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

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		score, combo, secs int
	}{
		{100, 4, 60},
		{50, 1, 30},
		{200, 7, 120},
	}
	for _, r := range runs {
		if _, err := store.SaveRun("catdash", r.score, r.combo, r.secs); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	// A different game must not leak into the results.
	if _, err := store.SaveRun("other", 999, 0, 10); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	top, err := store.TopRuns("catdash", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not sorted by score descending: %d, %d, %d",
			top[0].Score, top[1].Score, top[2].Score)
	}
	if top[0].MaxCombo != 7 || top[0].DurationSecs != 120 {
		t.Errorf("Run details lost: combo %d, duration %d", top[0].MaxCombo, top[0].DurationSecs)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun("catdash", i*10, 0, 0); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("catdash", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore("catdash")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 with no runs, got %d", score)
	}

	store.SaveRun("catdash", 42, 2, 30)
	store.SaveRun("catdash", 17, 1, 15)

	score, err = store.HighScore("catdash")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 42 {
		t.Errorf("Expected high score 42, got %d", score)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats("catdash")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 0 || st.Best != 0 {
		t.Errorf("Expected empty stats, got %+v", st)
	}

	store.SaveRun("catdash", 10, 1, 30)
	store.SaveRun("catdash", 30, 3, 90)

	st, err = store.Stats("catdash")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 2 || st.Best != 30 || st.Average != 20 || st.TotalSecs != 120 {
		t.Errorf("Unexpected stats: %+v", st)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("catdash", 10, 0, 0)
	store.SaveRun("other", 20, 0, 0)

	if err := store.ClearRuns("catdash"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, _ := store.TopRuns("catdash", 10)
	if len(top) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(top))
	}
	other, _ := store.TopRuns("other", 10)
	if len(other) != 1 {
		t.Error("ClearRuns touched another game's runs")
	}
}
