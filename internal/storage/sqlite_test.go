package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
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

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{SessionID: "a", Run: 1, Score: 12, Level: 1, Length: 4, Cause: "wall-collision"},
		{SessionID: "a", Run: 2, Score: 57, Level: 2, Length: 9, Cause: "self-collision"},
		{SessionID: "b", Run: 1, Score: 30, Level: 1, Length: 6, Cause: "quit"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(top))
	}
	if top[0].Score != 57 || top[1].Score != 30 {
		t.Errorf("TopRuns scores = %d,%d, expected 57,30", top[0].Score, top[1].Score)
	}
	if top[0].Cause != "self-collision" || top[0].Level != 2 || top[0].Length != 9 {
		t.Errorf("top run = %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreSessionRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{SessionID: "s1", Run: 2, Score: 5, Level: 1, Length: 2, Cause: "quit"})
	store.SaveRun(RunRecord{SessionID: "s2", Run: 1, Score: 9, Level: 1, Length: 3, Cause: "wall-collision"})
	store.SaveRun(RunRecord{SessionID: "s1", Run: 1, Score: 3, Level: 1, Length: 2, Cause: "wall-collision"})

	runs, err := store.SessionRuns("s1")
	if err != nil {
		t.Fatalf("SessionRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Run != 1 || runs[1].Run != 2 {
		t.Errorf("runs out of order: %d, %d", runs[0].Run, runs[1].Run)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty history, got %d", best)
	}

	store.SaveRun(RunRecord{SessionID: "x", Run: 1, Score: 100, Level: 3, Length: 20, Cause: "obstacle-collision"})
	store.SaveRun(RunRecord{SessionID: "x", Run: 2, Score: 40, Level: 1, Length: 5, Cause: "quit"})

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 100 {
		t.Errorf("Expected best score 100, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{SessionID: "x", Run: 1, Score: 10, Level: 1, Length: 2, Cause: "quit"})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.AllRuns()
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store1.SaveRun(RunRecord{SessionID: "p", Run: 1, Score: 999, Level: 5, Length: 30, Cause: "wall-collision"})
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	best, err := store2.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 999 {
		t.Errorf("Expected persisted score 999, got %d", best)
	}
}
