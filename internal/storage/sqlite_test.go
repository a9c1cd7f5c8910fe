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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.tictactoe/results.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".tictactoe", "results.db")); err != nil {
		t.Errorf("Database should be created under HOME: %v", err)
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Session: "brave-otter", Player: "alice", Outcome: OutcomeX, Moves: 5},
		{Session: "brave-otter", Player: "alice", Outcome: OutcomeDraw, Moves: 9},
		{Session: "calm-heron", Player: "bob", Outcome: OutcomeO, Moves: 6},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	recent, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(recent))
	}

	// Newest first
	if recent[0].Session != "calm-heron" || recent[0].Outcome != OutcomeO {
		t.Errorf("Expected newest result first, got %+v", recent[0])
	}
	if recent[2].Moves != 5 || recent[2].Player != "alice" {
		t.Errorf("Expected oldest result last, got %+v", recent[2])
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveResult(Result{Session: "s", Outcome: OutcomeX, Moves: 5 + i}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	recent, err := store.RecentResults(3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(recent))
	}
	if recent[0].Moves != 9 {
		t.Errorf("Expected newest (9 moves) first, got %d", recent[0].Moves)
	}
}

func TestStoreSaveRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(Result{Session: "s", Outcome: "in progress"}); err == nil {
		t.Error("SaveResult() should reject an unfinished outcome")
	}
}

func TestStoreTally(t *testing.T) {
	store := openTestStore(t)

	tally, err := store.Tally()
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if tally != (Tally{}) {
		t.Errorf("Empty store tally = %+v, expected zero", tally)
	}

	for _, outcome := range []string{OutcomeX, OutcomeX, OutcomeO, OutcomeDraw, OutcomeX} {
		if _, err := store.SaveResult(Result{Session: "s", Outcome: outcome, Moves: 7}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	tally, err = store.Tally()
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if tally.XWins != 3 || tally.OWins != 1 || tally.Draws != 1 {
		t.Errorf("Tally() = %+v, expected 3/1/1", tally)
	}
	if tally.Total() != 5 {
		t.Errorf("Total() = %d, expected 5", tally.Total())
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Session: "s", Outcome: OutcomeO, Moves: 6})

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	recent, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected no results after clear, got %d", len(recent))
	}
}
