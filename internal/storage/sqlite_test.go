package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun("jump", 12, 30); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("jump")
	if err != nil || high != 12 {
		t.Errorf("HighScore after reopen = %d, %v; want 12", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		score, height int
	}{
		{100, 40},
		{50, 90},
		{200, 10},
		{100, 60},
	}
	for _, r := range runs {
		if _, err := store.SaveRun("jump", r.score, r.height); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun("other", 500, 500); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	top, err := store.TopScores("jump", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(top))
	}

	want := []struct{ score, height int }{{200, 10}, {100, 60}, {100, 40}, {50, 90}}
	for i, w := range want {
		if top[i].Score != w.score || top[i].Height != w.height {
			t.Errorf("rank %d: got %d/%d, want %d/%d", i+1, top[i].Score, top[i].Height, w.score, w.height)
		}
		if top[i].GameID != "jump" {
			t.Errorf("rank %d: wrong game %q", i+1, top[i].GameID)
		}
		if top[i].RunID == uuid.Nil {
			t.Errorf("rank %d: missing run id", i+1)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("jump", (i+1)*100, i)
	}

	scores, err := store.TopScores("jump", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to 10.
	for i := 0; i < 10; i++ {
		store.SaveRun("jump", i, i)
	}
	scores, _ = store.TopScores("jump", 0)
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun("jump", 7, 33)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil || run.RunID != id || run.Score != 7 || run.Height != 33 {
		t.Errorf("unexpected run: %+v", run)
	}
	if run != nil && run.CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}

	missing, err := store.RunByID(uuid.New())
	if err != nil || missing != nil {
		t.Errorf("unknown run: got %+v, %v", missing, err)
	}
}

func TestStoreHighScoreAndBestHeight(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("jump")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	best, err := store.BestHeight("jump")
	if err != nil {
		t.Fatalf("BestHeight() failed: %v", err)
	}
	if high != 0 || best != 0 {
		t.Errorf("empty game: high=%d best=%d, want 0/0", high, best)
	}

	store.SaveRun("jump", 100, 250)
	store.SaveRun("jump", 300, 120)
	store.SaveRun("jump", 200, 80)

	high, _ = store.HighScore("jump")
	best, _ = store.BestHeight("jump")
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
	if best != 250 {
		t.Errorf("Expected best height of 250, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("jump")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats: %+v", stats)
	}

	store.SaveRun("jump", 10, 100)
	store.SaveRun("jump", 30, 50)

	stats, err = store.Stats("jump")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 30 || stats.BestHeight != 100 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 20 || stats.TotalScore != 40 {
		t.Errorf("unexpected aggregates: avg=%v total=%d", stats.AvgScore, stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played should be set")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("jump", 100, 1)
	store.SaveRun("jump", 200, 2)
	store.SaveRun("other", 300, 3)

	if err := store.ClearScores("jump"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	jumpScores, _ := store.TopScores("jump", 10)
	if len(jumpScores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(jumpScores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other games should not be affected by clearing jump")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.rikkajump/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".rikkajump", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}
