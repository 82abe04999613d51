package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

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

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore(score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %d, %d, %d",
			scores[0].Score, scores[1].Score, scores[2].Score)
	}

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 200 {
		t.Errorf("Expected high score 200, got %d", high)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore(i); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with limit 5, got %d", len(scores))
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 on empty store, got %d", high)
	}
}

func TestStoreEpisodes(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	records := []EpisodeRecord{
		{Seed: 42, Policy: "random", Steps: 120, Score: 3, Lines: 3, Reward: -98.2, Duration: 15 * time.Millisecond},
		{Seed: 43, Policy: "random", Steps: 250, Score: 7, Lines: 7, Reward: -95.5, Duration: 31 * time.Millisecond},
	}
	for _, rec := range records {
		if _, err := store.SaveEpisode(rec); err != nil {
			t.Fatalf("SaveEpisode() failed: %v", err)
		}
	}

	recent, err := store.RecentEpisodes(10)
	if err != nil {
		t.Fatalf("RecentEpisodes() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 episodes, got %d", len(recent))
	}

	// Most recent first
	if recent[0].Seed != 43 {
		t.Errorf("Expected most recent episode first, got seed %d", recent[0].Seed)
	}
	if recent[0].Duration != 31*time.Millisecond {
		t.Errorf("Duration round-trip failed: %v", recent[0].Duration)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Episodes != 2 {
		t.Errorf("Expected 2 episodes in stats, got %d", stats.Episodes)
	}
	if stats.BestScore != 7 {
		t.Errorf("Expected best score 7, got %d", stats.BestScore)
	}
	if stats.AvgSteps != 185 {
		t.Errorf("Expected avg steps 185, got %v", stats.AvgSteps)
	}
}
