// Package storage provides SQLite-based persistence for scores and episode
// rollouts. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record from interactive play.
type ScoreEntry struct {
	ID        int64
	Score     int
	CreatedAt time.Time
}

// EpisodeRecord represents one headless rollout episode.
type EpisodeRecord struct {
	ID        int64
	Seed      int64
	Policy    string
	Steps     int
	Score     int
	Lines     int
	Reward    float64
	Duration  time.Duration
	CreatedAt time.Time
}

// EpisodeStats aggregates the recorded episodes.
type EpisodeStats struct {
	Episodes  int
	AvgSteps  float64
	AvgScore  float64
	BestScore int
}

// Open creates or opens a SQLite database at the given path. It creates the
// parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);

		CREATE TABLE IF NOT EXISTS episodes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			policy TEXT NOT NULL,
			steps INTEGER NOT NULL,
			score INTEGER NOT NULL,
			lines INTEGER NOT NULL,
			reward REAL NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_episodes_policy ON episodes(policy);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a new score. Returns the ID of the inserted record.
func (s *Store) SaveScore(score int) (int64, error) {
	result, err := s.db.Exec("INSERT INTO scores (score) VALUES (?)", score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores, ordered descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		"SELECT id, score, created_at FROM scores ORDER BY score DESC, created_at ASC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		if err := rows.Scan(&e.ID, &e.Score, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score row: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// HighScore returns the highest recorded score, or 0 when none exist.
func (s *Store) HighScore() (int, error) {
	var high sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&high)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !high.Valid {
		return 0, nil
	}
	return int(high.Int64), nil
}

// SaveEpisode records a rollout episode. Returns the ID of the inserted
// record.
func (s *Store) SaveEpisode(rec EpisodeRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO episodes (seed, policy, steps, score, lines, reward, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Seed, rec.Policy, rec.Steps, rec.Score, rec.Lines, rec.Reward,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save episode: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentEpisodes retrieves the most recent N episodes.
func (s *Store) RecentEpisodes(limit int) ([]EpisodeRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, policy, steps, score, lines, reward, duration_ms, created_at
		 FROM episodes ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episodes: %w", err)
	}
	defer rows.Close()

	var records []EpisodeRecord
	for rows.Next() {
		var rec EpisodeRecord
		var durationMS int64
		if err := rows.Scan(&rec.ID, &rec.Seed, &rec.Policy, &rec.Steps, &rec.Score,
			&rec.Lines, &rec.Reward, &durationMS, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan episode row: %w", err)
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Stats aggregates all recorded episodes.
func (s *Store) Stats() (EpisodeStats, error) {
	var stats EpisodeStats
	var avgSteps, avgScore sql.NullFloat64
	var best sql.NullInt64

	err := s.db.QueryRow(
		"SELECT COUNT(*), AVG(steps), AVG(score), MAX(score) FROM episodes",
	).Scan(&stats.Episodes, &avgSteps, &avgScore, &best)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query episode stats: %w", err)
	}

	stats.AvgSteps = avgSteps.Float64
	stats.AvgScore = avgScore.Float64
	stats.BestScore = int(best.Int64)
	return stats, nil
}
