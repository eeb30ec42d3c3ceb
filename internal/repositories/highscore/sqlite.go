package highscore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/yahtzee/internal/models"
	_ "modernc.org/sqlite"
)

const createHighScoresTable = `CREATE TABLE IF NOT EXISTS high_scores (
	rank INTEGER PRIMARY KEY,
	score INTEGER NOT NULL,
	name TEXT NOT NULL
)`

// SQLiteConfig holds configuration for the SQLite high-score repository
type SQLiteConfig struct {
	// Path of the database file
	Path string
}

// SQLiteRepository persists the ledger in a SQLite table, one row per rank
type SQLiteRepository struct {
	sqlDB *sql.DB
}

// OpenSQLite opens the database and creates the high_scores table if needed
func OpenSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(createHighScoresTable); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create high_scores table: %w", err)
	}

	return &SQLiteRepository{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.sqlDB == nil {
		return nil
	}
	return r.sqlDB.Close()
}

// LoadEntries reads every row ordered by rank
func (r *SQLiteRepository) LoadEntries(ctx context.Context) ([]*models.HighScoreEntry, error) {
	rows, err := r.sqlDB.QueryContext(ctx, `SELECT score, name FROM high_scores ORDER BY rank`)
	if err != nil {
		return nil, fmt.Errorf("query high scores: %w", err)
	}
	defer rows.Close()

	var entries []*models.HighScoreEntry
	for rows.Next() {
		var entry models.HighScoreEntry
		if err := rows.Scan(&entry.Score, &entry.Name); err != nil {
			return nil, fmt.Errorf("scan high score: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate high scores: %w", err)
	}

	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return entries, nil
}

// SaveEntries replaces the table contents in a single transaction
func (r *SQLiteRepository) SaveEntries(ctx context.Context, input *SaveEntriesInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	tx, err := r.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin high score transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM high_scores`); err != nil {
		return fmt.Errorf("clear high scores: %w", err)
	}

	rank := 0
	for _, entry := range input.Entries {
		if entry == nil {
			continue
		}
		rank++
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO high_scores (rank, score, name) VALUES (?, ?, ?)`,
			rank, entry.Score, entry.Name,
		); err != nil {
			return fmt.Errorf("insert high score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit high scores: %w", err)
	}
	return nil
}
