package highscore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createPostgresHighScoresTable = `CREATE TABLE IF NOT EXISTS high_scores (
	rank INTEGER PRIMARY KEY,
	score INTEGER NOT NULL,
	name TEXT NOT NULL
)`

// PostgresConfig holds configuration for the Postgres high-score repository
type PostgresConfig struct {
	// DSN is a postgres:// URL or keyword/value connection string
	DSN string
}

// PostgresRepository shares one ledger between every host pointed at the same database
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects and creates the high_scores table if needed
func OpenPostgres(ctx context.Context, cfg *PostgresConfig) (*PostgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, errors.New("postgres dsn cannot be empty")
	}

	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres db: %w", err)
	}
	if _, err := pool.Exec(ctx, createPostgresHighScoresTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create high_scores table: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

// Close releases the connection pool
func (r *PostgresRepository) Close() {
	if r != nil && r.pool != nil {
		r.pool.Close()
	}
}

// LoadEntries reads every row ordered by rank
func (r *PostgresRepository) LoadEntries(ctx context.Context) ([]*models.HighScoreEntry, error) {
	rows, err := r.pool.Query(ctx, `SELECT score, name FROM high_scores ORDER BY rank`)
	if err != nil {
		return nil, fmt.Errorf("query high scores: %w", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.HighScoreEntry, error) {
		var entry models.HighScoreEntry
		err := row.Scan(&entry.Score, &entry.Name)
		return &entry, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan high scores: %w", err)
	}

	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return entries, nil
}

// SaveEntries replaces the table contents in a single transaction
func (r *PostgresRepository) SaveEntries(ctx context.Context, input *SaveEntriesInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin high score transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM high_scores`)
	rank := 0
	for _, entry := range input.Entries {
		if entry == nil {
			continue
		}
		rank++
		batch.Queue(`INSERT INTO high_scores (rank, score, name) VALUES ($1, $2, $3)`, rank, entry.Score, entry.Name)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("write high scores: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit high scores: %w", err)
	}
	return nil
}
