package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/yahtzee/internal/common/clock"
	"github.com/KirkDiggler/yahtzee/internal/common/uuid"
	"github.com/KirkDiggler/yahtzee/internal/config"
	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/handlers/console"
	"github.com/KirkDiggler/yahtzee/internal/ledger"
	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/repositories/highscore"
	gameService "github.com/KirkDiggler/yahtzee/internal/services/game"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// openStore is replaced in tests
var openStore = openHighScores

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Cancel the game on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	err = run(ctx, cfg, os.Stdin, os.Stdout)
	stop()
	if err != nil {
		log.Fatalf("Game failed: %v", err)
	}
}

// run wires one game and plays it. The high-score store is released on every return.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	variant, err := models.ParseVariant(cfg.Variant)
	if err != nil {
		return fmt.Errorf("failed to parse variant: %w", err)
	}

	// Initialize the high-score store
	repo, closeRepo, err := openStore(ctx, &cfg.HighScore)
	if err != nil {
		return fmt.Errorf("failed to open high scores: %w", err)
	}
	defer closeRepo()

	highScores, err := ledger.New(&ledger.Config{
		Repository: repo,
	})
	if err != nil {
		return fmt.Errorf("failed to create high-score ledger: %w", err)
	}
	highScores.Load(ctx)

	// Initialize the terminal
	term, err := console.New(&console.Config{
		In:      in,
		Out:     out,
		Columns: variant.Columns(),
	})
	if err != nil {
		return fmt.Errorf("failed to create console: %w", err)
	}

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		MaxPlayers:    cfg.MaxPlayers,
		Variant:       variant,
		Display:       term,
		Prompt:        term,
		DiceRoller:    dice.New(&dice.Config{Seed: cfg.Seed}),
		Ledger:        highScores,
		Clock:         clock.System{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	output, err := gameSvc.Play(ctx, &gameService.PlayInput{})
	if err != nil {
		return err
	}

	log.Printf("Game %s took %s", output.GameID, output.FinishedAt.Sub(output.StartedAt).Round(time.Second))
	return nil
}

// openHighScores builds the configured store and returns a function releasing it
func openHighScores(ctx context.Context, cfg *config.HighScoreConfig) (highscore.Repository, func(), error) {
	switch cfg.Backend {
	case config.BackendFile:
		repo, err := highscore.NewFile(&highscore.FileConfig{
			Path: cfg.File,
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil

	case config.BackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		redisClient := redis.NewClient(opts)

		// Test Redis connection
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			_ = redisClient.Close()
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		repo, err := highscore.NewRedis(&highscore.RedisConfig{
			RedisClient: redisClient,
			Key:         cfg.RedisKey,
		})
		if err != nil {
			_ = redisClient.Close()
			return nil, nil, err
		}
		return repo, func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis client: %v", err)
			}
		}, nil

	case config.BackendSQLite:
		repo, err := highscore.OpenSQLite(&highscore.SQLiteConfig{
			Path: cfg.SQLitePath,
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				log.Printf("Error closing SQLite store: %v", err)
			}
		}, nil

	case config.BackendPostgres:
		repo, err := highscore.OpenPostgres(ctx, &highscore.PostgresConfig{
			DSN: cfg.PostgresDSN,
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown high-score backend %q", cfg.Backend)
}
