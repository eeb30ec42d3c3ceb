package highscore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/yahtzee/internal/models"
)

// FileConfig holds configuration for the file-backed high-score repository
type FileConfig struct {
	// Path of the high-score text file
	Path string
}

// fileRepository implements the Repository interface with a plain text file
type fileRepository struct {
	path string
}

// NewFile creates a new file-backed high-score repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("high score file path cannot be empty")
	}

	return &fileRepository{
		path: filepath.Clean(cfg.Path),
	}, nil
}

// LoadEntries reads the high-score file
func (r *fileRepository) LoadEntries(ctx context.Context) ([]*models.HighScoreEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open high score file: %w", err)
	}
	defer f.Close()

	entries, err := decodeEntries(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read high score file: %w", err)
	}

	return entries, nil
}

// SaveEntries rewrites the high-score file. The new content is written to a
// temporary file in the same directory and renamed over the old one.
func (r *fileRepository) SaveEntries(ctx context.Context, input *SaveEntriesInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create high score file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := encodeEntries(tmp, input.Entries); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write high score file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write high score file: %w", err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace high score file: %w", err)
	}

	return nil
}
