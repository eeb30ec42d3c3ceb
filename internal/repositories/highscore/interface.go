package highscore

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/yahtzee/internal/repositories/highscore Repository

import (
	"context"

	"github.com/KirkDiggler/yahtzee/internal/models"
)

// Repository defines the interface for high-score persistence
type Repository interface {
	// LoadEntries reads the persisted entries in stored order.
	// A store that has never been written returns ErrNotFound.
	LoadEntries(ctx context.Context) ([]*models.HighScoreEntry, error)

	// SaveEntries replaces the persisted entries
	SaveEntries(ctx context.Context, input *SaveEntriesInput) error
}
