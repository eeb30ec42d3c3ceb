package highscore

import "github.com/KirkDiggler/yahtzee/internal/models"

// SaveEntriesInput contains the entries to persist, highest score first
type SaveEntriesInput struct {
	Entries []*models.HighScoreEntry
}
