// Package ledger keeps the ranked, size-bounded list of high scores.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/repositories/highscore"
)

// DefaultSize is the number of entries kept when Config.Size is not set
const DefaultSize = 10

// Config holds configuration for the ledger
type Config struct {
	// Repository persists the entries
	Repository highscore.Repository

	// Size caps the number of entries; defaults to DefaultSize
	Size int
}

// Ledger is the high-score table. It is not safe for concurrent use.
type Ledger struct {
	repo    highscore.Repository
	size    int
	entries []models.HighScoreEntry
}

// New creates an empty ledger; call Load to read the persisted entries
func New(cfg *Config) (*Ledger, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	size := cfg.Size
	if size <= 0 {
		size = DefaultSize
	}

	return &Ledger{
		repo: cfg.Repository,
		size: size,
	}, nil
}

// Load replaces the in-memory entries with the persisted ones.
// A missing or unreadable store leaves the ledger empty; it is never an error.
func (l *Ledger) Load(ctx context.Context) {
	l.entries = nil

	stored, err := l.repo.LoadEntries(ctx)
	if err != nil {
		if !errors.Is(err, highscore.ErrNotFound) {
			log.Printf("Failed to load high scores, starting empty: %v", err)
		}
		return
	}

	for _, entry := range stored {
		if entry != nil {
			l.entries = append(l.entries, *entry)
		}
	}

	// Stored order is trusted for equal scores
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Score > l.entries[j].Score
	})
	if len(l.entries) > l.size {
		l.entries = l.entries[:l.size]
	}
}

// ConsiderGame offers each player's total to the ledger, in player order.
// A total ranks above every entry it equals or beats. It reports whether
// any total made it onto the ledger.
func (l *Ledger) ConsiderGame(scores []models.PlayerScore) bool {
	changed := false
	for _, score := range scores {
		if l.insert(models.HighScoreEntry{Score: score.Total, Name: score.Name}) {
			changed = true
		}
	}
	return changed
}

// insert places entry at its rank and trims the ledger to size.
// Scanning from the lowest rank upward, the entry displaces each entry whose
// score is less than or equal to its own.
func (l *Ledger) insert(entry models.HighScoreEntry) bool {
	position := len(l.entries)
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Score > entry.Score {
			break
		}
		position = i
	}

	if position >= l.size {
		return false
	}

	l.entries = append(l.entries, models.HighScoreEntry{})
	copy(l.entries[position+1:], l.entries[position:])
	l.entries[position] = entry

	if len(l.entries) > l.size {
		l.entries = l.entries[:l.size]
	}
	return true
}

// Save persists the current entries. Callers should only save after
// ConsiderGame reported a change; a failure here must not be ignored.
func (l *Ledger) Save(ctx context.Context) error {
	entries := make([]*models.HighScoreEntry, len(l.entries))
	for i := range l.entries {
		entry := l.entries[i]
		entries[i] = &entry
	}

	if err := l.repo.SaveEntries(ctx, &highscore.SaveEntriesInput{Entries: entries}); err != nil {
		return fmt.Errorf("failed to save high scores: %w", err)
	}
	return nil
}

// Entries returns a copy of the ledger, highest score first
func (l *Ledger) Entries() []models.HighScoreEntry {
	out := make([]models.HighScoreEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Size returns the maximum number of entries kept
func (l *Ledger) Size() int {
	return l.size
}

// Format renders the ledger as a listing with right-aligned scores
func (l *Ledger) Format() string {
	var b strings.Builder
	b.WriteString("Highscores:\n")
	if len(l.entries) == 0 {
		b.WriteString("none available yet")
		return b.String()
	}
	for _, entry := range l.entries {
		fmt.Fprintf(&b, "%5d %s\n", entry.Score, entry.Name)
	}
	return b.String()
}
