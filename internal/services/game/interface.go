package game

//go:generate mockgen -package=mocks -destination=mocks/mock_ports.go github.com/KirkDiggler/yahtzee/internal/services/game Display,Prompt

import (
	"context"

	"github.com/KirkDiggler/yahtzee/internal/models"
)

// Service defines the interface for game operations
type Service interface {
	// Play runs a complete game: players, every round, winners and high scores
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)
}

// Display shows the game and collects every in-game gesture.
// Wait methods block until the player acts.
type Display interface {
	// DisplayDice shows the current roll
	DisplayDice(ctx context.Context, dice models.Dice) error

	// UpdateScorecard writes value into row of the scorecard at cardIndex
	UpdateScorecard(ctx context.Context, row models.Row, cardIndex int, value int) error

	// WaitForRollTrigger blocks until the player whose first card is cardIndex asks to roll
	WaitForRollTrigger(ctx context.Context, cardIndex int) error

	// WaitForDieSelection blocks until the player picks the dice to re-roll
	WaitForDieSelection(ctx context.Context) (models.DieMask, error)

	// WaitForCategorySelection blocks until the player picks a category and column
	WaitForCategorySelection(ctx context.Context) (*CategorySelection, error)

	// PrintMessage shows a status line
	PrintMessage(ctx context.Context, text string) error
}

// Prompt collects the players before the game starts
type Prompt interface {
	// ReadPlayerCount asks how many players are playing
	ReadPlayerCount(ctx context.Context) (int, error)

	// ReadPlayerName asks for the name of the player at index (0-based)
	ReadPlayerName(ctx context.Context, index int) (string, error)
}

// HighScoreLedger is the part of the ledger a game needs
type HighScoreLedger interface {
	// ConsiderGame offers final totals and reports whether the ledger changed
	ConsiderGame(scores []models.PlayerScore) bool

	// Save persists the ledger
	Save(ctx context.Context) error

	// Format renders the ledger for display
	Format() string
}
