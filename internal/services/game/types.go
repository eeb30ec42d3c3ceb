package game

import (
	"time"

	"github.com/KirkDiggler/yahtzee/internal/common/clock"
	"github.com/KirkDiggler/yahtzee/internal/common/uuid"
	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/models"
)

// DefaultMaxPlayers is used when Config.MaxPlayers is not set
const DefaultMaxPlayers = 4

// Config holds configuration for the game service
type Config struct {
	// Maximum number of players per game
	MaxPlayers int

	// Variant played when PlayInput does not choose one
	Variant models.Variant

	// Ports
	Display Display
	Prompt  Prompt

	// Service dependencies
	DiceRoller    dice.Roller
	Ledger        HighScoreLedger
	Clock         clock.Clock
	UUIDGenerator uuid.Generator
}

// CategorySelection is the player's choice of where to score a roll
type CategorySelection struct {
	// Category to score
	Category models.Category

	// Column is the 0-based scorecard column; ignored in single-column games
	Column int
}

// PlayInput contains parameters for playing a game
type PlayInput struct {
	// Variant overrides the configured variant when set
	Variant models.Variant
}

// PlayOutput contains the result of a finished game
type PlayOutput struct {
	// GameID identifies the game in logs
	GameID string

	// Variant that was played
	Variant models.Variant

	// Scores holds each player's grand total, in player order
	Scores []models.PlayerScore

	// Winners lists every player sharing the top total, in player order
	Winners []string

	// WinningScore is the top total
	WinningScore int

	// NewHighScore is true when the ledger changed
	NewHighScore bool

	// Message is the final announcement shown to the players
	Message string

	// StartedAt is when the game started
	StartedAt time.Time

	// FinishedAt is when the final message was shown
	FinishedAt time.Time
}
