package game

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/yahtzee/internal/common/clock"
	"github.com/KirkDiggler/yahtzee/internal/common/uuid"
	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/models"
)

const (
	msgEnterPlayerCount = "Please enter a valid number of players."
	msgWinner           = "Congratulations, %s, you won with a total score of %d!"
	msgWinnerHighScore  = "Congratulations, %s, you won with a new high score of %d!"
)

// service implements the Service interface
type service struct {
	maxPlayers    int
	variant       models.Variant
	display       Display
	prompt        Prompt
	diceRoller    dice.Roller
	ledger        HighScoreLedger
	clock         clock.Clock
	uuidGenerator uuid.Generator
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Display == nil {
		return nil, ErrNilDisplay
	}

	if cfg.Prompt == nil {
		return nil, ErrNilPrompt
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	maxPlayers := cfg.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}

	variant, err := models.ParseVariant(string(cfg.Variant))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVariant, err)
	}

	return &service{
		maxPlayers:    maxPlayers,
		variant:       variant,
		display:       cfg.Display,
		prompt:        cfg.Prompt,
		diceRoller:    cfg.DiceRoller,
		ledger:        cfg.Ledger,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// Play runs a complete game
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	variant := s.variant
	if input != nil && input.Variant != "" {
		parsed, err := models.ParseVariant(string(input.Variant))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidVariant, err)
		}
		variant = parsed
	}

	startedAt := s.clock.Now()

	// Show the standings before anyone joins
	if err := s.display.PrintMessage(ctx, s.ledger.Format()); err != nil {
		return nil, fmt.Errorf("failed to show high scores: %w", err)
	}

	players, err := s.setupPlayers(ctx)
	if err != nil {
		return nil, err
	}

	game := NewState(s.uuidGenerator.NewGameID(), variant, players)
	log.Printf("Starting game %s: %d players, %s variant", game.ID, len(players), variant)

	turns := newTurnController(s.display, dice.NewSet(s.diceRoller), game)
	if err := turns.Run(ctx); err != nil {
		return nil, fmt.Errorf("game %s aborted: %w", game.ID, err)
	}

	scores := game.PlayerScores()
	winners, winningScore := findWinners(scores)

	newHighScore := s.ledger.ConsiderGame(scores)
	if newHighScore {
		if err := s.ledger.Save(ctx); err != nil {
			return nil, err
		}
	}

	format := msgWinner
	if newHighScore {
		format = msgWinnerHighScore
	}
	message := fmt.Sprintf(format, strings.Join(winners, " and "), winningScore)
	if err := s.display.PrintMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to print message: %w", err)
	}

	log.Printf("Finished game %s: winners %v with %d", game.ID, winners, winningScore)

	return &PlayOutput{
		GameID:       game.ID,
		Variant:      variant,
		Scores:       scores,
		Winners:      winners,
		WinningScore: winningScore,
		NewHighScore: newHighScore,
		Message:      message,
		StartedAt:    startedAt,
		FinishedAt:   s.clock.Now(),
	}, nil
}

// setupPlayers reads the player count, re-prompting until it is in range, then every name
func (s *service) setupPlayers(ctx context.Context) ([]string, error) {
	var count int
	for {
		n, err := s.prompt.ReadPlayerCount(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read player count: %w", err)
		}
		if n > 0 && n <= s.maxPlayers {
			count = n
			break
		}
		if err := s.display.PrintMessage(ctx, msgEnterPlayerCount); err != nil {
			return nil, fmt.Errorf("failed to print message: %w", err)
		}
	}

	players := make([]string, count)
	for i := range players {
		name, err := s.prompt.ReadPlayerName(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("failed to read name for player %d: %w", i+1, err)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		players[i] = name
	}

	return players, nil
}

// findWinners returns every player sharing the highest total, in player order
func findWinners(scores []models.PlayerScore) ([]string, int) {
	if len(scores) == 0 {
		return nil, 0
	}

	best := scores[0].Total
	for _, score := range scores[1:] {
		if score.Total > best {
			best = score.Total
		}
	}

	var winners []string
	for _, score := range scores {
		if score.Total == best {
			winners = append(winners, score.Name)
		}
	}
	return winners, best
}
