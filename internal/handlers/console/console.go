// Package console implements the game's Display and Prompt over a line-oriented text stream.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/services/game"
)

const (
	promptRoll        = "[Enter] Roll Dice (card %d)"
	promptReRoll      = "Dice to re-roll (e.g. \"1 3 5\", blank keeps all):"
	promptCategory    = "Category (name or 1-13%s):"
	promptPlayerCount = "Number of players:"
	promptPlayerName  = "Name of player %d:"

	helpDice     = "Enter die positions 1-5 separated by spaces, or nothing to keep all."
	helpCategory = "Enter a category name such as \"fours\" or \"full-house\", or its number 1-13."
)

// Console talks to one terminal. It is not safe for concurrent use.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	columns int
}

// Config holds the configuration for the console
type Config struct {
	// In is read one line at a time
	In io.Reader

	// Out receives one line per event
	Out io.Writer

	// Columns is the number of score columns per player; 0 means one
	Columns int
}

// New creates a new console
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.In == nil {
		return nil, errors.New("input cannot be nil")
	}

	if cfg.Out == nil {
		return nil, errors.New("output cannot be nil")
	}

	columns := cfg.Columns
	if columns < 1 {
		columns = 1
	}

	return &Console{
		scanner: bufio.NewScanner(cfg.In),
		out:     cfg.Out,
		columns: columns,
	}, nil
}

// DisplayDice shows the current roll
func (c *Console) DisplayDice(ctx context.Context, dice models.Dice) error {
	return c.println(renderDice(dice))
}

// UpdateScorecard shows a changed scorecard row
func (c *Console) UpdateScorecard(ctx context.Context, row models.Row, cardIndex int, value int) error {
	return c.println(renderScorecardRow(row, cardIndex, value))
}

// WaitForRollTrigger waits for any line
func (c *Console) WaitForRollTrigger(ctx context.Context, cardIndex int) error {
	if err := c.println(fmt.Sprintf(promptRoll, cardIndex+1)); err != nil {
		return err
	}
	_, err := c.readLine(ctx)
	return err
}

// WaitForDieSelection reads die positions until they parse
func (c *Console) WaitForDieSelection(ctx context.Context) (models.DieMask, error) {
	if err := c.println(promptReRoll); err != nil {
		return models.DieMask{}, err
	}

	for {
		line, err := c.readLine(ctx)
		if err != nil {
			return models.DieMask{}, err
		}

		mask, err := parseDieMask(line)
		if err == nil {
			return mask, nil
		}
		if err := c.println(helpDice); err != nil {
			return models.DieMask{}, err
		}
	}
}

// WaitForCategorySelection reads a category and an optional 1-based column.
// Range and availability checks are left to the game.
func (c *Console) WaitForCategorySelection(ctx context.Context) (*game.CategorySelection, error) {
	columnHint := ""
	if c.columns > 1 {
		columnHint = fmt.Sprintf(", then column 1-%d", c.columns)
	}
	if err := c.println(fmt.Sprintf(promptCategory, columnHint)); err != nil {
		return nil, err
	}

	for {
		line, err := c.readLine(ctx)
		if err != nil {
			return nil, err
		}

		selection, err := parseCategorySelection(line)
		if err == nil {
			return selection, nil
		}
		if err := c.println(helpCategory); err != nil {
			return nil, err
		}
	}
}

// PrintMessage writes a status line
func (c *Console) PrintMessage(ctx context.Context, text string) error {
	return c.println(text)
}

// ReadPlayerCount reads the number of players. Anything that is not a number
// reads as 0 so the game asks again.
func (c *Console) ReadPlayerCount(ctx context.Context) (int, error) {
	if err := c.println(promptPlayerCount); err != nil {
		return 0, err
	}

	line, err := c.readLine(ctx)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// ReadPlayerName reads the name for the player at index
func (c *Console) ReadPlayerName(ctx context.Context, index int) (string, error) {
	if err := c.println(fmt.Sprintf(promptPlayerName, index+1)); err != nil {
		return "", err
	}
	return c.readLine(ctx)
}

// readLine returns the next line, or ErrInputClosed once the input runs out
func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return c.scanner.Text(), nil
}

func (c *Console) println(text string) error {
	if _, err := fmt.Fprintln(c.out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
