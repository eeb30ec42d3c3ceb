package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/services/game"
	"github.com/stretchr/testify/suite"
)

// Both ports are served by the console
var (
	_ game.Display = (*Console)(nil)
	_ game.Prompt  = (*Console)(nil)
)

type ConsoleTestSuite struct {
	suite.Suite
	out *bytes.Buffer
	ctx context.Context
}

func (s *ConsoleTestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()
}

func TestConsoleTestSuite(t *testing.T) {
	suite.Run(t, new(ConsoleTestSuite))
}

func (s *ConsoleTestSuite) newConsole(input string, columns int) *Console {
	c, err := New(&Config{
		In:      strings.NewReader(input),
		Out:     s.out,
		Columns: columns,
	})
	s.Require().NoError(err)
	return c
}

func (s *ConsoleTestSuite) lines() []string {
	return strings.Split(strings.TrimRight(s.out.String(), "\n"), "\n")
}

func (s *ConsoleTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{Out: s.out})
	s.Error(err)

	_, err = New(&Config{In: strings.NewReader("")})
	s.Error(err)
}

func (s *ConsoleTestSuite) TestDisplayDiceAndScorecard() {
	c := s.newConsole("", 1)

	s.Require().NoError(c.DisplayDice(s.ctx, models.Dice{3, 5, 1, 6, 2}))
	s.Require().NoError(c.UpdateScorecard(s.ctx, models.RowFor(models.CategoryFullHouse), 1, 25))
	s.Require().NoError(c.UpdateScorecard(s.ctx, models.RowTotal, 0, 291))
	s.Require().NoError(c.PrintMessage(s.ctx, "Select a category for this roll."))

	s.Equal([]string{
		"Dice: 3 5 1 6 2",
		"Card 2  full-house         25",
		"Card 1  total             291",
		"Select a category for this roll.",
	}, s.lines())
}

func (s *ConsoleTestSuite) TestWaitForRollTrigger() {
	c := s.newConsole("\n", 1)

	s.NoError(c.WaitForRollTrigger(s.ctx, 2))
	s.Equal([]string{"[Enter] Roll Dice (card 3)"}, s.lines())

	s.ErrorIs(c.WaitForRollTrigger(s.ctx, 0), ErrInputClosed)
}

func (s *ConsoleTestSuite) TestWaitForDieSelection() {
	c := s.newConsole("7\n1 3,5\n\n", 1)

	mask, err := c.WaitForDieSelection(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.DieMask{true, false, true, false, true}, mask)
	s.Contains(s.out.String(), helpDice)

	mask, err = c.WaitForDieSelection(s.ctx)
	s.Require().NoError(err)
	s.False(mask.Any())
}

func (s *ConsoleTestSuite) TestWaitForCategorySelection() {
	c := s.newConsole("bogus\nfull house 2\n", 3)

	selection, err := c.WaitForCategorySelection(s.ctx)
	s.Require().NoError(err)
	s.Equal(&game.CategorySelection{Category: models.CategoryFullHouse, Column: 1}, selection)

	s.Equal("Category (name or 1-13, then column 1-3):", s.lines()[0])
	s.Contains(s.out.String(), helpCategory)
}

func (s *ConsoleTestSuite) TestReadPlayers() {
	c := s.newConsole("two\n2\nAnn\n\n", 1)

	n, err := c.ReadPlayerCount(s.ctx)
	s.Require().NoError(err)
	s.Zero(n)

	n, err = c.ReadPlayerCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, n)

	name, err := c.ReadPlayerName(s.ctx, 0)
	s.Require().NoError(err)
	s.Equal("Ann", name)

	name, err = c.ReadPlayerName(s.ctx, 1)
	s.Require().NoError(err)
	s.Empty(name)

	_, err = c.ReadPlayerCount(s.ctx)
	s.ErrorIs(err, ErrInputClosed)
	s.Contains(s.out.String(), "Name of player 2:")
}

func (s *ConsoleTestSuite) TestCancelledContext() {
	c := s.newConsole("\n", 1)
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.ErrorIs(c.WaitForRollTrigger(ctx, 0), context.Canceled)
}

func TestParseDieMask(t *testing.T) {
	tests := []struct {
		line    string
		want    models.DieMask
		wantErr bool
	}{
		{line: "", want: models.DieMask{}},
		{line: "   ", want: models.DieMask{}},
		{line: "1 2 3 4 5", want: models.DieMask{true, true, true, true, true}},
		{line: "2,4", want: models.DieMask{false, true, false, true, false}},
		{line: "3 3", want: models.DieMask{false, false, true, false, false}},
		{line: "0", wantErr: true},
		{line: "6", wantErr: true},
		{line: "one", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := parseDieMask(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDieMask(%q) expected error", tt.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDieMask(%q) unexpected error: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("parseDieMask(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseCategorySelection(t *testing.T) {
	tests := []struct {
		line     string
		category models.Category
		column   int
		wantErr  bool
	}{
		{line: "fours", category: models.CategoryFours},
		{line: "fours 2", category: models.CategoryFours, column: 1},
		{line: "4", category: models.CategoryFours},
		{line: "13 3", category: models.CategoryChance, column: 2},
		{line: "Small Straight", category: models.CategorySmallStraight},
		{line: "three_of_a_kind 1", category: models.CategoryThreeOfAKind},
		{line: "", wantErr: true},
		{line: "fours 0", wantErr: true},
		{line: "14", wantErr: true},
		{line: "sevens", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := parseCategorySelection(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseCategorySelection(%q) expected error", tt.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCategorySelection(%q) unexpected error: %v", tt.line, err)
			}
			if got.Category != tt.category || got.Column != tt.column {
				t.Errorf("parseCategorySelection(%q) = %v/%d, want %v/%d",
					tt.line, got.Category, got.Column, tt.category, tt.column)
			}
		})
	}
}
