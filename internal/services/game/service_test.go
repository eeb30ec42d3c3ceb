package game_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/yahtzee/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/yahtzee/internal/common/uuid/mocks"
	diceMocks "github.com/KirkDiggler/yahtzee/internal/dice/mocks"
	"github.com/KirkDiggler/yahtzee/internal/ledger"
	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/repositories/highscore"
	highscoreMocks "github.com/KirkDiggler/yahtzee/internal/repositories/highscore/mocks"
	"github.com/KirkDiggler/yahtzee/internal/services/game"
	gameMocks "github.com/KirkDiggler/yahtzee/internal/services/game/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// cell addresses one row of one card on the display
type cell struct {
	row  models.Row
	card int
}

// turn is the dice a player ends up with and the picks they make for them
type turn struct {
	dice  models.Dice
	picks []*game.CategorySelection
}

func pick(category models.Category) *game.CategorySelection {
	return &game.CategorySelection{Category: category}
}

func pickColumn(category models.Category, column int) *game.CategorySelection {
	return &game.CategorySelection{Category: category, Column: column}
}

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockDisplay *gameMocks.MockDisplay
	mockPrompt  *gameMocks.MockPrompt
	mockRoller  *diceMocks.MockRoller
	mockClock   *clockMocks.MockClock
	mockUUID    *uuidMocks.MockGenerator
	mockRepo    *highscoreMocks.MockRepository
	ledger      *ledger.Ledger
	gameService game.Service
	ctx         context.Context

	// Test data
	testTime   time.Time
	testGameID string

	// Scripted port traffic
	rolls     []int
	rollIndex int
	picks     []*game.CategorySelection
	pickIndex int
	masks     []models.DieMask
	maskIndex int
	messages  []string
	triggers  []int
	updates   map[cell]int
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDisplay = gameMocks.NewMockDisplay(s.mockCtrl)
	s.mockPrompt = gameMocks.NewMockPrompt(s.mockCtrl)
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockGenerator(s.mockCtrl)
	s.mockRepo = highscoreMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"

	s.rolls, s.rollIndex = nil, 0
	s.picks, s.pickIndex = nil, 0
	s.masks, s.maskIndex = nil, 0
	s.messages = nil
	s.triggers = nil
	s.updates = make(map[cell]int)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewGameID().Return(s.testGameID).AnyTimes()

	s.mockRepo.EXPECT().LoadEntries(gomock.Any()).Return(nil, highscore.ErrNotFound)
	s.useLedger()

	s.gameService = s.newService(models.VariantStandard)
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// useLedger loads a fresh ledger from the mocked repository
func (s *GameServiceTestSuite) useLedger() {
	l, err := ledger.New(&ledger.Config{Repository: s.mockRepo})
	s.Require().NoError(err)
	l.Load(s.ctx)
	s.ledger = l
}

func (s *GameServiceTestSuite) newService(variant models.Variant) game.Service {
	svc, err := game.New(&game.Config{
		MaxPlayers:    4,
		Variant:       variant,
		Display:       s.mockDisplay,
		Prompt:        s.mockPrompt,
		DiceRoller:    s.mockRoller,
		Ledger:        s.ledger,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	return svc
}

// expectPlayers scripts the prompt to return the given names
func (s *GameServiceTestSuite) expectPlayers(names ...string) {
	s.mockPrompt.EXPECT().ReadPlayerCount(gomock.Any()).Return(len(names), nil)
	for i, name := range names {
		s.mockPrompt.EXPECT().ReadPlayerName(gomock.Any(), i).Return(name, nil)
	}
}

// scriptTurns queues the dice and picks for each turn, in play order.
// Dice are produced by the first roll; re-rolls keep every die unless masks are queued.
func (s *GameServiceTestSuite) scriptTurns(turns ...turn) {
	for _, t := range turns {
		s.rolls = append(s.rolls, t.dice[:]...)
		s.picks = append(s.picks, t.picks...)
	}
}

// expectDisplay records every display call and answers from the script
func (s *GameServiceTestSuite) expectDisplay() {
	s.mockRoller.EXPECT().Roll(models.DieSides).DoAndReturn(func(int) int {
		s.Require().Less(s.rollIndex, len(s.rolls), "ran out of scripted rolls")
		value := s.rolls[s.rollIndex]
		s.rollIndex++
		return value
	}).AnyTimes()

	s.mockDisplay.EXPECT().PrintMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, text string) error {
			s.messages = append(s.messages, text)
			return nil
		}).AnyTimes()

	s.mockDisplay.EXPECT().WaitForRollTrigger(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cardIndex int) error {
			s.triggers = append(s.triggers, cardIndex)
			return nil
		}).AnyTimes()

	s.mockDisplay.EXPECT().WaitForDieSelection(gomock.Any()).DoAndReturn(
		func(context.Context) (models.DieMask, error) {
			if s.maskIndex >= len(s.masks) {
				return models.DieMask{}, nil
			}
			mask := s.masks[s.maskIndex]
			s.maskIndex++
			return mask, nil
		}).AnyTimes()

	s.mockDisplay.EXPECT().DisplayDice(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.mockDisplay.EXPECT().WaitForCategorySelection(gomock.Any()).DoAndReturn(
		func(context.Context) (*game.CategorySelection, error) {
			s.Require().Less(s.pickIndex, len(s.picks), "ran out of scripted picks")
			selection := s.picks[s.pickIndex]
			s.pickIndex++
			return selection, nil
		}).AnyTimes()

	s.mockDisplay.EXPECT().UpdateScorecard(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, row models.Row, cardIndex int, value int) error {
			s.updates[cell{row: row, card: cardIndex}] = value
			return nil
		}).AnyTimes()
}

// everyCategory plays each category in card order with the same dice
func everyCategory(dice models.Dice) []turn {
	var turns []turn
	for _, category := range models.AllCategories() {
		turns = append(turns, turn{dice: dice, picks: []*game.CategorySelection{pick(category)}})
	}
	return turns
}

func (s *GameServiceTestSuite) countMessages(prefix string) int {
	count := 0
	for _, message := range s.messages {
		if strings.HasPrefix(message, prefix) {
			count++
		}
	}
	return count
}

func (s *GameServiceTestSuite) TestNewValidation() {
	_, err := game.New(nil)
	s.ErrorIs(err, game.ErrNilConfig)

	cfg := &game.Config{}
	_, err = game.New(cfg)
	s.ErrorIs(err, game.ErrNilDisplay)

	cfg.Display = s.mockDisplay
	_, err = game.New(cfg)
	s.ErrorIs(err, game.ErrNilPrompt)

	cfg.Prompt = s.mockPrompt
	_, err = game.New(cfg)
	s.ErrorIs(err, game.ErrNilDiceRoller)

	cfg.DiceRoller = s.mockRoller
	_, err = game.New(cfg)
	s.ErrorIs(err, game.ErrNilLedger)

	cfg.Ledger = s.ledger
	_, err = game.New(cfg)
	s.ErrorIs(err, game.ErrNilClock)

	cfg.Clock = s.mockClock
	_, err = game.New(cfg)
	s.ErrorIs(err, game.ErrNilUUIDGenerator)

	cfg.UUIDGenerator = s.mockUUID
	cfg.Variant = "quintuple"
	_, err = game.New(cfg)
	s.ErrorIs(err, game.ErrInvalidVariant)

	cfg.Variant = ""
	_, err = game.New(cfg)
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestPlaySinglePlayerGame() {
	s.expectPlayers("Ann")
	s.scriptTurns(
		turn{models.Dice{1, 1, 1, 2, 3}, []*game.CategorySelection{pick(models.CategoryOnes)}},
		turn{models.Dice{2, 2, 2, 1, 3}, []*game.CategorySelection{pick(models.CategoryTwos)}},
		turn{models.Dice{3, 3, 3, 1, 2}, []*game.CategorySelection{pick(models.CategoryThrees)}},
		turn{models.Dice{4, 4, 4, 1, 2}, []*game.CategorySelection{pick(models.CategoryFours)}},
		turn{models.Dice{5, 5, 5, 1, 2}, []*game.CategorySelection{pick(models.CategoryFives)}},
		turn{models.Dice{6, 6, 6, 1, 2}, []*game.CategorySelection{pick(models.CategorySixes)}},
		turn{models.Dice{6, 6, 6, 1, 2}, []*game.CategorySelection{pick(models.CategoryThreeOfAKind)}},
		turn{models.Dice{5, 5, 5, 5, 1}, []*game.CategorySelection{pick(models.CategoryFourOfAKind)}},
		turn{models.Dice{2, 2, 3, 3, 3}, []*game.CategorySelection{pick(models.CategoryFullHouse)}},
		turn{models.Dice{1, 2, 3, 4, 6}, []*game.CategorySelection{pick(models.CategorySmallStraight)}},
		turn{models.Dice{2, 3, 4, 5, 6}, []*game.CategorySelection{pick(models.CategoryLargeStraight)}},
		turn{models.Dice{6, 6, 6, 6, 6}, []*game.CategorySelection{pick(models.CategoryYahtzee)}},
		turn{models.Dice{1, 1, 1, 1, 2}, []*game.CategorySelection{pick(models.CategoryChance)}},
	)
	s.expectDisplay()

	s.mockRepo.EXPECT().SaveEntries(gomock.Any(), &highscore.SaveEntriesInput{
		Entries: []*models.HighScoreEntry{{Score: 291, Name: "Ann"}},
	}).Return(nil)

	output, err := s.gameService.Play(s.ctx, &game.PlayInput{})
	s.Require().NoError(err)

	s.Equal(s.testGameID, output.GameID)
	s.Equal(models.VariantStandard, output.Variant)
	s.Equal([]models.PlayerScore{{Name: "Ann", Total: 291}}, output.Scores)
	s.Equal([]string{"Ann"}, output.Winners)
	s.Equal(291, output.WinningScore)
	s.True(output.NewHighScore)
	s.Equal(s.testTime, output.StartedAt)
	s.Equal(s.testTime, output.FinishedAt)
	s.Equal("Congratulations, Ann, you won with a new high score of 291!", output.Message)

	s.Equal("Highscores:\nnone available yet", s.messages[0])
	s.Equal(output.Message, s.messages[len(s.messages)-1])
	s.Equal(13, s.countMessages("Ann's turn."))
	s.Equal(26, s.countMessages("Select the dice"))
	s.Equal(13, s.countMessages("Select a category"))

	s.Equal(len(s.rolls), s.rollIndex)
	s.Equal(63, s.updates[cell{models.RowUpperScore, 0}])
	s.Equal(35, s.updates[cell{models.RowUpperBonus, 0}])
	s.Equal(193, s.updates[cell{models.RowLowerScore, 0}])
	s.Equal(291, s.updates[cell{models.RowTotal, 0}])
	s.Equal(25, s.updates[cell{models.RowFor(models.CategoryFullHouse), 0}])
	s.Equal(50, s.updates[cell{models.RowFor(models.CategoryYahtzee), 0}])

	for _, cardIndex := range s.triggers {
		s.Equal(0, cardIndex)
	}
}

func (s *GameServiceTestSuite) TestJokerBonusDuringGame() {
	s.expectPlayers("Ann")
	s.scriptTurns(
		turn{models.Dice{4, 4, 4, 4, 4}, []*game.CategorySelection{pick(models.CategoryYahtzee)}},
		turn{models.Dice{4, 4, 4, 4, 4}, []*game.CategorySelection{pick(models.CategoryFours)}},
	)
	for _, category := range models.AllCategories() {
		if category == models.CategoryYahtzee || category == models.CategoryFours {
			continue
		}
		s.scriptTurns(turn{models.Dice{1, 2, 3, 5, 5}, []*game.CategorySelection{pick(category)}})
	}
	s.expectDisplay()
	s.mockRepo.EXPECT().SaveEntries(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.gameService.Play(s.ctx, nil)
	s.Require().NoError(err)

	s.Equal(120, s.updates[cell{models.RowFor(models.CategoryFours), 0}])
}

func (s *GameServiceTestSuite) TestUsedCategoryIsRePrompted() {
	s.expectPlayers("Ann")
	turns := everyCategory(models.Dice{2, 3, 4, 5, 6})
	// Second turn first tries the category scored on the first turn
	turns[1].picks = append([]*game.CategorySelection{pick(models.CategoryOnes)}, turns[1].picks...)
	// An unknown category is ignored as well
	turns[2].picks = append([]*game.CategorySelection{pick(models.Category(99))}, turns[2].picks...)
	s.scriptTurns(turns...)
	s.expectDisplay()
	s.mockRepo.EXPECT().SaveEntries(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.gameService.Play(s.ctx, nil)
	s.Require().NoError(err)

	s.Equal(15, s.countMessages("Select a category"))
	s.Equal(1, s.countMessages("That category is already used."))
	s.Equal(len(s.picks), s.pickIndex)
	s.Equal(110, output.WinningScore)
	s.Equal(0, s.updates[cell{models.RowFor(models.CategoryOnes), 0}])
	s.Equal(2, s.updates[cell{models.RowFor(models.CategoryTwos), 0}])
}

func (s *GameServiceTestSuite) TestReRollSelectedDice() {
	s.expectPlayers("Ann")
	turns := everyCategory(models.Dice{2, 3, 4, 5, 6})
	s.scriptTurns(turns[0])
	// First turn re-rolls the last die into a one, then re-rolls the first die into a one
	s.rolls = append(s.rolls, 1, 1)
	s.masks = []models.DieMask{
		{false, false, false, false, true},
		{true, false, false, false, false},
	}
	s.scriptTurns(turns[1:]...)
	s.expectDisplay()
	s.mockRepo.EXPECT().SaveEntries(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.gameService.Play(s.ctx, nil)
	s.Require().NoError(err)

	s.Equal(2, s.updates[cell{models.RowFor(models.CategoryOnes), 0}])
	s.Equal(len(s.rolls), s.rollIndex)
}

func (s *GameServiceTestSuite) TestTiedWinnersShareTheTitle() {
	s.expectPlayers("Ann", "Bob")
	for _, t := range everyCategory(models.Dice{2, 3, 4, 5, 6}) {
		// Both players score the same category each round
		s.scriptTurns(t, t)
	}
	s.expectDisplay()
	s.mockRepo.EXPECT().SaveEntries(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.gameService.Play(s.ctx, nil)
	s.Require().NoError(err)

	s.Equal([]string{"Ann", "Bob"}, output.Winners)
	s.Equal(110, output.WinningScore)
	s.Equal("Congratulations, Ann and Bob, you won with a new high score of 110!", output.Message)
	s.Equal(110, s.updates[cell{models.RowTotal, 0}])
	s.Equal(110, s.updates[cell{models.RowTotal, 1}])
	s.Equal(13, s.countMessages("Ann's turn."))
	s.Equal(13, s.countMessages("Bob's turn."))

	s.Equal(26, len(s.triggers))
	s.Equal(0, s.triggers[0])
	s.Equal(1, s.triggers[1])
}

func (s *GameServiceTestSuite) TestTripleVariant() {
	s.gameService = s.newService(models.VariantTriple)
	s.expectPlayers("Ann")

	var turns []turn
	for column := 0; column < 3; column++ {
		for _, category := range models.AllCategories() {
			turns = append(turns, turn{
				dice:  models.Dice{2, 3, 4, 5, 6},
				picks: []*game.CategorySelection{pickColumn(category, column)},
			})
		}
	}
	// Out of range column is ignored
	turns[0].picks = append([]*game.CategorySelection{pickColumn(models.CategoryOnes, 3)}, turns[0].picks...)
	s.scriptTurns(turns...)
	s.expectDisplay()
	s.mockRepo.EXPECT().SaveEntries(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.gameService.Play(s.ctx, nil)
	s.Require().NoError(err)

	s.Equal(models.VariantTriple, output.Variant)
	s.Equal(110+220+330, output.WinningScore)
	s.Equal(39, len(s.triggers))
	s.Equal(110, s.updates[cell{models.RowTotal, 0}])
	s.Equal(220, s.updates[cell{models.RowTotal, 1}])
	s.Equal(330, s.updates[cell{models.RowTotal, 2}])
	s.Equal(40*3, s.updates[cell{models.RowFor(models.CategoryLargeStraight), 2}])
}

func (s *GameServiceTestSuite) TestPlayInputOverridesVariant() {
	s.expectPlayers("Ann")
	var turns []turn
	for column := 0; column < 3; column++ {
		for _, category := range models.AllCategories() {
			turns = append(turns, turn{
				dice:  models.Dice{2, 3, 4, 5, 6},
				picks: []*game.CategorySelection{pickColumn(category, column)},
			})
		}
	}
	s.scriptTurns(turns...)
	s.expectDisplay()
	s.mockRepo.EXPECT().SaveEntries(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.gameService.Play(s.ctx, &game.PlayInput{Variant: models.VariantTriple})
	s.Require().NoError(err)
	s.Equal(660, output.WinningScore)

	_, err = s.gameService.Play(s.ctx, &game.PlayInput{Variant: "sideways"})
	s.ErrorIs(err, game.ErrInvalidVariant)
}

func (s *GameServiceTestSuite) TestPlayerCountIsRePrompted() {
	gomock.InOrder(
		s.mockPrompt.EXPECT().ReadPlayerCount(gomock.Any()).Return(0, nil),
		s.mockPrompt.EXPECT().ReadPlayerCount(gomock.Any()).Return(5, nil),
		s.mockPrompt.EXPECT().ReadPlayerCount(gomock.Any()).Return(1, nil),
	)
	s.mockPrompt.EXPECT().ReadPlayerName(gomock.Any(), 0).Return("   ", nil)
	s.scriptTurns(everyCategory(models.Dice{2, 3, 4, 5, 6})...)
	s.expectDisplay()
	s.mockRepo.EXPECT().SaveEntries(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.gameService.Play(s.ctx, nil)
	s.Require().NoError(err)

	s.Equal(2, s.countMessages("Please enter a valid number of players."))
	s.Equal([]string{"Player 1"}, output.Winners)
}

func (s *GameServiceTestSuite) TestNoHighScoreWhenLedgerIsFull() {
	var stored []*models.HighScoreEntry
	for i := 0; i < ledger.DefaultSize; i++ {
		stored = append(stored, &models.HighScoreEntry{Score: 1000, Name: fmt.Sprintf("Champ%d", i)})
	}
	s.mockRepo.EXPECT().LoadEntries(gomock.Any()).Return(stored, nil)
	s.useLedger()
	s.gameService = s.newService(models.VariantStandard)

	s.expectPlayers("Ann")
	s.scriptTurns(everyCategory(models.Dice{2, 3, 4, 5, 6})...)
	s.expectDisplay()
	// No SaveEntries expectation: the ledger did not change

	output, err := s.gameService.Play(s.ctx, nil)
	s.Require().NoError(err)

	s.False(output.NewHighScore)
	s.Equal("Congratulations, Ann, you won with a total score of 110!", output.Message)
	s.True(strings.HasPrefix(s.messages[0], "Highscores:\n 1000 Champ0\n"))
}

func (s *GameServiceTestSuite) TestSaveFailureIsFatal() {
	s.expectPlayers("Ann")
	s.scriptTurns(everyCategory(models.Dice{2, 3, 4, 5, 6})...)
	s.expectDisplay()

	writeErr := errors.New("disk full")
	s.mockRepo.EXPECT().SaveEntries(gomock.Any(), gomock.Any()).Return(writeErr)

	output, err := s.gameService.Play(s.ctx, nil)
	s.ErrorIs(err, writeErr)
	s.Nil(output)
	s.Zero(s.countMessages("Congratulations"))
}

func (s *GameServiceTestSuite) TestDisplayFailureAbortsGame() {
	s.expectPlayers("Ann")
	displayErr := errors.New("window closed")

	s.mockDisplay.EXPECT().PrintMessage(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockDisplay.EXPECT().WaitForRollTrigger(gomock.Any(), 0).Return(displayErr)

	output, err := s.gameService.Play(s.ctx, nil)
	s.ErrorIs(err, displayErr)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestPromptFailureAbortsGame() {
	promptErr := errors.New("stdin closed")
	s.mockDisplay.EXPECT().PrintMessage(gomock.Any(), gomock.Any()).Return(nil)
	s.mockPrompt.EXPECT().ReadPlayerCount(gomock.Any()).Return(0, promptErr)

	_, err := s.gameService.Play(s.ctx, nil)
	s.ErrorIs(err, promptErr)
}

func (s *GameServiceTestSuite) TestCancelledContextAbortsGame() {
	s.expectPlayers("Ann")
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.mockDisplay.EXPECT().PrintMessage(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	_, err := s.gameService.Play(ctx, nil)
	s.ErrorIs(err, context.Canceled)
}
