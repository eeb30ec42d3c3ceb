package game

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/scorecard"
)

// reRolls is the number of re-rolls after the first roll of a turn
const reRolls = 2

const (
	msgRollDice       = "%s's turn. Click \"Roll Dice\" to roll the dice."
	msgSelectDice     = "Select the dice you wish to re-roll and click \"Roll Again\"."
	msgSelectCategory = "Select a category for this roll."
	msgCategoryUsed   = "That category is already used."
)

// turnState is a step of a single turn
type turnState int

const (
	stateFirstRoll turnState = iota
	stateReRoll
	stateCategorySelect
	stateScoreApply
	stateDone
)

func (s turnState) String() string {
	switch s {
	case stateFirstRoll:
		return "first_roll"
	case stateReRoll:
		return "re_roll"
	case stateCategorySelect:
		return "category_select"
	case stateScoreApply:
		return "score_apply"
	case stateDone:
		return "done"
	}
	return fmt.Sprintf("turn_state(%d)", int(s))
}

// scorecardUpdate is one row written back to the display after scoring
type scorecardUpdate struct {
	row   models.Row
	index int
	value int
}

// turnController walks every player through every round of a game
type turnController struct {
	display Display
	dice    *dice.Set
	game    *State
}

func newTurnController(display Display, diceSet *dice.Set, game *State) *turnController {
	return &turnController{
		display: display,
		dice:    diceSet,
		game:    game,
	}
}

// Run plays rounds until every card is full
func (t *turnController) Run(ctx context.Context) error {
	for t.game.Round < t.game.Rounds() {
		if err := t.playRound(ctx); err != nil {
			return err
		}
	}

	if !t.game.Complete() {
		return fmt.Errorf("game %s finished %d rounds with open categories", t.game.ID, t.game.Round)
	}
	return nil
}

// playRound gives each player one turn, in player order
func (t *turnController) playRound(ctx context.Context) error {
	for player := range t.game.Players {
		if err := t.playTurn(ctx, player); err != nil {
			return fmt.Errorf("round %d, player %d: %w", t.game.Round+1, player+1, err)
		}
	}
	t.game.Round++
	return nil
}

// playTurn runs one player's turn through the turn states
func (t *turnController) playTurn(ctx context.Context, player int) error {
	var (
		state       = stateFirstRoll
		reRollsLeft = reRolls
		selection   *CategorySelection
	)

	for state != stateDone {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch state {
		case stateFirstRoll:
			if err := t.firstRoll(ctx, player); err != nil {
				return err
			}
			state = stateReRoll

		case stateReRoll:
			if reRollsLeft == 0 {
				state = stateCategorySelect
				continue
			}
			if err := t.reRoll(ctx); err != nil {
				return err
			}
			reRollsLeft--

		case stateCategorySelect:
			var err error
			selection, err = t.selectCategory(ctx, player)
			if err != nil {
				return err
			}
			state = stateScoreApply

		case stateScoreApply:
			if err := t.applyScore(ctx, player, selection); err != nil {
				return err
			}
			state = stateDone

		default:
			return fmt.Errorf("unknown turn state %s", state)
		}
	}

	return nil
}

func (t *turnController) firstRoll(ctx context.Context, player int) error {
	if err := t.display.PrintMessage(ctx, fmt.Sprintf(msgRollDice, t.game.Players[player])); err != nil {
		return fmt.Errorf("failed to print message: %w", err)
	}
	if err := t.display.WaitForRollTrigger(ctx, t.game.CardIndex(player, 0)); err != nil {
		return fmt.Errorf("failed to wait for roll: %w", err)
	}

	faces := t.dice.RollAll()
	if err := t.display.DisplayDice(ctx, faces); err != nil {
		return fmt.Errorf("failed to display dice: %w", err)
	}
	return nil
}

func (t *turnController) reRoll(ctx context.Context) error {
	if err := t.display.PrintMessage(ctx, msgSelectDice); err != nil {
		return fmt.Errorf("failed to print message: %w", err)
	}
	mask, err := t.display.WaitForDieSelection(ctx)
	if err != nil {
		return fmt.Errorf("failed to wait for dice selection: %w", err)
	}

	faces := t.dice.RollSelected(mask)
	if err := t.display.DisplayDice(ctx, faces); err != nil {
		return fmt.Errorf("failed to display dice: %w", err)
	}
	return nil
}

// selectCategory re-prompts until the player picks an open category on one of their columns
func (t *turnController) selectCategory(ctx context.Context, player int) (*CategorySelection, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := t.display.PrintMessage(ctx, msgSelectCategory); err != nil {
			return nil, fmt.Errorf("failed to print message: %w", err)
		}
		picked, err := t.display.WaitForCategorySelection(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to wait for category selection: %w", err)
		}
		if picked == nil || !picked.Category.Valid() {
			continue
		}

		selection := &CategorySelection{Category: picked.Category}
		if t.game.Columns() > 1 {
			if picked.Column < 0 || picked.Column >= t.game.Columns() {
				continue
			}
			selection.Column = picked.Column
		}

		if t.game.Card(player, selection.Column).Used(selection.Category) {
			if err := t.display.PrintMessage(ctx, msgCategoryUsed); err != nil {
				return nil, fmt.Errorf("failed to print message: %w", err)
			}
			continue
		}
		return selection, nil
	}
}

// applyScore scores the dice on the chosen card and echoes every changed row
func (t *turnController) applyScore(ctx context.Context, player int, selection *CategorySelection) error {
	card := t.game.Card(player, selection.Column)
	cardIndex := t.game.CardIndex(player, selection.Column)

	result, err := card.Apply(selection.Category, t.dice.Faces())
	if err != nil {
		if errors.Is(err, scorecard.ErrCategoryUsed) {
			return fmt.Errorf("category %s was selected after it was used: %w", selection.Category, err)
		}
		return err
	}

	if result.JokerBonus {
		log.Printf("Game %s: %s scored an additional Yahtzee in %s", t.game.ID, t.game.Players[player], selection.Category)
	}

	updates := []scorecardUpdate{
		{models.RowFor(result.Category), cardIndex, result.Value},
		{result.SectionRow, cardIndex, result.SectionTotal},
	}
	if result.UpperBonusAwarded {
		updates = append(updates, scorecardUpdate{models.RowUpperBonus, cardIndex, result.UpperBonus})
	}
	for column := 0; column < t.game.Columns(); column++ {
		updates = append(updates, scorecardUpdate{
			models.RowTotal,
			t.game.CardIndex(player, column),
			t.game.Card(player, column).Total(),
		})
	}

	for _, update := range updates {
		if err := t.display.UpdateScorecard(ctx, update.row, update.index, update.value); err != nil {
			return fmt.Errorf("failed to update scorecard: %w", err)
		}
	}
	return nil
}
