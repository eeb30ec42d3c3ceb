package game

import (
	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/scorecard"
)

// State is everything a game in progress owns. It lives only as long as Play.
type State struct {
	// ID identifies the game
	ID string

	// Variant decides the number of columns per player
	Variant models.Variant

	// Players holds the names in turn order
	Players []string

	// Round counts completed rounds
	Round int

	// Cards are stored flat; see CardIndex
	Cards []*scorecard.ScoreCard
}

// NewState creates a game with an empty scorecard for every (player, column) pair
func NewState(id string, variant models.Variant, players []string) *State {
	state := &State{
		ID:      id,
		Variant: variant,
		Players: players,
	}

	columns := variant.Columns()
	state.Cards = make([]*scorecard.ScoreCard, 0, len(players)*columns)
	for player := range players {
		for column := 0; column < columns; column++ {
			state.Cards = append(state.Cards, scorecard.New(&scorecard.Config{
				Player: player,
				Column: column,
				Weight: variant.ColumnWeight(column),
			}))
		}
	}

	return state
}

// Columns returns the number of scorecards per player
func (s *State) Columns() int {
	return s.Variant.Columns()
}

// Rounds returns the number of rounds needed to fill every card
func (s *State) Rounds() int {
	return models.NumCategories * s.Columns()
}

// CardIndex returns the flat index of a (player, column) card, which is also
// the index the display uses for that card
func (s *State) CardIndex(player, column int) int {
	return player*s.Columns() + column
}

// Card returns the scorecard for a (player, column) pair
func (s *State) Card(player, column int) *scorecard.ScoreCard {
	return s.Cards[s.CardIndex(player, column)]
}

// PlayerTotal sums the player's totals across all columns
func (s *State) PlayerTotal(player int) int {
	total := 0
	for column := 0; column < s.Columns(); column++ {
		total += s.Card(player, column).Total()
	}
	return total
}

// PlayerScores returns every player's grand total in player order
func (s *State) PlayerScores() []models.PlayerScore {
	scores := make([]models.PlayerScore, len(s.Players))
	for player, name := range s.Players {
		scores[player] = models.PlayerScore{
			Name:  name,
			Total: s.PlayerTotal(player),
		}
	}
	return scores
}

// Complete reports whether every category on every card has been scored
func (s *State) Complete() bool {
	for _, card := range s.Cards {
		if !card.Complete() {
			return false
		}
	}
	return true
}
