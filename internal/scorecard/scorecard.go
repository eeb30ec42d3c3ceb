// Package scorecard records one column of one player's Yahtzee card.
package scorecard

import (
	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

const (
	// UpperBonusThreshold is the upper subtotal that earns the bonus, per unit of weight
	UpperBonusThreshold = 63

	// UpperBonus is awarded once when the threshold is reached, per unit of weight
	UpperBonus = 35

	// JokerBonus is added for each additional Yahtzee scored in another category
	JokerBonus = 100
)

// Config holds the identity of a scorecard
type Config struct {
	// Player is the index of the owning player
	Player int

	// Column is the index of this card within the player's columns
	Column int

	// Weight multiplies every category score and the upper bonus; values below 1 mean 1
	Weight int
}

// ScoreCard tracks used categories, subtotals and bonuses for a (player, column) pair
type ScoreCard struct {
	player int
	column int
	weight int

	used   [models.NumCategories]bool
	scores [models.NumCategories]int

	upper         int
	lower         int
	upperBonus    int
	jokerEligible bool
}

// ApplyResult describes what changed on the card after a category was scored
type ApplyResult struct {
	// Category that was scored
	Category models.Category

	// Value written into the category box, including any joker bonus
	Value int

	// JokerBonus is true when the additional-Yahtzee bonus was included in Value
	JokerBonus bool

	// SectionRow is the subtotal row that changed (upper or lower)
	SectionRow models.Row

	// SectionTotal is the new value of SectionRow
	SectionTotal int

	// UpperBonusAwarded is true only on the application that crossed the threshold
	UpperBonusAwarded bool

	// UpperBonus is the card's upper bonus after this application
	UpperBonus int

	// Total is the card's new grand total
	Total int
}

// New creates an empty scorecard
func New(cfg *Config) *ScoreCard {
	card := &ScoreCard{
		weight:        1,
		jokerEligible: true,
	}
	if cfg != nil {
		card.player = cfg.Player
		card.column = cfg.Column
		if cfg.Weight > 1 {
			card.weight = cfg.Weight
		}
	}
	return card
}

// Apply scores dice into category and updates subtotals and bonuses.
// A category can be applied once; a second attempt returns ErrCategoryUsed
// and leaves the card unchanged.
func (c *ScoreCard) Apply(category models.Category, dice models.Dice) (*ApplyResult, error) {
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	if c.used[category] {
		return nil, ErrCategoryUsed
	}

	value := scoring.Score(category, dice) * c.weight
	result := &ApplyResult{Category: category}

	if category == models.CategoryYahtzee {
		if value == 0 {
			c.jokerEligible = false
		}
	} else if c.jokerApplies(dice) {
		value += JokerBonus
		result.JokerBonus = true
	}

	c.used[category] = true
	c.scores[category] = value

	if category.IsUpper() {
		c.upper += value
		result.SectionRow = models.RowUpperScore
		result.SectionTotal = c.upper
	} else {
		c.lower += value
		result.SectionRow = models.RowLowerScore
		result.SectionTotal = c.lower
	}

	if c.upperBonus == 0 && c.upper >= UpperBonusThreshold*c.weight {
		c.upperBonus = UpperBonus * c.weight
		result.UpperBonusAwarded = true
	}

	result.Value = value
	result.UpperBonus = c.upperBonus
	result.Total = c.Total()
	return result, nil
}

// jokerApplies reports whether a five-of-a-kind earns the additional-Yahtzee bonus
func (c *ScoreCard) jokerApplies(dice models.Dice) bool {
	return c.jokerEligible &&
		c.used[models.CategoryYahtzee] &&
		c.scores[models.CategoryYahtzee] > 0 &&
		scoring.IsYahtzee(dice)
}

// Player returns the owning player's index
func (c *ScoreCard) Player() int { return c.player }

// Column returns the card's column index
func (c *ScoreCard) Column() int { return c.column }

// Weight returns the card's score multiplier
func (c *ScoreCard) Weight() int { return c.weight }

// Used reports whether category has been scored on this card
func (c *ScoreCard) Used(category models.Category) bool {
	return category.Valid() && c.used[category]
}

// Score returns the value recorded for category, and whether it has been scored
func (c *ScoreCard) Score(category models.Category) (int, bool) {
	if !c.Used(category) {
		return 0, false
	}
	return c.scores[category], true
}

// Upper returns the upper section subtotal
func (c *ScoreCard) Upper() int { return c.upper }

// Lower returns the lower section subtotal
func (c *ScoreCard) Lower() int { return c.lower }

// UpperBonus returns the awarded upper bonus, or 0
func (c *ScoreCard) UpperBonus() int { return c.upperBonus }

// Total returns upper + lower + upper bonus
func (c *ScoreCard) Total() int {
	return c.upper + c.lower + c.upperBonus
}

// JokerEligible is false once Yahtzee has been scored as zero
func (c *ScoreCard) JokerEligible() bool { return c.jokerEligible }

// Remaining returns the categories not yet scored, in card order
func (c *ScoreCard) Remaining() []models.Category {
	var out []models.Category
	for _, category := range models.AllCategories() {
		if !c.used[category] {
			out = append(out, category)
		}
	}
	return out
}

// Complete reports whether every category has been scored
func (c *ScoreCard) Complete() bool {
	for _, used := range c.used {
		if !used {
			return false
		}
	}
	return true
}
