// Package scoring maps a category and a roll to the points it is worth.
// Every function here is pure: the same dice always score the same.
package scoring

import "github.com/KirkDiggler/yahtzee/internal/models"

// Fixed category values
const (
	FullHouseScore     = 25
	SmallStraightScore = 30
	LargeStraightScore = 40
	YahtzeeScore       = 50
)

// Score returns the points the dice earn in the given category.
// Categories outside the thirteen known values score 0.
func Score(category models.Category, dice models.Dice) int {
	switch category {
	case models.CategoryOnes, models.CategoryTwos, models.CategoryThrees,
		models.CategoryFours, models.CategoryFives, models.CategorySixes:
		return sumOfFace(dice, category.FaceValue())
	case models.CategoryThreeOfAKind:
		return ofAKind(dice, 3)
	case models.CategoryFourOfAKind:
		return ofAKind(dice, 4)
	case models.CategoryChance:
		return ofAKind(dice, 0)
	case models.CategoryFullHouse:
		if isFullHouse(dice) {
			return FullHouseScore
		}
		return 0
	case models.CategorySmallStraight:
		if longestRun(dice) >= 4 {
			return SmallStraightScore
		}
		return 0
	case models.CategoryLargeStraight:
		if longestRun(dice) == 5 {
			return LargeStraightScore
		}
		return 0
	case models.CategoryYahtzee:
		if IsYahtzee(dice) {
			return YahtzeeScore
		}
		return 0
	}
	return 0
}

// IsYahtzee reports whether all five dice show the same face
func IsYahtzee(dice models.Dice) bool {
	for _, face := range dice[1:] {
		if face != dice[0] {
			return false
		}
	}
	return true
}

func sumOfFace(dice models.Dice, face int) int {
	total := 0
	for _, d := range dice {
		if d == face {
			total += face
		}
	}
	return total
}

// ofAKind returns the sum of all dice when at least n of them share a face.
// n of 0 always qualifies.
func ofAKind(dice models.Dice, n int) int {
	for _, count := range dice.Counts() {
		if count >= n {
			return dice.Sum()
		}
	}
	return 0
}

// isFullHouse requires exactly one pair and exactly one triple
func isFullHouse(dice models.Dice) bool {
	pairs, triples := 0, 0
	for _, count := range dice.Counts() {
		switch count {
		case 2:
			pairs++
		case 3:
			triples++
		}
	}
	return pairs == 1 && triples == 1
}

// longestRun scans faces 1..6 and returns the longest streak of adjacent
// face values that appear at least once
func longestRun(dice models.Dice) int {
	longest, current := 0, 0
	for _, count := range dice.Counts() {
		if count == 0 {
			current = 0
			continue
		}
		current++
		if current > longest {
			longest = current
		}
	}
	return longest
}
