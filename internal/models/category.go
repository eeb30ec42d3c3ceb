package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Category is one of the thirteen scoring boxes on a Yahtzee scorecard
type Category int

const (
	// Upper section
	CategoryOnes Category = iota
	CategoryTwos
	CategoryThrees
	CategoryFours
	CategoryFives
	CategorySixes

	// Lower section
	CategoryThreeOfAKind
	CategoryFourOfAKind
	CategoryFullHouse
	CategorySmallStraight
	CategoryLargeStraight
	CategoryYahtzee
	CategoryChance
)

// NumCategories is the number of scoring categories on one scorecard
const NumCategories = 13

var categoryNames = [NumCategories]string{
	"ones",
	"twos",
	"threes",
	"fours",
	"fives",
	"sixes",
	"three-of-a-kind",
	"four-of-a-kind",
	"full-house",
	"small-straight",
	"large-straight",
	"yahtzee",
	"chance",
}

// AllCategories returns every category in scorecard order
func AllCategories() []Category {
	out := make([]Category, NumCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Valid reports whether c is one of the thirteen categories
func (c Category) Valid() bool {
	return c >= CategoryOnes && c <= CategoryChance
}

// IsUpper reports whether c belongs to the upper section (Ones through Sixes)
func (c Category) IsUpper() bool {
	return c >= CategoryOnes && c <= CategorySixes
}

// FaceValue returns the die face counted by an upper category, or 0 for lower categories
func (c Category) FaceValue() int {
	if !c.IsUpper() {
		return 0
	}
	return int(c) + 1
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory resolves a category from its name or its 1-based position on the card.
// Names are matched case-insensitively; spaces and underscores are treated as dashes.
func ParseCategory(s string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "-", "_", "-").Replace(normalized)
	if normalized == "" {
		return 0, fmt.Errorf("empty category")
	}

	if n, err := strconv.Atoi(normalized); err == nil {
		c := Category(n - 1)
		if !c.Valid() {
			return 0, fmt.Errorf("category number %d out of range", n)
		}
		return c, nil
	}

	for i, name := range categoryNames {
		if name == normalized {
			return Category(i), nil
		}
	}

	return 0, fmt.Errorf("unknown category %q", s)
}
