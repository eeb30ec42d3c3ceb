package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/services/game"
)

// parseDieMask reads 1-based die positions separated by spaces or commas.
// A blank line keeps every die.
func parseDieMask(line string) (models.DieMask, error) {
	var mask models.DieMask
	for _, field := range splitFields(line) {
		position, err := strconv.Atoi(field)
		if err != nil || position < 1 || position > models.NumDice {
			return models.DieMask{}, fmt.Errorf("%w: %q", ErrInvalidDice, field)
		}
		mask[position-1] = true
	}
	return mask, nil
}

// parseCategorySelection reads a category name or number, optionally followed
// by a 1-based column. Multi-word names such as "full house" are accepted.
func parseCategorySelection(line string) (*game.CategorySelection, error) {
	fields := splitFields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidSelection)
	}

	column := 0
	if len(fields) > 1 {
		if n, err := strconv.Atoi(fields[len(fields)-1]); err == nil {
			if n < 1 {
				return nil, fmt.Errorf("%w: column %d", ErrInvalidSelection, n)
			}
			column = n - 1
			fields = fields[:len(fields)-1]
		}
	}

	category, err := models.ParseCategory(strings.Join(fields, " "))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	return &game.CategorySelection{
		Category: category,
		Column:   column,
	}, nil
}

func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
}
