package console

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/yahtzee/internal/models"
)

// renderDice renders a roll as "Dice: 3 5 1 6 2"
func renderDice(dice models.Dice) string {
	faces := make([]string, len(dice))
	for i, face := range dice {
		faces[i] = fmt.Sprint(face)
	}
	return "Dice: " + strings.Join(faces, " ")
}

// renderScorecardRow renders a row update, e.g. "Card 2  full-house        25"
func renderScorecardRow(row models.Row, cardIndex int, value int) string {
	return fmt.Sprintf("Card %d  %-16s %4d", cardIndex+1, row, value)
}
