package dice

import "github.com/KirkDiggler/yahtzee/internal/models"

// Set is the five dice a player rolls during a turn
type Set struct {
	roller Roller
	faces  models.Dice
}

// NewSet creates a dice set drawing from the given roller
func NewSet(roller Roller) *Set {
	return &Set{roller: roller}
}

// RollAll rolls all five dice
func (s *Set) RollAll() models.Dice {
	for i := range s.faces {
		s.faces[i] = s.roller.Roll(models.DieSides)
	}
	return s.faces
}

// RollSelected re-rolls only the positions marked in mask, in position order
func (s *Set) RollSelected(mask models.DieMask) models.Dice {
	for i, selected := range mask {
		if selected {
			s.faces[i] = s.roller.Roll(models.DieSides)
		}
	}
	return s.faces
}

// Faces returns the current face values
func (s *Set) Faces() models.Dice {
	return s.faces
}
