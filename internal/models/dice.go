package models

const (
	// NumDice is the number of dice rolled each turn
	NumDice = 5

	// DieSides is the number of faces on each die
	DieSides = 6
)

// Dice holds the five face values of a roll, each in 1..DieSides
type Dice [NumDice]int

// Sum returns the total of all five faces
func (d Dice) Sum() int {
	total := 0
	for _, face := range d {
		total += face
	}
	return total
}

// Counts returns how many dice show each face; index 0 holds the count of ones
func (d Dice) Counts() [DieSides]int {
	var counts [DieSides]int
	for _, face := range d {
		if face >= 1 && face <= DieSides {
			counts[face-1]++
		}
	}
	return counts
}

// DieMask marks the dice positions selected for a re-roll
type DieMask [NumDice]bool

// Any reports whether at least one die is selected
func (m DieMask) Any() bool {
	for _, selected := range m {
		if selected {
			return true
		}
	}
	return false
}
