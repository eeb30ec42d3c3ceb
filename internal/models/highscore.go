package models

// HighScoreEntry is one line of the high-score ledger
type HighScoreEntry struct {
	// Score is the player's grand total for the game
	Score int

	// Name is the player's name as entered at game start
	Name string
}

// PlayerScore is a finished player's grand total, offered to the ledger
type PlayerScore struct {
	Name  string
	Total int
}
