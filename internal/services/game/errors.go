package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilDisplay       GameError = "display cannot be nil"
	ErrNilPrompt        GameError = "prompt cannot be nil"
	ErrNilDiceRoller    GameError = "dice roller cannot be nil"
	ErrNilLedger        GameError = "high score ledger cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
	ErrInvalidVariant   GameError = "invalid game variant"
)
