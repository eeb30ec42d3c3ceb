package console

// ConsoleError is a console input error
type ConsoleError string

func (e ConsoleError) Error() string {
	return string(e)
}

const (
	// ErrInputClosed is returned when the input ends before the game does
	ErrInputClosed ConsoleError = "input closed"

	// ErrInvalidDice is returned for die positions that cannot be parsed
	ErrInvalidDice ConsoleError = "invalid die positions"

	// ErrInvalidSelection is returned for a category selection that cannot be parsed
	ErrInvalidSelection ConsoleError = "invalid category selection"
)
