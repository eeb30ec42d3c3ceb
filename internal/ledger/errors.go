package ledger

// LedgerError is a custom error type for ledger errors
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     LedgerError = "config cannot be nil"
	ErrNilRepository LedgerError = "high score repository cannot be nil"
)
