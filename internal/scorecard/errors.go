package scorecard

// ScoreCardError is a custom error type for scorecard errors
type ScoreCardError string

// Error implements the error interface
func (e ScoreCardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrCategoryUsed    ScoreCardError = "category already used on this scorecard"
	ErrInvalidCategory ScoreCardError = "invalid category"
)
