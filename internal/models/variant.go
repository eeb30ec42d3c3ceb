package models

import (
	"fmt"
	"strings"
)

// Variant selects how many scorecard columns each player fills
type Variant string

const (
	// VariantStandard gives every player a single scorecard
	VariantStandard Variant = "standard"

	// VariantTriple gives every player three weighted scorecard columns
	VariantTriple Variant = "triple"
)

// Columns returns the number of scorecards per player
func (v Variant) Columns() int {
	if v == VariantTriple {
		return 3
	}
	return 1
}

// ColumnWeight returns the score multiplier for a column.
// Standard games always weigh 1; triple columns weigh their 1-based position.
func (v Variant) ColumnWeight(column int) int {
	if v == VariantTriple {
		return column + 1
	}
	return 1
}

// ParseVariant converts a configuration value into a Variant
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantStandard, "":
		return VariantStandard, nil
	case VariantTriple:
		return VariantTriple, nil
	}
	return "", fmt.Errorf("unknown variant %q", s)
}
