package models

import "fmt"

// Row identifies a line on the scorecard that the display can update.
// The first NumCategories rows line up with the categories; the rest are summary rows.
type Row int

const (
	// RowUpperScore is the upper section subtotal
	RowUpperScore Row = Row(NumCategories) + iota

	// RowUpperBonus is the bonus for reaching the upper section threshold
	RowUpperBonus

	// RowLowerScore is the lower section subtotal
	RowLowerScore

	// RowTotal is the card's grand total
	RowTotal
)

// RowFor returns the scorecard row that shows a category's score
func RowFor(c Category) Row {
	return Row(c)
}

// Category returns the category shown on this row, if it is a category row
func (r Row) Category() (Category, bool) {
	c := Category(r)
	return c, c.Valid()
}

func (r Row) String() string {
	if c, ok := r.Category(); ok {
		return c.String()
	}
	switch r {
	case RowUpperScore:
		return "upper-score"
	case RowUpperBonus:
		return "upper-bonus"
	case RowLowerScore:
		return "lower-score"
	case RowTotal:
		return "total"
	}
	return fmt.Sprintf("row(%d)", int(r))
}
