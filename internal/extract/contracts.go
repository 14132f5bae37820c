package extract

import (
	"github.com/shopspring/decimal"
)

// FieldExtractor turns one page of text into a Record. Implementations never fail:
// every field has a fallback.
type FieldExtractor interface {
	Extract(text string) Record
}

// Record is the structured view of one pay statement page.
type Record struct {
	Name    string
	Date    string // constants.DateLayout or constants.UnknownDate
	Amount  decimal.NullDecimal
	Company string
	// Misses lists the fields that fell back to their default.
	Misses []string
}

// Field names reported in Record.Misses.
const (
	FieldName    = "name"
	FieldDate    = "date"
	FieldAmount  = "amount"
	FieldCompany = "company"
)

// Complete reports whether every field was read from the text.
func (r Record) Complete() bool {
	return len(r.Misses) == 0
}
