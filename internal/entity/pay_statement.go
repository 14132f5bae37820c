package entity

import "github.com/shopspring/decimal"

// PayStatement is one recorded page of a payroll run.
type PayStatement struct {
	ID             int64               `json:"id"`
	IndividualID   int64               `json:"individual_id"`
	IndividualName string              `json:"individual_name"`
	Date           string              `json:"date"`
	Filename       string              `json:"filename"`
	ExtractionDate string              `json:"extraction_date"`
	Amount         decimal.NullDecimal `json:"amount"`
	Company        string              `json:"company"`
}

// NewPayStatement is the input to the insert-if-absent step. IndividualName
// is resolved to an id inside the same transaction.
type NewPayStatement struct {
	IndividualName string
	Date           string
	Filename       string
	ExtractionDate string
	Amount         decimal.NullDecimal
	Company        string
}
