package entity

import "github.com/shopspring/decimal"

// Individual is a person named on one or more pay statements. Contact
// fields are never filled by ingestion.
type Individual struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Address     *string `json:"address,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Email       *string `json:"email,omitempty"`
}

// IndividualSummary is an Individual with totals over their statements.
type IndividualSummary struct {
	Individual
	StatementCount int64           `json:"statement_count"`
	TotalNetPay    decimal.Decimal `json:"total_net_pay"`
}

// ContactUpdate carries the contact fields to change; nil fields are left alone.
type ContactUpdate struct {
	Address     *string `json:"address,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Email       *string `json:"email,omitempty"`
}

func (u ContactUpdate) Empty() bool {
	return u.Address == nil && u.PhoneNumber == nil && u.Email == nil
}
