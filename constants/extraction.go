package constants

// Fallback values stored when a field cannot be read from a page.
const (
	UnknownName    = "Unknown"
	UnknownDate    = "Unknown_Date"
	UnknownCompany = "Unknown Company"
)

// DefaultDelimiter is the form code that precedes the per-employee block on every page.
const DefaultDelimiter = "4300"

// DateLayout is the canonical stored form of a pay date.
const DateLayout = "2006-01-02"

// DefaultCurrency is used when formatting net pay for display.
const DefaultCurrency = "USD"
