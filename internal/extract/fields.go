package extract

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/joseph-ayodele/paystubs-tracker/constants"
)

var (
	// nameRe matches the first line made only of letters and blanks that starts uppercase.
	nameRe = regexp.MustCompile(`([A-Z][A-Za-z \t\r]+)\n`)

	// dateRe captures the value after the cheque date label, which may sit on the next line.
	dateRe = regexp.MustCompile(`(?i)Cheque Date:?\s*([^\n]*)`)

	// amountRe captures net pay with optional $ and comma grouping; cents are mandatory.
	amountRe = regexp.MustCompile(`(?i)Net Pay:?\s*\$?([\d,]+\.\d{2})`)

	// companyRe captures the value after the company label.
	companyRe = regexp.MustCompile(`(?i)Company:?\s*([^\n]*)`)
)

// Extractor reads pay statement fields with independent regex passes.
type Extractor struct {
	delimiter string
	logger    *slog.Logger
}

var _ FieldExtractor = (*Extractor)(nil)

// NewExtractor builds an Extractor. An empty delimiter disables header skipping.
func NewExtractor(delimiter string, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{delimiter: delimiter, logger: logger}
}

// Extract never fails; missing fields get their fallback and are listed in Record.Misses.
func (e *Extractor) Extract(text string) Record {
	text = norm.NFC.String(text)
	if e.delimiter != "" {
		if _, after, found := strings.Cut(text, e.delimiter); found {
			text = after
		}
	}

	rec := Record{
		Name:    constants.UnknownName,
		Date:    constants.UnknownDate,
		Company: constants.UnknownCompany,
	}

	if m := nameRe.FindStringSubmatch(text); m != nil {
		rec.Name = strings.TrimSpace(m[1])
	} else {
		rec.Misses = append(rec.Misses, FieldName)
	}

	if m := dateRe.FindStringSubmatch(text); m != nil {
		if d, ok := ParseDate(m[1]); ok {
			rec.Date = d
		} else {
			e.logger.Debug("extract.date.unparsed", "raw", strings.TrimSpace(m[1]))
			rec.Misses = append(rec.Misses, FieldDate)
		}
	} else {
		rec.Misses = append(rec.Misses, FieldDate)
	}

	if m := amountRe.FindStringSubmatch(text); m != nil {
		amt, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
		if err == nil {
			rec.Amount = decimal.NullDecimal{Decimal: amt, Valid: true}
		} else {
			e.logger.Debug("extract.amount.unparsed", "raw", m[1], "error", err)
			rec.Misses = append(rec.Misses, FieldAmount)
		}
	} else {
		rec.Misses = append(rec.Misses, FieldAmount)
	}

	if m := companyRe.FindStringSubmatch(text); m != nil && strings.TrimSpace(m[1]) != "" {
		rec.Company = strings.TrimSpace(m[1])
	} else {
		rec.Misses = append(rec.Misses, FieldCompany)
	}

	if len(rec.Misses) > 0 {
		e.logger.Debug("extract.fields.fallback",
			"missing", rec.Misses,
			"name", rec.Name,
			"date", rec.Date,
		)
	}
	return rec
}
