package extract

import (
	"strings"
	"time"

	"github.com/joseph-ayodele/paystubs-tracker/constants"
)

// DateLayouts is the ordered list of accepted cheque date layouts. The first
// layout that parses wins, so day-first readings take precedence over
// month-first ones for ambiguous values such as 03/04/2024.
var DateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"1/2/2006",
	"1-2-2006",
	"2/1/06",
	"2-1-06",
	"1/2/06",
	"1-2-06",
	"January 2, 2006",
	"2 January 2006",
	"2006-1-2",
}

// ParseDate normalizes s to constants.DateLayout. ok is false when no layout matches.
func ParseDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return constants.UnknownDate, false
	}
	for _, layout := range DateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return t.Format(constants.DateLayout), true
	}
	return constants.UnknownDate, false
}
