package extract

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/paystubs-tracker/constants"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"05/03/2024", "2024-03-05", true},
		{"03/04/2024", "2024-04-03", true}, // ambiguous: day-first wins
		{"12/25/2024", "2024-12-25", true}, // only month-first fits
		{"25-12-2024", "2024-12-25", true},
		{"12-25-2024", "2024-12-25", true},
		{"5/3/24", "2024-03-05", true},
		{"12/25/99", "1999-12-25", true},
		{"31-01-68", "2068-01-31", true},
		{"March 7, 2024", "2024-03-07", true},
		{"march 7, 2024", "2024-03-07", true},
		{"7 March 2024", "2024-03-07", true},
		{"2024-03-07", "2024-03-07", true},
		{"  2024-3-7  ", "2024-03-07", true},
		{"31/02/2024", constants.UnknownDate, false},
		{"2024/03/07", constants.UnknownDate, false},
		{"", constants.UnknownDate, false},
		{"not a date", constants.UnknownDate, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate_RoundTripsEveryLayout(t *testing.T) {
	faker := gofakeit.New(20240305)
	monthFirst := map[string]bool{
		"1/2/2006": true, "1-2-2006": true, "1/2/06": true, "1-2-06": true,
	}
	twoDigitYear := map[string]bool{
		"2/1/06": true, "2-1-06": true, "1/2/06": true, "1-2-06": true,
	}

	for _, layout := range DateLayouts {
		for i := 0; i < 200; i++ {
			start := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
			end := time.Date(2200, 12, 31, 0, 0, 0, 0, time.UTC)
			if twoDigitYear[layout] {
				start = time.Date(1969, 1, 1, 0, 0, 0, 0, time.UTC)
				end = time.Date(2068, 12, 31, 0, 0, 0, 0, time.UTC)
			}
			v := faker.DateRange(start, end)
			if monthFirst[layout] && v.Day() <= 12 {
				// day-first layouts claim these first
				v = time.Date(v.Year(), v.Month(), 13+v.Day(), 0, 0, 0, 0, time.UTC)
			}

			got, ok := ParseDate(v.Format(layout))

			if assert.True(t, ok, "layout %q value %s", layout, v.Format(layout)) {
				assert.Equal(t, v.Format(constants.DateLayout), got, "layout %q", layout)
			}
		}
	}
}
