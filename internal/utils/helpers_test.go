package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	amt := decimal.NewNullDecimal(decimal.RequireFromString("1234.56"))
	assert.Equal(t, "$1,234.56", FormatAmount(amt, "USD"))
	assert.Equal(t, "$1,234.56", FormatAmount(amt, "???"))
	assert.Equal(t, "", FormatAmount(decimal.NullDecimal{}, "USD"))
	assert.EqualValues(t, 123456, ToMoney(amt.Decimal, "USD").Amount())
}

func TestParseYMD(t *testing.T) {
	d, err := ParseYMD("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 5, d.Day())

	_, err = ParseYMD("Unknown_Date")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab…", Truncate("abcdef", 3))
	assert.Equal(t, "é", Truncate("éé", 1))
}

func TestStrOrEmpty(t *testing.T) {
	s := "x"
	assert.Equal(t, "x", StrOrEmpty(&s))
	assert.Equal(t, "", StrOrEmpty(nil))
}
