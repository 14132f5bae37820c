package utils

import (
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/paystubs-tracker/constants"
)

func StrOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToMoney converts an amount to minor units of currency; unknown codes fall back to USD.
func ToMoney(amount decimal.Decimal, currency string) *money.Money {
	cur := money.GetCurrency(currency)
	if cur == nil {
		cur = money.GetCurrency(constants.DefaultCurrency)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code)
}

// FormatAmount renders net pay for display, e.g. "$1,234.56". A null amount is "".
func FormatAmount(amount decimal.NullDecimal, currency string) string {
	if !amount.Valid {
		return ""
	}
	return ToMoney(amount.Decimal, currency).Display()
}

// ParseYMD parses a stored pay date; it fails for the unknown-date placeholder.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
