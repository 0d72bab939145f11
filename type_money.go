package constituents

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value, such as a constituent's market value or
// last traded price.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from a decimal amount expressed in major units.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency.
func (m Money) currency() *money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, formatted for
// its currency ("$59,127,100.00").
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Cell formats m as a bare number for persistence, or "" when unset.
func (m Money) Cell() string {
	if m.IsZero() {
		return ""
	}
	return m.value.String()
}

func (m Money) Currency() string   { return m.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

// Add sums two amounts; the "" currency is totally weak.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// ParseMoney parses a currency amount as published by fund vendors: an
// optional currency sign and thousands separators are stripped before the
// numeric conversion ("$59,127,100" → 59127100 USD).
func ParseMoney(s, currency string) (Money, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return M(d, currency), nil
}
