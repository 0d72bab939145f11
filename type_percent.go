package constituents

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Percent is a fund weight or a price change, in percentage points.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Cell formats p as a bare number, the way it is persisted in table and
// snapshot cells.
func (p Percent) Cell() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}

// ParsePercent parses a percentage as published by fund vendors: an optional
// trailing '%' and thousands separators are stripped before the numeric
// conversion.
func ParsePercent(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return Percent(d.InexactFloat64()), nil
}
