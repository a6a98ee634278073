package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// VND is an amount in whole Vietnamese đồng. There are no fractional units.
type VND int64

var printer = message.NewPrinter(language.Vietnamese)

func (v VND) Int64() int64 { return int64(v) }

// Mul multiplies by a quantity; non-positive quantities contribute nothing.
// The product saturates at math.MaxInt64 instead of wrapping.
func (v VND) Mul(qty int) VND {
	if qty <= 0 {
		return 0
	}
	if v > 0 && int64(v) > math.MaxInt64/int64(qty) {
		return math.MaxInt64
	}
	return v * VND(qty)
}

// Add sums two non-negative amounts, saturating at math.MaxInt64.
func (v VND) Add(o VND) VND {
	if o > 0 && v > math.MaxInt64-o {
		return math.MaxInt64
	}
	return v + o
}

func Max(a, b VND) VND {
	if a > b {
		return a
	}
	return b
}

func Min(a, b VND) VND {
	if a < b {
		return a
	}
	return b
}

// Format renders the amount with Vietnamese digit grouping, e.g. "198.000 ₫".
func (v VND) Format() string {
	return printer.Sprintf("%d ₫", int64(v))
}
