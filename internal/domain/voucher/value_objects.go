package voucher

import (
	"errors"
	"strings"
)

var (
	ErrInvalidVoucherCode     = errors.New("voucher code cannot be empty")
	ErrInvalidDiscountType    = errors.New("discount type must be PERCENTAGE or FIXED")
	ErrInvalidDiscountValue   = errors.New("discount value cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidMinOrderAmount  = errors.New("minimum order amount cannot be negative")
	ErrInvalidMaxDiscount     = errors.New("maximum discount cannot be negative")
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

func (t DiscountType) String() string {
	return string(t)
}

func (t DiscountType) IsValid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

// ParseDiscountType accepts any casing. Unknown values are kept so that
// the voucher can be reported as malformed rather than rejected upstream.
func ParseDiscountType(raw string) DiscountType {
	upper := DiscountType(strings.ToUpper(strings.TrimSpace(raw)))
	if upper.IsValid() {
		return upper
	}
	return DiscountType(raw)
}

// Code is a voucher code as issued. Matching ignores case and surrounding spaces.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Code(""), ErrInvalidVoucherCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

func (c Code) Matches(input string) bool {
	input = strings.TrimSpace(input)
	return input != "" && strings.EqualFold(string(c), input)
}
