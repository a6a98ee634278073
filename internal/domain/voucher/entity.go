package voucher

import (
	"errors"

	"shuttlesync/internal/pkg/money"
)

var (
	ErrVoucherNotFound   = errors.New("voucher not found")
	ErrVoucherIneligible = errors.New("order does not meet the voucher minimum")
)

type Voucher struct {
	id             string
	code           Code
	name           string
	description    string
	discountType   DiscountType
	value          int64
	minOrderAmount money.VND
	maxDiscount    *money.VND
}

// NewVoucher validates every rule. For PERCENTAGE, value is a percent; for FIXED it is đồng.
func NewVoucher(
	id, code, name, description string,
	discountType DiscountType,
	value int64,
	minOrderAmount money.VND,
	maxDiscount *money.VND,
) (*Voucher, error) {
	voucherCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	if !discountType.IsValid() {
		return nil, ErrInvalidDiscountType
	}
	if value < 0 {
		return nil, ErrInvalidDiscountValue
	}
	if discountType == DiscountPercentage && value > 100 {
		return nil, ErrInvalidDiscountPercent
	}
	if minOrderAmount < 0 {
		return nil, ErrInvalidMinOrderAmount
	}
	if maxDiscount != nil && *maxDiscount < 0 {
		return nil, ErrInvalidMaxDiscount
	}

	return ReconstructVoucher(id, voucherCode.String(), name, description, discountType, value, minOrderAmount, maxDiscount), nil
}

// ReconstructVoucher takes backend data as is. Malformed rules are tolerated here and
// make the voucher ineligible.
func ReconstructVoucher(
	id, code, name, description string,
	discountType DiscountType,
	value int64,
	minOrderAmount money.VND,
	maxDiscount *money.VND,
) *Voucher {
	var limit *money.VND
	if maxDiscount != nil {
		c := *maxDiscount
		limit = &c
	}
	return &Voucher{
		id:             id,
		code:           Code(code),
		name:           name,
		description:    description,
		discountType:   discountType,
		value:          value,
		minOrderAmount: minOrderAmount,
		maxDiscount:    limit,
	}
}

// IsWellFormed rejects unknown discount types and negative amounts.
func (v *Voucher) IsWellFormed() bool {
	if !v.discountType.IsValid() || v.value < 0 || v.minOrderAmount < 0 {
		return false
	}
	return v.maxDiscount == nil || *v.maxDiscount >= 0
}

func (v *Voucher) IsEligible(subtotal money.VND) bool {
	return v.IsWellFormed() && subtotal >= v.minOrderAmount
}

// DiscountFor returns the discount this voucher grants on subtotal, zero when ineligible.
// Percentages use integer division and are clamped to the maximum discount if one is set.
func (v *Voucher) DiscountFor(subtotal money.VND) money.VND {
	if !v.IsEligible(subtotal) {
		return 0
	}
	switch v.discountType {
	case DiscountPercentage:
		discount := money.VND(int64(subtotal) * v.value / 100)
		if v.maxDiscount != nil {
			discount = money.Min(discount, *v.maxDiscount)
		}
		return discount
	case DiscountFixed:
		return money.VND(v.value)
	default:
		return 0
	}
}

func (v *Voucher) ID() string                 { return v.id }
func (v *Voucher) Code() Code                 { return v.code }
func (v *Voucher) Name() string               { return v.name }
func (v *Voucher) Description() string        { return v.description }
func (v *Voucher) DiscountType() DiscountType { return v.discountType }
func (v *Voucher) Value() int64               { return v.value }
func (v *Voucher) MinOrderAmount() money.VND  { return v.minOrderAmount }

func (v *Voucher) MaxDiscount() *money.VND {
	if v.maxDiscount == nil {
		return nil
	}
	c := *v.maxDiscount
	return &c
}

// FindByCode returns the offered voucher whose code matches, ignoring case.
func FindByCode(catalog []*Voucher, code string) (*Voucher, error) {
	for _, v := range catalog {
		if v.code.Matches(code) {
			return v, nil
		}
	}
	return nil, ErrVoucherNotFound
}

// Snapshot is the persisted form of a Voucher.
type Snapshot struct {
	ID             string       `json:"id"`
	Code           string       `json:"code"`
	Name           string       `json:"name"`
	Description    string       `json:"description,omitempty"`
	DiscountType   DiscountType `json:"discountType"`
	Value          int64        `json:"value"`
	MinOrderAmount money.VND    `json:"minOrderAmount"`
	MaxDiscount    *money.VND   `json:"maxDiscount,omitempty"`
}

func (v *Voucher) Snapshot() Snapshot {
	return Snapshot{
		ID:             v.id,
		Code:           v.code.String(),
		Name:           v.name,
		Description:    v.description,
		DiscountType:   v.discountType,
		Value:          v.value,
		MinOrderAmount: v.minOrderAmount,
		MaxDiscount:    v.MaxDiscount(),
	}
}

func FromSnapshot(s Snapshot) *Voucher {
	return ReconstructVoucher(s.ID, s.Code, s.Name, s.Description, s.DiscountType, s.Value, s.MinOrderAmount, s.MaxDiscount)
}
