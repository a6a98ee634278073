package pricing

import (
	"shuttlesync/internal/domain/addon"
	"shuttlesync/internal/domain/slot"
	"shuttlesync/internal/domain/voucher"
	"shuttlesync/internal/pkg/money"
)

// OrderSummary is the priced state of a draft. Total is never negative.
type OrderSummary struct {
	Subtotal        money.VND
	Discount        money.VND
	Total           money.VND
	VoucherApplied  bool
	VoucherEligible bool
}

type Calculator interface {
	ComputeSubtotal(selected *slot.BookingSlot, lines []addon.Line) money.VND
	ComputeDiscount(subtotal money.VND, v *voucher.Voucher) money.VND
	ComputeTotal(subtotal, discount money.VND) money.VND
	Summarize(selected *slot.BookingSlot, lines []addon.Line, v *voucher.Voucher) OrderSummary
	ApplyVoucher(catalog []*voucher.Voucher, code string, subtotal money.VND) (*voucher.Voucher, error)
}

type DefaultCalculator struct{}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{}
}

// ComputeSubtotal is the selected slot's price plus every service line. No slot counts as zero.
func (DefaultCalculator) ComputeSubtotal(selected *slot.BookingSlot, lines []addon.Line) money.VND {
	var subtotal money.VND
	if selected != nil {
		subtotal = subtotal.Add(selected.Price())
	}
	for _, l := range lines {
		if l.Quantity() > 0 {
			subtotal = subtotal.Add(l.Amount())
		}
	}
	return subtotal
}

func (DefaultCalculator) ComputeDiscount(subtotal money.VND, v *voucher.Voucher) money.VND {
	if v == nil {
		return 0
	}
	return v.DiscountFor(subtotal)
}

func (DefaultCalculator) ComputeTotal(subtotal, discount money.VND) money.VND {
	return money.Max(0, subtotal-discount)
}

func (c DefaultCalculator) Summarize(selected *slot.BookingSlot, lines []addon.Line, v *voucher.Voucher) OrderSummary {
	subtotal := c.ComputeSubtotal(selected, lines)
	discount := c.ComputeDiscount(subtotal, v)
	return OrderSummary{
		Subtotal:        subtotal,
		Discount:        discount,
		Total:           c.ComputeTotal(subtotal, discount),
		VoucherApplied:  v != nil,
		VoucherEligible: v != nil && v.IsEligible(subtotal),
	}
}

// ApplyVoucher resolves code against the offered vouchers and checks it against subtotal.
func (DefaultCalculator) ApplyVoucher(catalog []*voucher.Voucher, code string, subtotal money.VND) (*voucher.Voucher, error) {
	v, err := voucher.FindByCode(catalog, code)
	if err != nil {
		return nil, err
	}
	if !v.IsEligible(subtotal) {
		return nil, voucher.ErrVoucherIneligible
	}
	return v, nil
}
