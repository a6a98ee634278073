//go:build unit || e2e

package builder

import (
	domvoucher "shuttlesync/internal/domain/voucher"
	"shuttlesync/internal/pkg/money"

	"github.com/google/uuid"
)

type VoucherBuilder struct {
	ID             string
	Code           string
	Name           string
	Description    string
	DiscountType   domvoucher.DiscountType
	Value          int64
	MinOrderAmount money.VND
	MaxDiscount    *money.VND
}

func NewVoucherBuilder() *VoucherBuilder {
	return &VoucherBuilder{
		ID:             uuid.NewString(),
		Code:           "WELCOME10",
		Name:           "Welcome 10%",
		Description:    "10% off your first booking",
		DiscountType:   domvoucher.DiscountPercentage,
		Value:          10,
		MinOrderAmount: 200000,
		MaxDiscount:    moneyPtr(50000),
	}
}

func (v *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(v)
	return v
}

func (v *VoucherBuilder) WithCode(code string) *VoucherBuilder {
	v.Code = code
	return v
}

func (v *VoucherBuilder) WithPercentage(percent int64, maxDiscount *money.VND) *VoucherBuilder {
	v.DiscountType = domvoucher.DiscountPercentage
	v.Value = percent
	v.MaxDiscount = maxDiscount
	return v
}

func (v *VoucherBuilder) WithFixed(amount money.VND) *VoucherBuilder {
	v.DiscountType = domvoucher.DiscountFixed
	v.Value = amount.Int64()
	v.MaxDiscount = nil
	return v
}

func (v *VoucherBuilder) WithMinOrder(amount money.VND) *VoucherBuilder {
	v.MinOrderAmount = amount
	return v
}

// Build methods
func (v *VoucherBuilder) BuildDomain() *domvoucher.Voucher {
	return domvoucher.ReconstructVoucher(v.ID, v.Code, v.Name, v.Description, v.DiscountType, v.Value, v.MinOrderAmount, v.MaxDiscount)
}

func moneyPtr(v money.VND) *money.VND {
	return &v
}

// Welcome10 is PERCENTAGE 10, min 200,000, cap 50,000.
func Welcome10() *domvoucher.Voucher {
	return NewVoucherBuilder().BuildDomain()
}

// Weekend20 is PERCENTAGE 20, min 300,000.
func Weekend20() *domvoucher.Voucher {
	return NewVoucherBuilder().
		WithCode("WEEKEND20").
		WithPercentage(20, nil).
		WithMinOrder(300000).
		BuildDomain()
}

// Holiday50K is FIXED 50,000, min 150,000.
func Holiday50K() *domvoucher.Voucher {
	return NewVoucherBuilder().
		WithCode("HOLIDAY50K").
		WithFixed(50000).
		WithMinOrder(150000).
		BuildDomain()
}
