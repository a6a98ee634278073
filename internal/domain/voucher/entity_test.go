//go:build unit

package voucher_test

import (
	"testing"

	"shuttlesync/internal/domain/voucher"
	"shuttlesync/internal/pkg/money"
	"shuttlesync/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVoucher(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		v, err := voucher.NewVoucher("v1", " WELCOME10 ", "Welcome", "", voucher.DiscountPercentage, 10, 0, ptr.Of(money.VND(50000)))
		require.NoError(t, err)

		assert.Equal(t, voucher.Code("WELCOME10"), v.Code())
		assert.Equal(t, int64(10), v.Value())
		require.NotNil(t, v.MaxDiscount())
		assert.Equal(t, money.VND(50000), *v.MaxDiscount())
		assert.True(t, v.IsWellFormed())
	})

	tests := []struct {
		name         string
		code         string
		discountType voucher.DiscountType
		value        int64
		minOrder     money.VND
		maxDiscount  *money.VND
		errIs        error
	}{
		{name: "empty code", code: "  ", discountType: voucher.DiscountFixed, errIs: voucher.ErrInvalidVoucherCode},
		{name: "unknown type", code: "X", discountType: "BOGO", errIs: voucher.ErrInvalidDiscountType},
		{name: "negative value", code: "X", discountType: voucher.DiscountFixed, value: -1, errIs: voucher.ErrInvalidDiscountValue},
		{name: "percent above 100", code: "X", discountType: voucher.DiscountPercentage, value: 101, errIs: voucher.ErrInvalidDiscountPercent},
		{name: "negative minimum", code: "X", discountType: voucher.DiscountFixed, minOrder: -1, errIs: voucher.ErrInvalidMinOrderAmount},
		{name: "negative cap", code: "X", discountType: voucher.DiscountPercentage, maxDiscount: ptr.Of(money.VND(-1)), errIs: voucher.ErrInvalidMaxDiscount},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := voucher.NewVoucher("v", tc.code, "", "", tc.discountType, tc.value, tc.minOrder, tc.maxDiscount)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestDiscountFor(t *testing.T) {
	tests := []struct {
		name     string
		voucher  *voucher.Voucher
		subtotal money.VND
		want     money.VND
	}{
		{
			name:     "percentage uses integer division",
			voucher:  voucher.ReconstructVoucher("v", "P", "", "", voucher.DiscountPercentage, 15, 0, nil),
			subtotal: 99999,
			want:     14999,
		},
		{
			name:     "percentage clamped to cap",
			voucher:  voucher.ReconstructVoucher("v", "P", "", "", voucher.DiscountPercentage, 50, 0, ptr.Of(money.VND(100000))),
			subtotal: 1000000,
			want:     100000,
		},
		{
			name:     "fixed ignores cap",
			voucher:  voucher.ReconstructVoucher("v", "F", "", "", voucher.DiscountFixed, 50000, 0, ptr.Of(money.VND(10000))),
			subtotal: 200000,
			want:     50000,
		},
		{
			name:     "minimum is inclusive",
			voucher:  voucher.ReconstructVoucher("v", "F", "", "", voucher.DiscountFixed, 50000, 200000, nil),
			subtotal: 200000,
			want:     50000,
		},
		{
			name:     "below minimum",
			voucher:  voucher.ReconstructVoucher("v", "F", "", "", voucher.DiscountFixed, 50000, 200000, nil),
			subtotal: 199999,
			want:     0,
		},
		{
			name:     "unknown type fails closed",
			voucher:  voucher.ReconstructVoucher("v", "U", "", "", "BOGO", 50, 0, nil),
			subtotal: 200000,
			want:     0,
		},
		{
			name:     "negative value fails closed",
			voucher:  voucher.ReconstructVoucher("v", "N", "", "", voucher.DiscountFixed, -5000, 0, nil),
			subtotal: 200000,
			want:     0,
		},
		{
			name:     "negative cap fails closed",
			voucher:  voucher.ReconstructVoucher("v", "N", "", "", voucher.DiscountPercentage, 10, 0, ptr.Of(money.VND(-1))),
			subtotal: 200000,
			want:     0,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.voucher.DiscountFor(tc.subtotal))
		})
	}
}

func TestFindByCode(t *testing.T) {
	catalog := []*voucher.Voucher{
		voucher.ReconstructVoucher("v1", "WELCOME10", "", "", voucher.DiscountPercentage, 10, 0, nil),
		voucher.ReconstructVoucher("v2", "HOLIDAY50K", "", "", voucher.DiscountFixed, 50000, 500000, nil),
	}

	v, err := voucher.FindByCode(catalog, " welcome10 ")
	require.NoError(t, err)
	assert.Equal(t, "v1", v.ID())

	_, err = voucher.FindByCode(catalog, "WELCOME")
	assert.ErrorIs(t, err, voucher.ErrVoucherNotFound)
	_, err = voucher.FindByCode(catalog, "")
	assert.ErrorIs(t, err, voucher.ErrVoucherNotFound)
}

func TestParseDiscountType(t *testing.T) {
	assert.Equal(t, voucher.DiscountPercentage, voucher.ParseDiscountType("percentage"))
	assert.Equal(t, voucher.DiscountFixed, voucher.ParseDiscountType(" FIXED "))
	assert.False(t, voucher.ParseDiscountType("free_hour").IsValid())
}

func TestSnapshot(t *testing.T) {
	v := voucher.ReconstructVoucher("v1", "WELCOME10", "Welcome", "first booking", voucher.DiscountPercentage, 10, 100000, ptr.Of(money.VND(30000)))
	assert.Equal(t, v.Snapshot(), voucher.FromSnapshot(v.Snapshot()).Snapshot())
}
