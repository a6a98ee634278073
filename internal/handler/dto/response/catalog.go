package response

import (
	"log/slog"

	"shuttlesync/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CourtResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Operational bool   `json:"operational"`
}

type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   int64  `json:"unitPrice"`
	Category    string `json:"category"`
}

type ServiceCategoryResponse struct {
	Category string             `json:"category"`
	Services []*ServiceResponse `json:"services"`
}

type VoucherResponse struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	DiscountType   string `json:"discountType"`
	Value          int64  `json:"value"`
	MinOrderAmount int64  `json:"minOrderAmount"`
	MaxDiscount    *int64 `json:"maxDiscount,omitempty"`
}

func FromCourtViews(items []*queries.CourtView) []*CourtResponse {
	return copyList[CourtResponse](items)
}

func FromServiceCategoryViews(items []*queries.ServiceCategoryView) []*ServiceCategoryResponse {
	return copyList[ServiceCategoryResponse](items)
}

// FromVoucherViews lists only vouchers the calculator can apply.
func FromVoucherViews(items []*queries.VoucherView) []*VoucherResponse {
	usable := make([]*queries.VoucherView, 0, len(items))
	for _, v := range items {
		if v.WellFormed {
			usable = append(usable, v)
		}
	}
	return copyList[VoucherResponse](usable)
}

func copyList[T any, S any](items []S) []*T {
	res := make([]*T, 0, len(items))
	if err := copier.CopyWithOption(&res, items, copier.Option{DeepCopy: true}); err != nil {
		slog.Error("failed to map catalog views", "error", err)
	}
	return res
}
