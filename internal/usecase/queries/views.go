package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models returned to the HTTP layer. Money is whole đồng.

type CourtView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Operational bool   `json:"operational"`
}

type ServiceView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   int64  `json:"unitPrice"`
	Category    string `json:"category"`
}

type ServiceCategoryView struct {
	Category string         `json:"category"`
	Services []*ServiceView `json:"services"`
}

type VoucherView struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	DiscountType   string `json:"discountType"`
	Value          int64  `json:"value"`
	MinOrderAmount int64  `json:"minOrderAmount"`
	MaxDiscount    *int64 `json:"maxDiscount,omitempty"`
	WellFormed     bool   `json:"wellFormed"`
}

type SlotView struct {
	Index      int    `json:"index"`
	SlotID     string `json:"slotId,omitempty"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Price      int64  `json:"price"`
	Status     string `json:"status"`
	Disabled   bool   `json:"disabled"`
	Selectable bool   `json:"selectable"`
}

type DayView struct {
	Date    string      `json:"date"`
	Weekday string      `json:"weekday"`
	State   string      `json:"state"`
	Failure string      `json:"failure,omitempty"`
	IsPast  bool        `json:"isPast"`
	Slots   []*SlotView `json:"slots"`
}

type ServiceLineView struct {
	ServiceID string `json:"serviceId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Amount    int64  `json:"amount"`
}

type AppliedVoucherView struct {
	VoucherView
	Eligible bool `json:"eligible"`
}

type SummaryView struct {
	Subtotal          int64  `json:"subtotal"`
	Discount          int64  `json:"discount"`
	Total             int64  `json:"total"`
	SubtotalFormatted string `json:"subtotalFormatted"`
	DiscountFormatted string `json:"discountFormatted"`
	TotalFormatted    string `json:"totalFormatted"`
}

type DraftView struct {
	ID            uuid.UUID           `json:"id"`
	Court         CourtView           `json:"court"`
	ReferenceDate string              `json:"referenceDate"`
	WeekStart     string              `json:"weekStart"`
	Today         string              `json:"today"`
	Days          []*DayView          `json:"days"`
	Selected      *SlotView           `json:"selected,omitempty"`
	Services      []*ServiceLineView  `json:"services"`
	Voucher       *AppliedVoucherView `json:"voucher,omitempty"`
	Note          string              `json:"note"`
	Summary       SummaryView         `json:"summary"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}
