package response

import (
	"log/slog"

	"shuttlesync/internal/usecase/commands"
	"shuttlesync/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SlotResponse struct {
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

type DayResponse struct {
	Date    string          `json:"date"`
	Weekday string          `json:"weekday"`
	State   string          `json:"state"`
	Failure string          `json:"failure,omitempty"`
	IsPast  bool            `json:"isPast"`
	Slots   []*SlotResponse `json:"slots"`
}

type ServiceLineResponse struct {
	ServiceID string `json:"serviceId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Amount    int64  `json:"amount"`
}

type AppliedVoucherResponse struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	DiscountType   string `json:"discountType"`
	Value          int64  `json:"value"`
	MinOrderAmount int64  `json:"minOrderAmount"`
	MaxDiscount    *int64 `json:"maxDiscount,omitempty"`
	Eligible       bool   `json:"eligible"`
}

type SummaryResponse struct {
	Subtotal          int64  `json:"subtotal"`
	Discount          int64  `json:"discount"`
	Total             int64  `json:"total"`
	SubtotalFormatted string `json:"subtotalFormatted"`
	DiscountFormatted string `json:"discountFormatted"`
	TotalFormatted    string `json:"totalFormatted"`
}

type DraftResponse struct {
	ID            string                  `json:"id" copier:"-"`
	Court         CourtResponse           `json:"court"`
	ReferenceDate string                  `json:"referenceDate"`
	WeekStart     string                  `json:"weekStart"`
	Today         string                  `json:"today"`
	Days          []*DayResponse          `json:"days"`
	Selected      *SlotResponse           `json:"selected,omitempty"`
	Services      []*ServiceLineResponse  `json:"services"`
	Voucher       *AppliedVoucherResponse `json:"voucher,omitempty"`
	Note          string                  `json:"note"`
	Summary       SummaryResponse         `json:"summary"`
	CreatedAt     int64                   `json:"createdAt" copier:"-"`
	UpdatedAt     int64                   `json:"updatedAt" copier:"-"`
}

type SelectSlotResponse struct {
	SelectionChanged bool           `json:"selectionChanged"`
	Draft            *DraftResponse `json:"draft"`
}

type AdjustServiceResponse struct {
	ServiceID string         `json:"serviceId"`
	Quantity  int            `json:"quantity"`
	Draft     *DraftResponse `json:"draft"`
}

type SubmitResponse struct {
	BookingID      string `json:"bookingId"`
	Status         string `json:"status"`
	TotalAmount    int64  `json:"totalAmount"`
	TotalFormatted string `json:"totalFormatted"`
	Replayed       bool   `json:"replayed"`
}

func FromDraftView(v *queries.DraftView) *DraftResponse {
	resp := &DraftResponse{}
	if err := copier.CopyWithOption(resp, v, copier.Option{DeepCopy: true}); err != nil {
		slog.Error("failed to map draft view", "draft_id", v.ID, "error", err)
	}
	resp.ID = v.ID.String()
	resp.CreatedAt = v.CreatedAt.Unix()
	resp.UpdatedAt = v.UpdatedAt.Unix()
	if resp.Days == nil {
		resp.Days = []*DayResponse{}
	}
	if resp.Services == nil {
		resp.Services = []*ServiceLineResponse{}
	}
	return resp
}

func FromSubmitResult(r *commands.SubmitResult) *SubmitResponse {
	return &SubmitResponse{
		BookingID:      r.Confirmation.BookingID,
		Status:         r.Confirmation.Status.String(),
		TotalAmount:    r.Confirmation.TotalAmount.Int64(),
		TotalFormatted: r.Confirmation.TotalAmount.Format(),
		Replayed:       r.IsReplayed,
	}
}
