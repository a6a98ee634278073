package backend

import (
	"shuttlesync/internal/domain/booking"
	"shuttlesync/internal/pkg/calendar"
	"shuttlesync/internal/pkg/money"
)

type courtModel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type serviceModel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       money.VND `json:"price"`
	Category    string    `json:"category"`
}

type voucherModel struct {
	ID             string     `json:"id"`
	Code           string     `json:"code"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	DiscountType   string     `json:"discountType"`
	DiscountValue  int64      `json:"discountValue"`
	MinOrderAmount money.VND  `json:"minOrderAmount"`
	MaxDiscount    *money.VND `json:"maxDiscount"`
}

type timeSlotModel struct {
	ID        string             `json:"id"`
	StartTime calendar.TimeOfDay `json:"startTime"`
	EndTime   calendar.TimeOfDay `json:"endTime"`
	Price     *money.VND         `json:"price"`
	Status    string             `json:"status"`
}

type bookingRequest struct {
	CourtID     string                   `json:"courtId"`
	SlotID      string                   `json:"slotId"`
	Date        calendar.Date            `json:"date"`
	StartTime   calendar.TimeOfDay       `json:"startTime"`
	EndTime     calendar.TimeOfDay       `json:"endTime"`
	Services    []booking.SubmissionLine `json:"services"`
	VoucherCode *string                  `json:"voucherCode,omitempty"`
	Notes       string                   `json:"notes"`
}

type bookingResponse struct {
	ID          string         `json:"id"`
	Status      booking.Status `json:"status"`
	TotalAmount money.VND      `json:"totalAmount"`
}
