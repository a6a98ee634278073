package backend

import (
	"context"
	"net/http"

	"shuttlesync/internal/domain/booking"
	"shuttlesync/internal/infra"
	"shuttlesync/internal/usecase/shared"
)

type BookingGateway struct {
	client *Client
}

func NewBookingGateway(client *Client) *BookingGateway {
	return &BookingGateway{client: client}
}

// CreateBooking posts the submission. The backend recomputes the total; the
// returned amount is authoritative.
func (g *BookingGateway) CreateBooking(ctx context.Context, s shared.Session, sub booking.Submission) (*booking.Confirmation, error) {
	services := sub.Services
	if services == nil {
		services = []booking.SubmissionLine{}
	}
	req := bookingRequest{
		CourtID:     sub.CourtID,
		SlotID:      sub.SlotID,
		Date:        sub.Date,
		StartTime:   sub.StartTime,
		EndTime:     sub.EndTime,
		Services:    services,
		VoucherCode: sub.VoucherCode,
		Notes:       sub.Note,
	}

	var resp bookingResponse
	if err := g.client.do(ctx, s, http.MethodPost, "/bookings", nil, req, &resp); err != nil {
		return nil, err
	}
	if resp.ID == "" {
		return nil, infra.WrapRepoErr("backend booking response has no id", nil, infra.KindUpstreamFailure)
	}

	return &booking.Confirmation{
		BookingID:   resp.ID,
		Status:      resp.Status,
		TotalAmount: resp.TotalAmount,
	}, nil
}
