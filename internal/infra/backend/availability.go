package backend

import (
	"context"
	"net/http"
	"net/url"

	"shuttlesync/internal/domain/availability"
	"shuttlesync/internal/domain/slot"
	"shuttlesync/internal/pkg/calendar"
	"shuttlesync/internal/usecase/shared"
)

type AvailabilityGateway struct {
	client *Client
}

func NewAvailabilityGateway(client *Client) *AvailabilityGateway {
	return &AvailabilityGateway{client: client}
}

func (g *AvailabilityGateway) ListTimeSlots(ctx context.Context, s shared.Session, courtID string, date calendar.Date) ([]availability.Listing, error) {
	var rows []timeSlotModel
	query := url.Values{"date": []string{date.String()}}
	path := "/courts/" + url.PathEscape(courtID) + "/timeslots"
	if err := g.client.do(ctx, s, http.MethodGet, path, query, nil, &rows); err != nil {
		return nil, err
	}

	listings := make([]availability.Listing, 0, len(rows))
	for _, row := range rows {
		listing := availability.Listing{
			SlotID: row.ID,
			Start:  row.StartTime,
			End:    row.EndTime,
			Price:  -1,
			Status: slot.ParseListingStatus(row.Status),
		}
		if row.Price != nil {
			listing.Price = *row.Price
		}
		listings = append(listings, listing)
	}
	return listings, nil
}
