package commands

import (
	"context"
	"log/slog"

	"shuttlesync/internal/domain/availability"
	"shuttlesync/internal/domain/booking"
	"shuttlesync/internal/infra"
	"shuttlesync/internal/pkg/calendar"
	"shuttlesync/internal/pkg/errs"
	"shuttlesync/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const defaultLoadConcurrency = availability.DaysPerWeek

// AvailabilityLoader fetches per-day availability concurrently and applies each day
// in its own store update, dropping results whose FetchTag the draft no longer shows.
type AvailabilityLoader struct {
	gateway     shared.AvailabilityGateway
	store       shared.DraftStore
	concurrency int
}

func NewAvailabilityLoader(gateway shared.AvailabilityGateway, store shared.DraftStore) *AvailabilityLoader {
	return &AvailabilityLoader{
		gateway:     gateway,
		store:       store,
		concurrency: defaultLoadConcurrency,
	}
}

// Load fetches the given days. A failed day becomes failed cells; only an upstream
// authentication failure or a store failure is returned.
func (l *AvailabilityLoader) Load(ctx context.Context, s shared.Session, draftID uuid.UUID, tag availability.FetchTag, dates []calendar.Date) error {
	if len(dates) == 0 {
		return nil
	}

	var g errgroup.Group
	g.SetLimit(l.concurrency)

	for _, date := range dates {
		g.Go(func() error {
			return l.loadDay(ctx, s, draftID, tag, date)
		})
	}

	return g.Wait()
}

func (l *AvailabilityLoader) loadDay(ctx context.Context, s shared.Session, draftID uuid.UUID, tag availability.FetchTag, date calendar.Date) error {
	listings, fetchErr := l.gateway.ListTimeSlots(ctx, s, tag.CourtID, date)
	if fetchErr != nil && infra.IsKind(fetchErr, infra.KindUnauthorized) {
		return errs.Mark(fetchErr, ErrUpstreamUnauthorized)
	}

	applied := false
	_, err := l.store.Update(ctx, draftID, func(d *booking.Draft) error {
		if fetchErr != nil {
			applied = d.FailDay(tag, date, failureReason(fetchErr))
			return nil
		}
		applied = d.ApplyDay(tag, date, listings)
		return nil
	})
	if err != nil {
		return storeErr(err)
	}

	switch {
	case !applied:
		slog.Debug("discarding stale availability",
			"draft_id", draftID,
			"tag", tag.String(),
			"date", date.String())
	case fetchErr != nil:
		slog.Warn("availability fetch failed",
			"draft_id", draftID,
			"court_id", tag.CourtID,
			"date", date.String(),
			"error", fetchErr)
	}
	return nil
}

func failureReason(err error) string {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return "court has no schedule for this day"
	case errs.Is(err, context.DeadlineExceeded):
		return "availability request timed out"
	default:
		return "availability could not be loaded"
	}
}
