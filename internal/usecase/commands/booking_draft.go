package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"shuttlesync/internal/domain/addon"
	"shuttlesync/internal/domain/booking"
	"shuttlesync/internal/domain/pricing"
	"shuttlesync/internal/domain/slot"
	"shuttlesync/internal/infra"
	"shuttlesync/internal/pkg/calendar"
	"shuttlesync/internal/pkg/clock"
	"shuttlesync/internal/pkg/errs"
	"shuttlesync/internal/pkg/patch"
	"shuttlesync/internal/usecase/shared"

	"github.com/google/uuid"
)

const submissionTTL = 24 * time.Hour

type OpenDraftRequest struct {
	CourtID       string
	ReferenceDate *calendar.Date
}

type OpenDraftResult struct {
	DraftID uuid.UUID
}

type SelectSlotResult struct {
	Changed bool
}

type AdjustServiceResult struct {
	Quantity int
}

type SubmitResult struct {
	Confirmation booking.Confirmation
	IsReplayed   bool
}

type BookingCommands interface {
	OpenDraft(ctx context.Context, s shared.Session, req OpenDraftRequest) (*OpenDraftResult, error)
	NavigateWeek(ctx context.Context, s shared.Session, draftID uuid.UUID, direction booking.Direction) error
	ReloadDay(ctx context.Context, s shared.Session, draftID uuid.UUID, date calendar.Date) error
	SelectSlot(ctx context.Context, s shared.Session, draftID uuid.UUID, date calendar.Date, index int) (*SelectSlotResult, error)
	AdjustServiceQuantity(ctx context.Context, s shared.Session, draftID uuid.UUID, serviceID string, delta int) (*AdjustServiceResult, error)
	ApplyVoucher(ctx context.Context, s shared.Session, draftID uuid.UUID, code string) error
	RemoveVoucher(ctx context.Context, s shared.Session, draftID uuid.UUID) error
	SetNote(ctx context.Context, s shared.Session, draftID uuid.UUID, note string) error
	Submit(ctx context.Context, s shared.Session, draftID uuid.UUID, idempotencyKey uuid.UUID) (*SubmitResult, error)
	Discard(ctx context.Context, s shared.Session, draftID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	catalog   shared.CatalogGateway
	bookings  shared.BookingGateway
	store     shared.DraftStore
	ledger    shared.SubmissionLedger
	publisher shared.EventPublisher
	loader    *AvailabilityLoader
	calc      pricing.Calculator
	templates []slot.Template
	clock     clock.Clock
}

func NewBookingUseCase(
	catalog shared.CatalogGateway,
	bookings shared.BookingGateway,
	store shared.DraftStore,
	ledger shared.SubmissionLedger,
	publisher shared.EventPublisher,
	loader *AvailabilityLoader,
	calc pricing.Calculator,
	templates []slot.Template,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		catalog:   catalog,
		bookings:  bookings,
		store:     store,
		ledger:    ledger,
		publisher: publisher,
		loader:    loader,
		calc:      calc,
		templates: templates,
		clock:     clk,
	}
}

func (uc *bookingUseCaseImpl) OpenDraft(ctx context.Context, s shared.Session, req OpenDraftRequest) (*OpenDraftResult, error) {
	c, err := uc.catalog.GetCourt(ctx, s, req.CourtID)
	if err != nil {
		return nil, upstreamErr(err, ErrCourtNotFound)
	}

	ref := patch.CoalesceFunc(req.ReferenceDate, uc.clock.Today)
	d, err := booking.NewDraft(uuid.New(), s.UserID, c, ref, uc.templates, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.store.Create(ctx, d); err != nil {
		return nil, err
	}

	slog.Info("booking draft opened",
		"draft_id", d.ID(),
		"user_id", s.UserID,
		"court_id", c.ID(),
		"week_start", d.Grid().WeekStart().String())

	if err := uc.loader.Load(ctx, s, d.ID(), d.Grid().Tag(), d.Grid().PendingDates()); err != nil {
		return nil, err
	}
	return &OpenDraftResult{DraftID: d.ID()}, nil
}

func (uc *bookingUseCaseImpl) NavigateWeek(ctx context.Context, s shared.Session, draftID uuid.UUID, direction booking.Direction) error {
	d, err := uc.update(ctx, s, draftID, func(d *booking.Draft) error {
		return d.NavigateWeek(direction)
	})
	if err != nil {
		return err
	}
	return uc.loader.Load(ctx, s, draftID, d.Grid().Tag(), d.Grid().PendingDates())
}

func (uc *bookingUseCaseImpl) ReloadDay(ctx context.Context, s shared.Session, draftID uuid.UUID, date calendar.Date) error {
	reload := false
	d, err := uc.update(ctx, s, draftID, func(d *booking.Draft) error {
		if !d.Grid().HasDate(date) {
			return ErrDateOutsideWeek
		}
		reload = d.Grid().MarkDayPending(date)
		return nil
	})
	if err != nil || !reload {
		return err
	}
	return uc.loader.Load(ctx, s, draftID, d.Grid().Tag(), []calendar.Date{date})
}

func (uc *bookingUseCaseImpl) SelectSlot(ctx context.Context, s shared.Session, draftID uuid.UUID, date calendar.Date, index int) (*SelectSlotResult, error) {
	today := uc.clock.Today()
	changed := false
	_, err := uc.update(ctx, s, draftID, func(d *booking.Draft) error {
		changed = d.SelectSlot(date, index, today)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SelectSlotResult{Changed: changed}, nil
}

func (uc *bookingUseCaseImpl) AdjustServiceQuantity(ctx context.Context, s shared.Session, draftID uuid.UUID, serviceID string, delta int) (*AdjustServiceResult, error) {
	services, err := uc.catalog.ListServices(ctx, s)
	if err != nil {
		return nil, upstreamErr(err, nil)
	}
	svc, err := addon.FindService(services, serviceID)
	if err != nil {
		return nil, errs.Mark(err, ErrServiceNotFound)
	}

	quantity := 0
	_, err = uc.update(ctx, s, draftID, func(d *booking.Draft) error {
		var adjustErr error
		quantity, adjustErr = d.AdjustServiceQuantity(svc, delta)
		return adjustErr
	})
	if err != nil {
		return nil, err
	}
	return &AdjustServiceResult{Quantity: quantity}, nil
}

func (uc *bookingUseCaseImpl) ApplyVoucher(ctx context.Context, s shared.Session, draftID uuid.UUID, code string) error {
	catalog, err := uc.catalog.ListVouchers(ctx, s)
	if err != nil {
		return upstreamErr(err, nil)
	}
	_, err = uc.update(ctx, s, draftID, func(d *booking.Draft) error {
		_, applyErr := d.ApplyVoucher(uc.calc, catalog, code)
		return applyErr
	})
	return err
}

func (uc *bookingUseCaseImpl) RemoveVoucher(ctx context.Context, s shared.Session, draftID uuid.UUID) error {
	_, err := uc.update(ctx, s, draftID, func(d *booking.Draft) error {
		d.RemoveVoucher()
		return nil
	})
	return err
}

func (uc *bookingUseCaseImpl) SetNote(ctx context.Context, s shared.Session, draftID uuid.UUID, note string) error {
	n, err := booking.NewNote(note)
	if err != nil {
		return err
	}
	_, err = uc.update(ctx, s, draftID, func(d *booking.Draft) error {
		d.SetNote(n)
		return nil
	})
	return err
}

func (uc *bookingUseCaseImpl) Discard(ctx context.Context, s shared.Session, draftID uuid.UUID) error {
	if _, err := uc.get(ctx, s, draftID); err != nil {
		return err
	}
	if err := uc.store.Delete(ctx, draftID); err != nil {
		return storeErr(err)
	}
	return nil
}

func (uc *bookingUseCaseImpl) Submit(ctx context.Context, s shared.Session, draftID uuid.UUID, idempotencyKey uuid.UUID) (*SubmitResult, error) {
	if idempotencyKey == uuid.Nil {
		return nil, ErrIdempotencyKeyRequired
	}

	replayed, err := uc.checkExistingSubmission(ctx, s, draftID, idempotencyKey, "")
	if err != nil || replayed != nil {
		return replayed, err
	}

	d, err := uc.get(ctx, s, draftID)
	if err != nil {
		return nil, err
	}
	sub, err := d.Submission(uc.calc, uc.clock.Today())
	if err != nil {
		return nil, err
	}
	requestHash := calculateRequestHash(sub)

	inserted, err := uc.ledger.TryInsert(ctx, idempotencyKey, s.UserID, draftID, requestHash, uc.clock.Now().Add(submissionTTL))
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if !inserted {
		replayed, err = uc.checkExistingSubmission(ctx, s, draftID, idempotencyKey, requestHash)
		if err != nil || replayed != nil {
			return replayed, err
		}
		return nil, ErrSubmissionInProgress
	}

	confirmation, err := uc.bookings.CreateBooking(ctx, s, sub)
	if err != nil {
		if releaseErr := uc.ledger.Release(ctx, idempotencyKey, s.UserID); releaseErr != nil {
			slog.Error("failed to release submission key",
				"idempotency_key", idempotencyKey,
				"error", releaseErr)
		}
		return nil, uc.submissionErr(ctx, s, draftID, sub, err)
	}

	if err := uc.ledger.Complete(ctx, idempotencyKey, s.UserID, *confirmation); err != nil {
		// The booking exists upstream; a later replay reports in-progress until the key expires.
		slog.Error("failed to complete submission key",
			"idempotency_key", idempotencyKey,
			"booking_id", confirmation.BookingID,
			"error", err)
	}

	uc.publishSubmitted(ctx, s, sub, *confirmation)

	if err := uc.store.Delete(ctx, draftID); err != nil {
		slog.Warn("failed to delete submitted draft", "draft_id", draftID, "error", err)
	}

	slog.Info("booking submitted",
		"draft_id", draftID,
		"booking_id", confirmation.BookingID,
		"user_id", s.UserID,
		"total", sub.Total.Int64())

	return &SubmitResult{Confirmation: *confirmation}, nil
}

// checkExistingSubmission resolves a key that is already in the ledger. requestHash is
// compared only when known; otherwise the draft id decides whether the key was reused.
func (uc *bookingUseCaseImpl) checkExistingSubmission(
	ctx context.Context,
	s shared.Session,
	draftID, idempotencyKey uuid.UUID,
	requestHash string,
) (*SubmitResult, error) {
	existing, err := uc.ledger.Get(ctx, idempotencyKey, s.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	if existing.DraftID != draftID || (requestHash != "" && existing.RequestHash != requestHash) {
		return nil, ErrDuplicateSubmission
	}

	switch existing.Status {
	case shared.SubmissionCompleted:
		if existing.Result == nil {
			return nil, errs.New("completed submission missing booking result")
		}
		return &SubmitResult{Confirmation: *existing.Result, IsReplayed: true}, nil
	case shared.SubmissionProcessing:
		return nil, ErrSubmissionInProgress
	default:
		return nil, errs.Newf("invalid submission status %q", existing.Status)
	}
}

func (uc *bookingUseCaseImpl) submissionErr(ctx context.Context, s shared.Session, draftID uuid.UUID, sub booking.Submission, err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		uc.refreshDay(ctx, s, draftID, sub.Date)
		return errs.Mark(err, ErrSlotTaken)
	case infra.IsKind(err, infra.KindInvalid):
		return errs.Mark(err, ErrBookingRejected)
	default:
		return upstreamErr(err, nil)
	}
}

// refreshDay reloads the day of a slot the backend reported as taken.
func (uc *bookingUseCaseImpl) refreshDay(ctx context.Context, s shared.Session, draftID uuid.UUID, date calendar.Date) {
	if err := uc.ReloadDay(ctx, s, draftID, date); err != nil {
		slog.Warn("failed to refresh availability after conflict",
			"draft_id", draftID,
			"date", date.String(),
			"error", err)
	}
}

func (uc *bookingUseCaseImpl) publishSubmitted(ctx context.Context, s shared.Session, sub booking.Submission, conf booking.Confirmation) {
	evt := shared.BookingSubmittedEvent{
		BookingID:   conf.BookingID,
		DraftID:     sub.DraftID,
		UserID:      s.UserID,
		CourtID:     sub.CourtID,
		SlotID:      sub.SlotID,
		Date:        sub.Date.String(),
		StartTime:   sub.StartTime.String(),
		EndTime:     sub.EndTime.String(),
		VoucherCode: sub.VoucherCode,
		TotalAmount: conf.TotalAmount.Int64(),
		Status:      conf.Status.String(),
		OccurredAt:  uc.clock.Now(),
	}
	if err := uc.publisher.PublishBookingSubmitted(ctx, evt); err != nil {
		slog.Error("failed to publish booking event",
			"booking_id", conf.BookingID,
			"topic", shared.TopicBookingSubmitted,
			"error", err)
	}
}

func (uc *bookingUseCaseImpl) get(ctx context.Context, s shared.Session, draftID uuid.UUID) (*booking.Draft, error) {
	d, err := uc.store.Get(ctx, draftID)
	if err != nil {
		return nil, storeErr(err)
	}
	if !d.IsOwnedBy(s.UserID) {
		return nil, ErrDraftNotFound
	}
	return d, nil
}

// update applies fn to a draft the session owns and stamps the modification time.
func (uc *bookingUseCaseImpl) update(ctx context.Context, s shared.Session, draftID uuid.UUID, fn func(d *booking.Draft) error) (*booking.Draft, error) {
	d, err := uc.store.Update(ctx, draftID, func(d *booking.Draft) error {
		if !d.IsOwnedBy(s.UserID) {
			return ErrDraftNotFound
		}
		if err := fn(d); err != nil {
			return err
		}
		d.Touch(uc.clock.Now())
		return nil
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return d, nil
}

func calculateRequestHash(sub booking.Submission) string {
	data, _ := json.Marshal(sub)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
