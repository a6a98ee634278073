package commands

import (
	"shuttlesync/internal/infra"
	"shuttlesync/internal/pkg/errs"
	"shuttlesync/internal/usecase/shared"
)

var (
	ErrDraftNotFound          = shared.ErrDraftNotFound
	ErrCourtNotFound          = errs.New("court not found")
	ErrServiceNotFound        = errs.New("service not found")
	ErrDateOutsideWeek        = errs.New("date is not part of the displayed week")
	ErrIdempotencyKeyRequired = errs.New("idempotency key required")
	ErrDuplicateSubmission    = errs.New("idempotency key reused with a different request")
	ErrSubmissionInProgress   = errs.New("submission in progress")
	ErrSlotTaken              = errs.New("slot is no longer available")
	ErrUpstreamUnauthorized   = shared.ErrUpstreamUnauthorized
	ErrUpstreamUnavailable    = shared.ErrUpstreamUnavailable
	ErrBookingRejected        = errs.New("backend rejected the booking")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
)

func upstreamErr(err error, notFound error) error {
	return shared.UpstreamErr(err, notFound)
}

func storeErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrDraftNotFound)
	}
	return err
}
