package shared

import (
	"context"
	"time"

	"shuttlesync/internal/domain/addon"
	"shuttlesync/internal/domain/availability"
	"shuttlesync/internal/domain/booking"
	"shuttlesync/internal/domain/court"
	"shuttlesync/internal/domain/voucher"
	"shuttlesync/internal/pkg/calendar"

	"github.com/google/uuid"
)

// CatalogGateway reads the backend catalog on behalf of the session.
type CatalogGateway interface {
	ListCourts(ctx context.Context, s Session) ([]*court.Court, error)
	GetCourt(ctx context.Context, s Session, courtID string) (*court.Court, error)
	ListServices(ctx context.Context, s Session) ([]*addon.Service, error)
	ListVouchers(ctx context.Context, s Session) ([]*voucher.Voucher, error)
}

type AvailabilityGateway interface {
	ListTimeSlots(ctx context.Context, s Session, courtID string, date calendar.Date) ([]availability.Listing, error)
}

type BookingGateway interface {
	CreateBooking(ctx context.Context, s Session, sub booking.Submission) (*booking.Confirmation, error)
}

// DraftStore keeps drafts between requests. Update runs fn as one atomic
// read-modify-write; returning an error from fn leaves the stored draft untouched.
type DraftStore interface {
	Create(ctx context.Context, d *booking.Draft) error
	Get(ctx context.Context, id uuid.UUID) (*booking.Draft, error)
	Update(ctx context.Context, id uuid.UUID, fn func(d *booking.Draft) error) (*booking.Draft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const (
	SubmissionProcessing = "processing"
	SubmissionCompleted  = "completed"
)

type SubmissionRecord struct {
	Key         uuid.UUID
	UserID      string
	DraftID     uuid.UUID
	Status      string
	RequestHash string
	BookingID   *string
	Result      *booking.Confirmation
	ExpiresAt   time.Time
}

// SubmissionLedger records submissions by idempotency key so a retried submit
// never creates a second booking.
type SubmissionLedger interface {
	// TryInsert claims key for the user and reports whether a new row was written.
	// An existing unexpired row is left as is.
	TryInsert(ctx context.Context, key uuid.UUID, userID string, draftID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key uuid.UUID, userID string) (*SubmissionRecord, error)
	Complete(ctx context.Context, key uuid.UUID, userID string, result booking.Confirmation) error
	// Release drops a processing row so the key can be retried with a different request.
	Release(ctx context.Context, key uuid.UUID, userID string) error
}

type BookingSubmittedEvent struct {
	BookingID   string    `json:"bookingId"`
	DraftID     uuid.UUID `json:"draftId"`
	UserID      string    `json:"userId"`
	CourtID     string    `json:"courtId"`
	SlotID      string    `json:"slotId"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	VoucherCode *string   `json:"voucherCode,omitempty"`
	TotalAmount int64     `json:"totalAmount"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurredAt"`
}

const TopicBookingSubmitted = "booking.submitted"

type EventPublisher interface {
	PublishBookingSubmitted(ctx context.Context, evt BookingSubmittedEvent) error
}
