package booking

import (
	"errors"
	"time"

	"shuttlesync/internal/domain/addon"
	"shuttlesync/internal/domain/availability"
	"shuttlesync/internal/domain/court"
	"shuttlesync/internal/domain/pricing"
	"shuttlesync/internal/domain/slot"
	"shuttlesync/internal/domain/voucher"
	"shuttlesync/internal/pkg/calendar"
	"shuttlesync/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyUserID       = errors.New("draft owner cannot be empty")
	ErrInvalidDirection  = errors.New("direction must be next or previous")
	ErrInvalidReference  = errors.New("reference date is required")
	ErrNoSlotSelected    = errors.New("no slot selected")
	ErrSlotNotIdentified = errors.New("selected slot has no backend id")
	ErrDraftNotOwned     = errors.New("draft belongs to another user")
	ErrSlotInPast        = errors.New("selected slot is in the past")
)

// Draft is one in-progress booking: a court's weekly grid with at most one selected slot,
// the chosen services, an optional voucher and a note.
type Draft struct {
	id            uuid.UUID
	userID        string
	court         *court.Court
	referenceDate calendar.Date
	templates     []slot.Template
	grid          *availability.Grid
	cart          *addon.Cart
	voucher       *voucher.Voucher
	note          Note
	createdAt     time.Time
	updatedAt     time.Time
}

func NewDraft(
	id uuid.UUID,
	userID string,
	c *court.Court,
	referenceDate calendar.Date,
	templates []slot.Template,
	now time.Time,
) (*Draft, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if referenceDate.IsZero() {
		return nil, ErrInvalidReference
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Draft{
		id:            id,
		userID:        userID,
		court:         c,
		referenceDate: referenceDate,
		templates:     append([]slot.Template(nil), templates...),
		grid:          availability.BuildWeek(c, referenceDate, templates),
		cart:          addon.NewCart(),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func (d *Draft) ID() uuid.UUID                { return d.id }
func (d *Draft) UserID() string               { return d.userID }
func (d *Draft) Court() *court.Court          { return d.court }
func (d *Draft) ReferenceDate() calendar.Date { return d.referenceDate }
func (d *Draft) Grid() *availability.Grid     { return d.grid }
func (d *Draft) Lines() []addon.Line          { return d.cart.Lines() }
func (d *Draft) Voucher() *voucher.Voucher    { return d.voucher }
func (d *Draft) Note() Note                   { return d.note }
func (d *Draft) CreatedAt() time.Time         { return d.createdAt }
func (d *Draft) UpdatedAt() time.Time         { return d.updatedAt }

func (d *Draft) IsOwnedBy(userID string) bool {
	return d.userID == userID
}

func (d *Draft) Touch(now time.Time) {
	d.updatedAt = now
}

// NavigateWeek moves the reference date by one week and regenerates the grid.
// The current selection is always dropped.
func (d *Draft) NavigateWeek(direction Direction) error {
	if !direction.IsValid() {
		return ErrInvalidDirection
	}
	d.grid.ClearSelection()
	d.referenceDate = d.referenceDate.AddDays(direction.days())
	d.grid = availability.BuildWeek(d.court, d.referenceDate, d.templates)
	return nil
}

func (d *Draft) ApplyDay(tag availability.FetchTag, date calendar.Date, listings []availability.Listing) bool {
	return d.grid.ApplyDay(tag, date, listings)
}

func (d *Draft) FailDay(tag availability.FetchTag, date calendar.Date, reason string) bool {
	return d.grid.FailDay(tag, date, reason)
}

func (d *Draft) SelectSlot(date calendar.Date, index int, today calendar.Date) bool {
	return d.grid.SelectSlot(date, index, today)
}

func (d *Draft) SelectedSlot() *slot.BookingSlot {
	s, ok := d.grid.Selected()
	if !ok {
		return nil
	}
	return &s
}

func (d *Draft) AdjustServiceQuantity(svc *addon.Service, delta int) (int, error) {
	return d.cart.AdjustQuantity(svc, delta)
}

// ApplyVoucher replaces the applied voucher. On error the draft is unchanged.
func (d *Draft) ApplyVoucher(calc pricing.Calculator, catalog []*voucher.Voucher, code string) (*voucher.Voucher, error) {
	subtotal := calc.ComputeSubtotal(d.SelectedSlot(), d.cart.Lines())
	v, err := calc.ApplyVoucher(catalog, code, subtotal)
	if err != nil {
		return nil, err
	}
	d.voucher = v
	return v, nil
}

func (d *Draft) RemoveVoucher() {
	d.voucher = nil
}

func (d *Draft) SetNote(note Note) {
	d.note = note
}

func (d *Draft) Summary(calc pricing.Calculator) pricing.OrderSummary {
	return calc.Summarize(d.SelectedSlot(), d.cart.Lines(), d.voucher)
}

type SubmissionLine struct {
	ServiceID string `json:"serviceId"`
	Quantity  int    `json:"quantity"`
}

// Submission is what gets sent to the backend to create the booking.
type Submission struct {
	DraftID     uuid.UUID          `json:"draftId"`
	CourtID     string             `json:"courtId"`
	SlotID      string             `json:"slotId"`
	Date        calendar.Date      `json:"date"`
	StartTime   calendar.TimeOfDay `json:"startTime"`
	EndTime     calendar.TimeOfDay `json:"endTime"`
	Services    []SubmissionLine   `json:"services"`
	VoucherCode *string            `json:"voucherCode,omitempty"`
	Note        string             `json:"notes"`
	Total       money.VND          `json:"total"`
}

// Submission builds the create-booking request. The voucher code is only included while
// the voucher is eligible for the current subtotal. A selection dated before today is refused.
func (d *Draft) Submission(calc pricing.Calculator, today calendar.Date) (Submission, error) {
	selected := d.SelectedSlot()
	if selected == nil {
		return Submission{}, ErrNoSlotSelected
	}
	if selected.IsDisabled(today) {
		return Submission{}, ErrSlotInPast
	}
	if selected.SlotID() == "" {
		return Submission{}, ErrSlotNotIdentified
	}

	summary := d.Summary(calc)
	sub := Submission{
		DraftID:   d.id,
		CourtID:   d.court.ID(),
		SlotID:    selected.SlotID(),
		Date:      selected.Date(),
		StartTime: selected.Start(),
		EndTime:   selected.End(),
		Services:  make([]SubmissionLine, 0, len(d.cart.Lines())),
		Note:      d.note.String(),
		Total:     summary.Total,
	}
	for _, l := range d.cart.Lines() {
		sub.Services = append(sub.Services, SubmissionLine{ServiceID: l.Service().ID(), Quantity: l.Quantity()})
	}
	if summary.VoucherEligible {
		code := d.voucher.Code().String()
		sub.VoucherCode = &code
	}
	return sub, nil
}

// Confirmation is the backend's answer to a booking submission.
type Confirmation struct {
	BookingID   string    `json:"bookingId"`
	Status      Status    `json:"status"`
	TotalAmount money.VND `json:"totalAmount"`
}
