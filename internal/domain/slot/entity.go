package slot

import (
	"errors"

	"shuttlesync/internal/pkg/calendar"
	"shuttlesync/internal/pkg/money"
)

var (
	ErrInvalidStatus   = errors.New("invalid slot status")
	ErrNegativePrice   = errors.New("slot price cannot be negative")
	ErrInvalidSnapshot = errors.New("invalid slot snapshot")
)

// BookingSlot is one cell of the weekly grid: a template on a concrete date.
// It is a value; transitions return a modified copy.
type BookingSlot struct {
	courtID  string
	date     calendar.Date
	template Template
	slotID   string
	price    money.VND
	status   Status
}

func NewPendingSlot(courtID string, date calendar.Date, template Template) BookingSlot {
	return BookingSlot{
		courtID:  courtID,
		date:     date,
		template: template,
		price:    template.basePrice,
		status:   StatusPending,
	}
}

func (s BookingSlot) CourtID() string           { return s.courtID }
func (s BookingSlot) Date() calendar.Date       { return s.date }
func (s BookingSlot) Template() Template        { return s.template }
func (s BookingSlot) Index() int                { return s.template.index }
func (s BookingSlot) Start() calendar.TimeOfDay { return s.template.start }
func (s BookingSlot) End() calendar.TimeOfDay   { return s.template.end }
func (s BookingSlot) SlotID() string            { return s.slotID }
func (s BookingSlot) Price() money.VND          { return s.price }
func (s BookingSlot) Status() Status            { return s.status }

// IsDisabled reports whether the slot lies strictly before today.
func (s BookingSlot) IsDisabled(today calendar.Date) bool {
	return s.date.Before(today)
}

func (s BookingSlot) IsSelectable(today calendar.Date) bool {
	return s.status.IsSelectable() && !s.IsDisabled(today)
}

func (s BookingSlot) WithStatus(status Status) BookingSlot {
	s.status = status
	return s
}

// WithListing fills the slot from backend data. Negative prices fall back to the template price.
func (s BookingSlot) WithListing(slotID string, price money.VND, status Status) BookingSlot {
	s.slotID = slotID
	if price >= 0 {
		s.price = price
	}
	s.status = status
	return s
}

// Unlisted marks a template the backend did not offer for this date.
func (s BookingSlot) Unlisted() BookingSlot {
	s.slotID = ""
	s.price = s.template.basePrice
	s.status = StatusUnavailable
	return s
}

// Snapshot is the persisted form of a BookingSlot.
type Snapshot struct {
	CourtID   string             `json:"courtId"`
	Date      calendar.Date      `json:"date"`
	Index     int                `json:"index"`
	Start     calendar.TimeOfDay `json:"start"`
	End       calendar.TimeOfDay `json:"end"`
	BasePrice money.VND          `json:"basePrice"`
	SlotID    string             `json:"slotId,omitempty"`
	Price     money.VND          `json:"price"`
	Status    Status             `json:"status"`
}

func (s BookingSlot) Snapshot() Snapshot {
	return Snapshot{
		CourtID:   s.courtID,
		Date:      s.date,
		Index:     s.template.index,
		Start:     s.template.start,
		End:       s.template.end,
		BasePrice: s.template.basePrice,
		SlotID:    s.slotID,
		Price:     s.price,
		Status:    s.status,
	}
}

// Reconstruct restores a BookingSlot from persisted data.
func Reconstruct(snap Snapshot) (BookingSlot, error) {
	if !snap.Status.IsValid() {
		return BookingSlot{}, ErrInvalidStatus
	}
	if snap.Price < 0 {
		return BookingSlot{}, ErrNegativePrice
	}
	if snap.Date.IsZero() {
		return BookingSlot{}, ErrInvalidSnapshot
	}
	template, err := NewTemplate(snap.Index, snap.Start, snap.End, snap.BasePrice)
	if err != nil {
		return BookingSlot{}, err
	}
	return BookingSlot{
		courtID:  snap.CourtID,
		date:     snap.Date,
		template: template,
		slotID:   snap.SlotID,
		price:    snap.Price,
		status:   snap.Status,
	}, nil
}

// TemplateSnapshot is the persisted form of a Template.
type TemplateSnapshot struct {
	Index     int                `json:"index"`
	Start     calendar.TimeOfDay `json:"start"`
	End       calendar.TimeOfDay `json:"end"`
	BasePrice money.VND          `json:"basePrice"`
}

func (t Template) Snapshot() TemplateSnapshot {
	return TemplateSnapshot{Index: t.index, Start: t.start, End: t.end, BasePrice: t.basePrice}
}

func ReconstructTemplate(snap TemplateSnapshot) (Template, error) {
	return NewTemplate(snap.Index, snap.Start, snap.End, snap.BasePrice)
}
