//go:build unit || e2e

package builder

import (
	"time"

	"shuttlesync/internal/domain/availability"
	"shuttlesync/internal/domain/booking"
	"shuttlesync/internal/domain/court"
	"shuttlesync/internal/domain/slot"
	"shuttlesync/internal/pkg/calendar"
	"shuttlesync/internal/pkg/money"

	"github.com/google/uuid"
)

type DraftBuilder struct {
	ID            uuid.UUID
	UserID        string
	CourtID       string
	CourtName     string
	CourtStatus   court.Status
	ReferenceDate calendar.Date
	OpenTime      string
	CloseTime     string
	SlotLength    time.Duration
	BasePrice     money.VND
	// LoadAll applies an all-available listing to every day when set.
	LoadAll bool
	Now     time.Time
}

func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		ID:            uuid.New(),
		UserID:        "user-1",
		CourtID:       "court-1",
		CourtName:     "Court A",
		CourtStatus:   court.StatusActive,
		ReferenceDate: calendar.NewDate(2026, time.October, 15),
		OpenTime:      "05:00",
		CloseTime:     "11:00",
		SlotLength:    2 * time.Hour,
		BasePrice:     200000,
		Now:           time.Date(2026, time.October, 13, 9, 0, 0, 0, time.UTC),
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

func (b *DraftBuilder) WithUserID(userID string) *DraftBuilder {
	b.UserID = userID
	return b
}

func (b *DraftBuilder) WithReferenceDate(d calendar.Date) *DraftBuilder {
	b.ReferenceDate = d
	return b
}

func (b *DraftBuilder) Loaded() *DraftBuilder {
	b.LoadAll = true
	return b
}

func (b *DraftBuilder) BuildCourt() *court.Court {
	c, err := court.NewCourt(b.CourtID, b.CourtName, "", b.CourtStatus)
	if err != nil {
		panic(err)
	}
	return c
}

func (b *DraftBuilder) BuildTemplates() []slot.Template {
	templates, err := slot.GenerateTemplates(
		calendar.MustParseTimeOfDay(b.OpenTime),
		calendar.MustParseTimeOfDay(b.CloseTime),
		b.SlotLength,
		b.BasePrice,
	)
	if err != nil {
		panic(err)
	}
	return templates
}

// Build methods
func (b *DraftBuilder) BuildDomain() *booking.Draft {
	d, err := booking.NewDraft(b.ID, b.UserID, b.BuildCourt(), b.ReferenceDate, b.BuildTemplates(), b.Now)
	if err != nil {
		panic(err)
	}
	if b.LoadAll {
		grid := d.Grid()
		for _, date := range grid.Dates() {
			d.ApplyDay(grid.Tag(), date, AvailableListings(date, b.BuildTemplates()))
		}
	}
	return d
}

// AvailableListings offers every template on date at its base price.
func AvailableListings(date calendar.Date, templates []slot.Template) []availability.Listing {
	listings := make([]availability.Listing, len(templates))
	for i, t := range templates {
		listings[i] = availability.Listing{
			SlotID: SlotID(date, i),
			Start:  t.Start(),
			End:    t.End(),
			Price:  t.BasePrice(),
			Status: slot.StatusAvailable,
		}
	}
	return listings
}

func SlotID(date calendar.Date, index int) string {
	return date.String() + "#" + string(rune('a'+index))
}
