package availability

import (
	"fmt"

	"shuttlesync/internal/domain/slot"
	"shuttlesync/internal/pkg/calendar"
	"shuttlesync/internal/pkg/money"
)

// DaysPerWeek is the number of columns in a grid, Monday first.
const DaysPerWeek = 7

// FetchTag identifies the court and week an availability request was issued for.
// Results carrying a tag the grid no longer matches are discarded.
type FetchTag struct {
	CourtID   string        `json:"courtId"`
	WeekStart calendar.Date `json:"weekStart"`
}

func (t FetchTag) String() string {
	return fmt.Sprintf("%s@%s", t.CourtID, t.WeekStart)
}

type DayState string

const (
	DayPending DayState = "pending"
	DayLoaded  DayState = "loaded"
	DayFailed  DayState = "failed"
)

func (s DayState) IsValid() bool {
	switch s {
	case DayPending, DayLoaded, DayFailed:
		return true
	default:
		return false
	}
}

// Listing is one slot the backend offers for a date.
type Listing struct {
	SlotID string
	Start  calendar.TimeOfDay
	End    calendar.TimeOfDay
	Price  money.VND
	Status slot.Status
}

// Position addresses a cell by day column and template index.
type Position struct {
	Day   int `json:"day"`
	Index int `json:"index"`
}
