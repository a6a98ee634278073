package availability

import (
	"shuttlesync/internal/domain/court"
	"shuttlesync/internal/domain/slot"
	"shuttlesync/internal/pkg/calendar"
)

type Day struct {
	date    calendar.Date
	state   DayState
	failure string
	cells   []slot.BookingSlot
}

func (d Day) Date() calendar.Date { return d.date }
func (d Day) State() DayState     { return d.state }
func (d Day) Failure() string     { return d.failure }

func (d Day) Cells() []slot.BookingSlot {
	cells := make([]slot.BookingSlot, len(d.cells))
	copy(cells, d.cells)
	return cells
}

// Grid is the 7-day by N-slot availability matrix for one court.
// At most one cell is selected at any time.
type Grid struct {
	courtID     string
	operational bool
	weekStart   calendar.Date
	templates   []slot.Template
	days        []Day
	selected    *Position
}

// BuildWeek lays out the week containing ref. Cells of an operational court start pending
// until their day is applied; a non-operational court yields only unavailable cells.
func BuildWeek(c *court.Court, ref calendar.Date, templates []slot.Template) *Grid {
	g := &Grid{
		courtID:     c.ID(),
		operational: c.IsOperational(),
		weekStart:   calendar.WeekStart(ref),
		templates:   append([]slot.Template(nil), templates...),
		days:        make([]Day, 0, DaysPerWeek),
	}

	for _, date := range calendar.WeekDates(ref) {
		day := Day{date: date, state: DayPending, cells: make([]slot.BookingSlot, len(templates))}
		for i, tmpl := range templates {
			cell := slot.NewPendingSlot(g.courtID, date, tmpl)
			if !g.operational {
				cell = cell.Unlisted()
			}
			day.cells[i] = cell
		}
		if !g.operational {
			day.state = DayLoaded
		}
		g.days = append(g.days, day)
	}
	return g
}

func (g *Grid) CourtID() string                 { return g.courtID }
func (g *Grid) WeekStart() calendar.Date        { return g.weekStart }
func (g *Grid) IsOperational() bool             { return g.operational }
func (g *Grid) Tag() FetchTag                   { return FetchTag{CourtID: g.courtID, WeekStart: g.weekStart} }
func (g *Grid) Templates() []slot.Template      { return append([]slot.Template(nil), g.templates...) }
func (g *Grid) Days() []Day                     { return append([]Day(nil), g.days...) }
func (g *Grid) HasDate(date calendar.Date) bool { return g.dayIndex(date) >= 0 }

func (g *Grid) Matches(tag FetchTag) bool {
	return tag.CourtID == g.courtID && tag.WeekStart.Equal(g.weekStart)
}

func (g *Grid) Dates() []calendar.Date {
	dates := make([]calendar.Date, len(g.days))
	for i, d := range g.days {
		dates[i] = d.date
	}
	return dates
}

// PendingDates lists the days that still need availability from the backend.
func (g *Grid) PendingDates() []calendar.Date {
	var dates []calendar.Date
	for _, d := range g.days {
		if d.state == DayPending {
			dates = append(dates, d.date)
		}
	}
	return dates
}

func (g *Grid) Cell(date calendar.Date, index int) (slot.BookingSlot, bool) {
	di := g.dayIndex(date)
	if di < 0 || index < 0 || index >= len(g.days[di].cells) {
		return slot.BookingSlot{}, false
	}
	return g.days[di].cells[index], true
}

// ApplyDay fills a day from backend listings. Listings are matched to templates by start time;
// a template without a listing is unavailable. A selection on that day survives only if its
// slot is still available.
func (g *Grid) ApplyDay(tag FetchTag, date calendar.Date, listings []Listing) bool {
	if !g.operational || !g.Matches(tag) {
		return false
	}
	di := g.dayIndex(date)
	if di < 0 {
		return false
	}

	byStart := make(map[calendar.TimeOfDay]Listing, len(listings))
	for _, l := range listings {
		if _, dup := byStart[l.Start]; !dup {
			byStart[l.Start] = l
		}
	}

	day := &g.days[di]
	for i, cell := range day.cells {
		l, ok := byStart[cell.Start()]
		if !ok {
			day.cells[i] = cell.Unlisted()
			continue
		}
		day.cells[i] = cell.WithListing(l.SlotID, l.Price, normalizeListingStatus(l.Status))
	}
	day.state = DayLoaded
	day.failure = ""

	if g.selected != nil && g.selected.Day == di {
		cell := day.cells[g.selected.Index]
		if cell.Status() == slot.StatusAvailable {
			day.cells[g.selected.Index] = cell.WithStatus(slot.StatusSelected)
		} else {
			g.selected = nil
		}
	}
	return true
}

// FailDay marks every cell of the day failed. The day can be reloaded later.
func (g *Grid) FailDay(tag FetchTag, date calendar.Date, reason string) bool {
	if !g.operational || !g.Matches(tag) {
		return false
	}
	di := g.dayIndex(date)
	if di < 0 {
		return false
	}
	g.resetDay(di, slot.StatusFailed)
	g.days[di].state = DayFailed
	g.days[di].failure = reason
	return true
}

// MarkDayPending puts a day back into the loading state ahead of a reload.
func (g *Grid) MarkDayPending(date calendar.Date) bool {
	if !g.operational {
		return false
	}
	di := g.dayIndex(date)
	if di < 0 {
		return false
	}
	g.resetDay(di, slot.StatusPending)
	g.days[di].state = DayPending
	g.days[di].failure = ""
	return true
}

// SelectSlot selects the cell at (date, index) if it is available and not in the past,
// releasing any previous selection. It reports whether the selection changed.
func (g *Grid) SelectSlot(date calendar.Date, index int, today calendar.Date) bool {
	di := g.dayIndex(date)
	if di < 0 || index < 0 || index >= len(g.days[di].cells) {
		return false
	}
	target := g.days[di].cells[index]
	if !target.IsSelectable(today) {
		return false
	}

	g.ClearSelection()
	g.days[di].cells[index] = target.WithStatus(slot.StatusSelected)
	g.selected = &Position{Day: di, Index: index}
	return true
}

func (g *Grid) ClearSelection() {
	if g.selected == nil {
		return
	}
	cells := g.days[g.selected.Day].cells
	cells[g.selected.Index] = cells[g.selected.Index].WithStatus(slot.StatusAvailable)
	g.selected = nil
}

func (g *Grid) Selected() (slot.BookingSlot, bool) {
	if g.selected == nil {
		return slot.BookingSlot{}, false
	}
	return g.days[g.selected.Day].cells[g.selected.Index], true
}

func (g *Grid) resetDay(di int, status slot.Status) {
	if g.selected != nil && g.selected.Day == di {
		g.selected = nil
	}
	day := &g.days[di]
	for i, cell := range day.cells {
		day.cells[i] = slot.NewPendingSlot(g.courtID, day.date, cell.Template()).WithStatus(status)
	}
}

func (g *Grid) dayIndex(date calendar.Date) int {
	for i, d := range g.days {
		if d.date.Equal(date) {
			return i
		}
	}
	return -1
}

func normalizeListingStatus(s slot.Status) slot.Status {
	switch s {
	case slot.StatusAvailable, slot.StatusBooked:
		return s
	default:
		return slot.StatusUnavailable
	}
}
