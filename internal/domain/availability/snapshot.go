package availability

import (
	"errors"
	"fmt"

	"shuttlesync/internal/domain/slot"
	"shuttlesync/internal/pkg/calendar"
)

var ErrInvalidSnapshot = errors.New("invalid grid snapshot")

type DaySnapshot struct {
	Date    calendar.Date   `json:"date"`
	State   DayState        `json:"state"`
	Failure string          `json:"failure,omitempty"`
	Cells   []slot.Snapshot `json:"cells"`
}

// GridSnapshot is the persisted form of a Grid.
type GridSnapshot struct {
	CourtID     string                  `json:"courtId"`
	Operational bool                    `json:"operational"`
	WeekStart   calendar.Date           `json:"weekStart"`
	Templates   []slot.TemplateSnapshot `json:"templates"`
	Days        []DaySnapshot           `json:"days"`
	Selected    *Position               `json:"selected,omitempty"`
}

func (g *Grid) Snapshot() GridSnapshot {
	snap := GridSnapshot{
		CourtID:     g.courtID,
		Operational: g.operational,
		WeekStart:   g.weekStart,
		Templates:   make([]slot.TemplateSnapshot, len(g.templates)),
		Days:        make([]DaySnapshot, len(g.days)),
	}
	for i, t := range g.templates {
		snap.Templates[i] = t.Snapshot()
	}
	for i, d := range g.days {
		ds := DaySnapshot{Date: d.date, State: d.state, Failure: d.failure, Cells: make([]slot.Snapshot, len(d.cells))}
		for j, c := range d.cells {
			ds.Cells[j] = c.Snapshot()
		}
		snap.Days[i] = ds
	}
	if g.selected != nil {
		pos := *g.selected
		snap.Selected = &pos
	}
	return snap
}

// RestoreGrid rebuilds a Grid from a snapshot, checking the shape and the selection invariant.
func RestoreGrid(snap GridSnapshot) (*Grid, error) {
	if len(snap.Days) != DaysPerWeek {
		return nil, fmt.Errorf("%w: expected %d days, got %d", ErrInvalidSnapshot, DaysPerWeek, len(snap.Days))
	}
	if !calendar.WeekStart(snap.WeekStart).Equal(snap.WeekStart) {
		return nil, fmt.Errorf("%w: week start %s is not a Monday", ErrInvalidSnapshot, snap.WeekStart)
	}

	g := &Grid{
		courtID:     snap.CourtID,
		operational: snap.Operational,
		weekStart:   snap.WeekStart,
		templates:   make([]slot.Template, len(snap.Templates)),
		days:        make([]Day, len(snap.Days)),
	}
	for i, ts := range snap.Templates {
		t, err := slot.ReconstructTemplate(ts)
		if err != nil {
			return nil, fmt.Errorf("%w: template %d: %v", ErrInvalidSnapshot, i, err)
		}
		g.templates[i] = t
	}

	var selected []Position
	for i, ds := range snap.Days {
		if !ds.State.IsValid() {
			return nil, fmt.Errorf("%w: day %d has state %q", ErrInvalidSnapshot, i, ds.State)
		}
		if !ds.Date.Equal(snap.WeekStart.AddDays(i)) {
			return nil, fmt.Errorf("%w: day %d is %s", ErrInvalidSnapshot, i, ds.Date)
		}
		if len(ds.Cells) != len(g.templates) {
			return nil, fmt.Errorf("%w: day %d has %d cells", ErrInvalidSnapshot, i, len(ds.Cells))
		}
		day := Day{date: ds.Date, state: ds.State, failure: ds.Failure, cells: make([]slot.BookingSlot, len(ds.Cells))}
		for j, cs := range ds.Cells {
			cell, err := slot.Reconstruct(cs)
			if err != nil {
				return nil, fmt.Errorf("%w: cell %d/%d: %v", ErrInvalidSnapshot, i, j, err)
			}
			if cell.Status() == slot.StatusSelected {
				selected = append(selected, Position{Day: i, Index: j})
			}
			day.cells[j] = cell
		}
		g.days[i] = day
	}

	switch {
	case len(selected) > 1:
		return nil, fmt.Errorf("%w: %d cells selected", ErrInvalidSnapshot, len(selected))
	case len(selected) == 1:
		if snap.Selected == nil || *snap.Selected != selected[0] {
			return nil, fmt.Errorf("%w: selection does not match selected cell", ErrInvalidSnapshot)
		}
		pos := selected[0]
		g.selected = &pos
	case snap.Selected != nil:
		return nil, fmt.Errorf("%w: selection points at a cell that is not selected", ErrInvalidSnapshot)
	}
	return g, nil
}
