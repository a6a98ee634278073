//go:build unit

package availability_test

import (
	"testing"
	"time"

	"shuttlesync/internal/domain/availability"
	"shuttlesync/internal/domain/court"
	"shuttlesync/internal/domain/slot"
	"shuttlesync/internal/pkg/calendar"
	"shuttlesync/internal/pkg/money"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	monday   = calendar.NewDate(2026, time.October, 12)
	thursday = calendar.NewDate(2026, time.October, 15)
)

func newCourt(t *testing.T, status court.Status) *court.Court {
	t.Helper()
	c, err := court.NewCourt("c-1", "Court A", "", status)
	require.NoError(t, err)
	return c
}

func newTemplates(t *testing.T) []slot.Template {
	t.Helper()
	templates, err := slot.GenerateTemplates(
		calendar.MustParseTimeOfDay("05:00"),
		calendar.MustParseTimeOfDay("11:00"),
		2*time.Hour,
		200000,
	)
	require.NoError(t, err)
	return templates
}

func newGrid(t *testing.T, ref calendar.Date) *availability.Grid {
	t.Helper()
	return availability.BuildWeek(newCourt(t, court.StatusActive), ref, newTemplates(t))
}

func listing(id, start string, price money.VND, status slot.Status) availability.Listing {
	return availability.Listing{SlotID: id, Start: calendar.MustParseTimeOfDay(start), Price: price, Status: status}
}

func loadAllAvailable(t *testing.T, g *availability.Grid) {
	t.Helper()
	for _, date := range g.Dates() {
		ok := g.ApplyDay(g.Tag(), date, []availability.Listing{
			listing("a-"+date.String(), "05:00", 200000, slot.StatusAvailable),
			listing("b-"+date.String(), "07:00", 250000, slot.StatusAvailable),
			listing("c-"+date.String(), "09:00", 300000, slot.StatusAvailable),
		})
		require.True(t, ok)
	}
}

func countStatus(g *availability.Grid, status slot.Status) int {
	n := 0
	for _, d := range g.Days() {
		for _, c := range d.Cells() {
			if c.Status() == status {
				n++
			}
		}
	}
	return n
}

func TestBuildWeek(t *testing.T) {
	t.Run("week layout from a mid-week reference", func(t *testing.T) {
		g := newGrid(t, thursday)

		assert.Equal(t, monday, g.WeekStart())
		days := g.Days()
		require.Len(t, days, availability.DaysPerWeek)
		for i, d := range days {
			assert.Equal(t, monday.AddDays(i), d.Date())
			assert.Equal(t, availability.DayPending, d.State())
			require.Len(t, d.Cells(), 3)
			for j, c := range d.Cells() {
				assert.Equal(t, j, c.Index())
				assert.Equal(t, slot.StatusPending, c.Status())
				assert.Equal(t, "c-1", c.CourtID())
			}
		}
		_, selected := g.Selected()
		assert.False(t, selected)
		assert.Len(t, g.PendingDates(), availability.DaysPerWeek)
	})

	t.Run("sunday reference belongs to the preceding monday", func(t *testing.T) {
		g := newGrid(t, calendar.NewDate(2026, time.October, 18))
		assert.Equal(t, monday, g.WeekStart())
	})

	t.Run("non-operational court is entirely unavailable", func(t *testing.T) {
		for _, status := range []court.Status{court.StatusInactive, court.StatusMaintenance} {
			g := availability.BuildWeek(newCourt(t, status), thursday, newTemplates(t))

			assert.Equal(t, 21, countStatus(g, slot.StatusUnavailable))
			assert.Empty(t, g.PendingDates())
			assert.False(t, g.SelectSlot(thursday, 0, monday))
			assert.False(t, g.ApplyDay(g.Tag(), thursday, []availability.Listing{
				listing("x", "05:00", 200000, slot.StatusAvailable),
			}))
		}
	})
}

func TestApplyDay(t *testing.T) {
	t.Run("listed slots take backend status and price, unlisted become unavailable", func(t *testing.T) {
		g := newGrid(t, thursday)

		ok := g.ApplyDay(g.Tag(), thursday, []availability.Listing{
			listing("ts-1", "05:00", 180000, slot.StatusAvailable),
			listing("ts-2", "07:00", 220000, slot.StatusBooked),
		})
		require.True(t, ok)

		first, _ := g.Cell(thursday, 0)
		assert.Equal(t, slot.StatusAvailable, first.Status())
		assert.Equal(t, "ts-1", first.SlotID())
		assert.Equal(t, money.VND(180000), first.Price())

		second, _ := g.Cell(thursday, 1)
		assert.Equal(t, slot.StatusBooked, second.Status())

		third, _ := g.Cell(thursday, 2)
		assert.Equal(t, slot.StatusUnavailable, third.Status())
		assert.Empty(t, third.SlotID())

		other, _ := g.Cell(monday, 0)
		assert.Equal(t, slot.StatusPending, other.Status())
		assert.NotContains(t, g.PendingDates(), thursday)
	})

	t.Run("listing claiming selected is not trusted", func(t *testing.T) {
		g := newGrid(t, thursday)
		g.ApplyDay(g.Tag(), thursday, []availability.Listing{listing("ts-1", "05:00", 1, slot.StatusSelected)})

		cell, _ := g.Cell(thursday, 0)
		assert.Equal(t, slot.StatusUnavailable, cell.Status())
		assert.Zero(t, countStatus(g, slot.StatusSelected))
	})

	t.Run("stale tag is discarded", func(t *testing.T) {
		g := newGrid(t, thursday)
		before := g.Snapshot()

		stale := availability.FetchTag{CourtID: "c-1", WeekStart: monday.AddDays(-7)}
		assert.False(t, g.ApplyDay(stale, thursday, []availability.Listing{listing("ts-1", "05:00", 1, slot.StatusAvailable)}))
		otherCourt := availability.FetchTag{CourtID: "c-2", WeekStart: monday}
		assert.False(t, g.FailDay(otherCourt, thursday, "boom"))

		if diff := cmp.Diff(before, g.Snapshot()); diff != "" {
			t.Errorf("grid changed by stale result (-want +got):\n%s", diff)
		}
	})

	t.Run("date outside the week is ignored", func(t *testing.T) {
		g := newGrid(t, thursday)
		assert.False(t, g.ApplyDay(g.Tag(), monday.AddDays(7), nil))
	})

	t.Run("reapplying keeps a still-available selection", func(t *testing.T) {
		g := newGrid(t, thursday)
		loadAllAvailable(t, g)
		require.True(t, g.SelectSlot(thursday, 1, monday))

		g.ApplyDay(g.Tag(), thursday, []availability.Listing{
			listing("b2", "07:00", 260000, slot.StatusAvailable),
		})
		selected, ok := g.Selected()
		require.True(t, ok)
		assert.Equal(t, slot.StatusSelected, selected.Status())
		assert.Equal(t, money.VND(260000), selected.Price())

		g.ApplyDay(g.Tag(), thursday, []availability.Listing{
			listing("b2", "07:00", 260000, slot.StatusBooked),
		})
		_, ok = g.Selected()
		assert.False(t, ok)
		assert.Zero(t, countStatus(g, slot.StatusSelected))
	})
}

func TestFailAndReloadDay(t *testing.T) {
	g := newGrid(t, thursday)
	loadAllAvailable(t, g)
	require.True(t, g.SelectSlot(thursday, 0, monday))

	require.True(t, g.FailDay(g.Tag(), thursday, "upstream timeout"))

	day := g.Days()[3]
	assert.Equal(t, availability.DayFailed, day.State())
	assert.Equal(t, "upstream timeout", day.Failure())
	for _, c := range day.Cells() {
		assert.Equal(t, slot.StatusFailed, c.Status())
	}
	_, ok := g.Selected()
	assert.False(t, ok)
	assert.False(t, g.SelectSlot(thursday, 0, monday))

	monCell, _ := g.Cell(monday, 0)
	assert.Equal(t, slot.StatusAvailable, monCell.Status())

	require.True(t, g.MarkDayPending(thursday))
	assert.Equal(t, []calendar.Date{thursday}, g.PendingDates())

	g.ApplyDay(g.Tag(), thursday, []availability.Listing{listing("r1", "05:00", 200000, slot.StatusAvailable)})
	assert.True(t, g.SelectSlot(thursday, 0, monday))
}

func TestSelectSlot(t *testing.T) {
	t.Run("single selection moves between cells", func(t *testing.T) {
		g := newGrid(t, thursday)
		loadAllAvailable(t, g)

		require.True(t, g.SelectSlot(thursday, 0, monday))
		require.True(t, g.SelectSlot(monday.AddDays(5), 2, monday))

		assert.Equal(t, 1, countStatus(g, slot.StatusSelected))
		prev, _ := g.Cell(thursday, 0)
		assert.Equal(t, slot.StatusAvailable, prev.Status())

		selected, ok := g.Selected()
		require.True(t, ok)
		assert.Equal(t, "c-"+monday.AddDays(5).String(), selected.SlotID())
	})

	t.Run("selecting the selected cell again is a no-op", func(t *testing.T) {
		g := newGrid(t, thursday)
		loadAllAvailable(t, g)

		require.True(t, g.SelectSlot(thursday, 1, monday))
		assert.False(t, g.SelectSlot(thursday, 1, monday))
		assert.Equal(t, 1, countStatus(g, slot.StatusSelected))
	})

	t.Run("rejected selections leave the grid unchanged", func(t *testing.T) {
		g := newGrid(t, thursday)
		loadAllAvailable(t, g)
		g.ApplyDay(g.Tag(), thursday, []availability.Listing{
			listing("ts-1", "05:00", 200000, slot.StatusBooked),
			listing("ts-2", "07:00", 200000, slot.StatusAvailable),
		})
		require.True(t, g.SelectSlot(thursday, 1, monday))
		before := g.Snapshot()

		assert.False(t, g.SelectSlot(thursday, 0, monday), "booked")
		assert.False(t, g.SelectSlot(thursday, 2, monday), "unavailable")
		assert.False(t, g.SelectSlot(thursday, 3, monday), "index out of range")
		assert.False(t, g.SelectSlot(thursday, -1, monday), "negative index")
		assert.False(t, g.SelectSlot(monday.AddDays(-1), 0, monday), "outside the week")
		assert.False(t, g.SelectSlot(monday, 0, monday.AddDays(1)), "past date")

		if diff := cmp.Diff(before, g.Snapshot()); diff != "" {
			t.Errorf("rejected selection changed the grid (-want +got):\n%s", diff)
		}
	})

	t.Run("pending cells cannot be selected", func(t *testing.T) {
		g := newGrid(t, thursday)
		assert.False(t, g.SelectSlot(thursday, 0, monday))
	})

	t.Run("today is selectable", func(t *testing.T) {
		g := newGrid(t, thursday)
		loadAllAvailable(t, g)
		assert.True(t, g.SelectSlot(thursday, 0, thursday))
	})

	t.Run("clear selection restores availability", func(t *testing.T) {
		g := newGrid(t, thursday)
		loadAllAvailable(t, g)
		require.True(t, g.SelectSlot(thursday, 0, monday))

		g.ClearSelection()
		assert.Zero(t, countStatus(g, slot.StatusSelected))
		assert.Equal(t, 21, countStatus(g, slot.StatusAvailable))
	})
}

func TestGridSnapshot(t *testing.T) {
	g := newGrid(t, thursday)
	loadAllAvailable(t, g)
	g.FailDay(g.Tag(), monday, "timeout")
	require.True(t, g.SelectSlot(thursday, 2, monday))

	restored, err := availability.RestoreGrid(g.Snapshot())
	require.NoError(t, err)
	if diff := cmp.Diff(g.Snapshot(), restored.Snapshot()); diff != "" {
		t.Errorf("restored grid differs (-want +got):\n%s", diff)
	}
	selected, ok := restored.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, selected.Index())

	t.Run("two selected cells are rejected", func(t *testing.T) {
		snap := g.Snapshot()
		snap.Days[0].Cells[0].Status = slot.StatusSelected
		_, err := availability.RestoreGrid(snap)
		assert.ErrorIs(t, err, availability.ErrInvalidSnapshot)
	})

	t.Run("missing day is rejected", func(t *testing.T) {
		snap := g.Snapshot()
		snap.Days = snap.Days[:6]
		_, err := availability.RestoreGrid(snap)
		assert.ErrorIs(t, err, availability.ErrInvalidSnapshot)
	})

	t.Run("dangling selection pointer is rejected", func(t *testing.T) {
		snap := g.Snapshot()
		snap.Selected = &availability.Position{Day: 0, Index: 0}
		_, err := availability.RestoreGrid(snap)
		assert.ErrorIs(t, err, availability.ErrInvalidSnapshot)
	})
}
