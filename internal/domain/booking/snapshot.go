package booking

import (
	"fmt"
	"time"

	"shuttlesync/internal/domain/addon"
	"shuttlesync/internal/domain/availability"
	"shuttlesync/internal/domain/court"
	"shuttlesync/internal/domain/slot"
	"shuttlesync/internal/domain/voucher"
	"shuttlesync/internal/pkg/calendar"

	"github.com/google/uuid"
)

type CourtSnapshot struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Status      court.Status `json:"status"`
}

// DraftSnapshot is the persisted form of a Draft, stored as JSON by the draft stores.
type DraftSnapshot struct {
	ID            uuid.UUID                 `json:"id"`
	UserID        string                    `json:"userId"`
	Court         CourtSnapshot             `json:"court"`
	ReferenceDate calendar.Date             `json:"referenceDate"`
	Grid          availability.GridSnapshot `json:"grid"`
	Services      []addon.LineSnapshot      `json:"services"`
	Voucher       *voucher.Snapshot         `json:"voucher,omitempty"`
	Note          string                    `json:"note,omitempty"`
	CreatedAt     time.Time                 `json:"createdAt"`
	UpdatedAt     time.Time                 `json:"updatedAt"`
}

func (d *Draft) Snapshot() DraftSnapshot {
	snap := DraftSnapshot{
		ID:     d.id,
		UserID: d.userID,
		Court: CourtSnapshot{
			ID:          d.court.ID(),
			Name:        d.court.Name(),
			Description: d.court.Description(),
			Status:      d.court.Status(),
		},
		ReferenceDate: d.referenceDate,
		Grid:          d.grid.Snapshot(),
		Services:      d.cart.Snapshot(),
		Note:          d.note.String(),
		CreatedAt:     d.createdAt,
		UpdatedAt:     d.updatedAt,
	}
	if d.voucher != nil {
		v := d.voucher.Snapshot()
		snap.Voucher = &v
	}
	return snap
}

func RestoreDraft(snap DraftSnapshot) (*Draft, error) {
	c, err := court.NewCourt(snap.Court.ID, snap.Court.Name, snap.Court.Description, snap.Court.Status)
	if err != nil {
		return nil, fmt.Errorf("restore draft %s: %w", snap.ID, err)
	}
	grid, err := availability.RestoreGrid(snap.Grid)
	if err != nil {
		return nil, fmt.Errorf("restore draft %s: %w", snap.ID, err)
	}
	if grid.CourtID() != c.ID() || !grid.WeekStart().Equal(calendar.WeekStart(snap.ReferenceDate)) {
		return nil, fmt.Errorf("restore draft %s: %w: grid does not match court and week", snap.ID, availability.ErrInvalidSnapshot)
	}
	cart, err := addon.RestoreCart(snap.Services)
	if err != nil {
		return nil, fmt.Errorf("restore draft %s: %w", snap.ID, err)
	}
	note, err := NewNote(snap.Note)
	if err != nil {
		return nil, fmt.Errorf("restore draft %s: %w", snap.ID, err)
	}
	templates := make([]slot.Template, 0, len(snap.Grid.Templates))
	for _, ts := range snap.Grid.Templates {
		t, err := slot.ReconstructTemplate(ts)
		if err != nil {
			return nil, fmt.Errorf("restore draft %s: %w", snap.ID, err)
		}
		templates = append(templates, t)
	}

	d := &Draft{
		id:            snap.ID,
		userID:        snap.UserID,
		court:         c,
		referenceDate: snap.ReferenceDate,
		templates:     templates,
		grid:          grid,
		cart:          cart,
		note:          note,
		createdAt:     snap.CreatedAt,
		updatedAt:     snap.UpdatedAt,
	}
	if snap.Voucher != nil {
		d.voucher = voucher.FromSnapshot(*snap.Voucher)
	}
	return d, nil
}
