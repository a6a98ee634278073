package queries

import (
	"context"

	"shuttlesync/internal/domain/booking"
	"shuttlesync/internal/domain/court"
	"shuttlesync/internal/domain/pricing"
	"shuttlesync/internal/domain/slot"
	"shuttlesync/internal/domain/voucher"
	"shuttlesync/internal/infra"
	"shuttlesync/internal/pkg/calendar"
	"shuttlesync/internal/pkg/clock"
	"shuttlesync/internal/pkg/errs"
	"shuttlesync/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDraftNotFound = shared.ErrDraftNotFound

type DraftQueries interface {
	Get(ctx context.Context, s shared.Session, id uuid.UUID) (*DraftView, error)
}

type draftQueriesImpl struct {
	store shared.DraftStore
	calc  pricing.Calculator
	clock clock.Clock
}

func NewDraftQueries(store shared.DraftStore, calc pricing.Calculator, clk clock.Clock) DraftQueries {
	return &draftQueriesImpl{store: store, calc: calc, clock: clk}
}

func (q *draftQueriesImpl) Get(ctx context.Context, s shared.Session, id uuid.UUID) (*DraftView, error) {
	d, err := q.store.Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDraftNotFound)
		}
		return nil, err
	}
	if !d.IsOwnedBy(s.UserID) {
		return nil, ErrDraftNotFound
	}
	return NewDraftView(d, q.calc, q.clock.Today()), nil
}

// NewDraftView renders a draft as seen on today. Eligibility and totals are recomputed every time.
func NewDraftView(d *booking.Draft, calc pricing.Calculator, today calendar.Date) *DraftView {
	grid := d.Grid()
	summary := d.Summary(calc)

	view := &DraftView{
		ID:            d.ID(),
		Court:         *newCourtView(d.Court()),
		ReferenceDate: d.ReferenceDate().String(),
		WeekStart:     grid.WeekStart().String(),
		Today:         today.String(),
		Days:          make([]*DayView, 0, len(grid.Days())),
		Services:      make([]*ServiceLineView, 0, len(d.Lines())),
		Note:          d.Note().String(),
		Summary:       newSummaryView(summary),
		CreatedAt:     d.CreatedAt(),
		UpdatedAt:     d.UpdatedAt(),
	}

	for _, day := range grid.Days() {
		dv := &DayView{
			Date:    day.Date().String(),
			Weekday: day.Date().Weekday().String(),
			State:   string(day.State()),
			Failure: day.Failure(),
			IsPast:  day.Date().Before(today),
		}
		for _, cell := range day.Cells() {
			dv.Slots = append(dv.Slots, newSlotView(cell, today))
		}
		view.Days = append(view.Days, dv)
	}

	if selected := d.SelectedSlot(); selected != nil {
		view.Selected = newSlotView(*selected, today)
	}

	for _, l := range d.Lines() {
		view.Services = append(view.Services, &ServiceLineView{
			ServiceID: l.Service().ID(),
			Name:      l.Service().Name(),
			Category:  l.Service().Category(),
			UnitPrice: l.Service().UnitPrice().Int64(),
			Quantity:  l.Quantity(),
			Amount:    l.Amount().Int64(),
		})
	}

	if v := d.Voucher(); v != nil {
		view.Voucher = &AppliedVoucherView{
			VoucherView: *newVoucherView(v),
			Eligible:    summary.VoucherEligible,
		}
	}
	return view
}

func newSlotView(s slot.BookingSlot, today calendar.Date) *SlotView {
	return &SlotView{
		Index:      s.Index(),
		SlotID:     s.SlotID(),
		Date:       s.Date().String(),
		StartTime:  s.Start().String(),
		EndTime:    s.End().String(),
		Price:      s.Price().Int64(),
		Status:     s.Status().String(),
		Disabled:   s.IsDisabled(today),
		Selectable: s.IsSelectable(today),
	}
}

func newSummaryView(s pricing.OrderSummary) SummaryView {
	return SummaryView{
		Subtotal:          s.Subtotal.Int64(),
		Discount:          s.Discount.Int64(),
		Total:             s.Total.Int64(),
		SubtotalFormatted: s.Subtotal.Format(),
		DiscountFormatted: s.Discount.Format(),
		TotalFormatted:    s.Total.Format(),
	}
}

func newCourtView(c *court.Court) *CourtView {
	return &CourtView{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		Status:      c.Status().String(),
		Operational: c.IsOperational(),
	}
}

func newVoucherView(v *voucher.Voucher) *VoucherView {
	view := &VoucherView{
		ID:             v.ID(),
		Code:           v.Code().String(),
		Name:           v.Name(),
		Description:    v.Description(),
		DiscountType:   v.DiscountType().String(),
		Value:          v.Value(),
		MinOrderAmount: v.MinOrderAmount().Int64(),
		WellFormed:     v.IsWellFormed(),
	}
	if maxDiscount := v.MaxDiscount(); maxDiscount != nil {
		amount := maxDiscount.Int64()
		view.MaxDiscount = &amount
	}
	return view
}
