//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shuttlesync/internal/domain/addon"
	"shuttlesync/internal/domain/availability"
	"shuttlesync/internal/domain/booking"
	"shuttlesync/internal/domain/pricing"
	"shuttlesync/internal/domain/slot"
	"shuttlesync/internal/domain/voucher"
	"shuttlesync/internal/infra"
	"shuttlesync/internal/infra/draftstore"
	"shuttlesync/internal/pkg/calendar"
	"shuttlesync/internal/pkg/clock"
	"shuttlesync/internal/pkg/errs"
	"shuttlesync/internal/usecase/commands"
	"shuttlesync/internal/usecase/shared"
	"shuttlesync/tests/common/builder"
	sharedmock "shuttlesync/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	catalog   *sharedmock.MockCatalogGateway
	slots     *sharedmock.MockAvailabilityGateway
	bookings  *sharedmock.MockBookingGateway
	ledger    *sharedmock.MockSubmissionLedger
	publisher *sharedmock.MockEventPublisher
	store     *draftstore.MemoryStore
	clock     *clock.MockClock
	draft     *builder.DraftBuilder
	session   shared.Session
	uc        commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.catalog = sharedmock.NewMockCatalogGateway(s.mockCtrl)
	s.slots = sharedmock.NewMockAvailabilityGateway(s.mockCtrl)
	s.bookings = sharedmock.NewMockBookingGateway(s.mockCtrl)
	s.ledger = sharedmock.NewMockSubmissionLedger(s.mockCtrl)
	s.publisher = sharedmock.NewMockEventPublisher(s.mockCtrl)

	s.draft = builder.NewDraftBuilder()
	s.clock = clock.NewMockClock(s.draft.Now)
	s.store = draftstore.NewMemoryStore(time.Hour, s.clock)
	s.session = shared.Session{UserID: s.draft.UserID, Token: "access-token"}

	s.uc = commands.NewBookingUseCase(
		s.catalog,
		s.bookings,
		s.store,
		s.ledger,
		s.publisher,
		commands.NewAvailabilityLoader(s.slots, s.store),
		pricing.NewDefaultCalculator(),
		s.draft.BuildTemplates(),
		s.clock,
	)
}

func (s *BookingCommandsTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

// seeds a fully loaded draft and returns its id
func (s *BookingCommandsTestSuite) seedDraft() uuid.UUID {
	s.draft.ID = uuid.New()
	d := s.draft.Loaded().BuildDomain()
	require.NoError(s.T(), s.store.Create(s.ctx, d))
	return d.ID()
}

func (s *BookingCommandsTestSuite) stored(id uuid.UUID) *booking.Draft {
	d, err := s.store.Get(s.ctx, id)
	require.NoError(s.T(), err)
	return d
}

func (s *BookingCommandsTestSuite) offerEveryDay() {
	templates := s.draft.BuildTemplates()
	s.slots.EXPECT().
		ListTimeSlots(gomock.Any(), s.session, s.draft.CourtID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ shared.Session, _ string, date calendar.Date) ([]availability.Listing, error) {
			return builder.AvailableListings(date, templates), nil
		}).
		AnyTimes()
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows"), infra.KindNotFound)
}

var (
	thursday = calendar.NewDate(2026, time.October, 15)
	monday   = calendar.NewDate(2026, time.October, 12)
)

func (s *BookingCommandsTestSuite) TestOpenDraft() {
	s.Run("loads every day of the reference week", func() {
		s.catalog.EXPECT().GetCourt(gomock.Any(), s.session, s.draft.CourtID).Return(s.draft.BuildCourt(), nil)
		s.offerEveryDay()

		ref := thursday
		result, err := s.uc.OpenDraft(s.ctx, s.session, commands.OpenDraftRequest{CourtID: s.draft.CourtID, ReferenceDate: &ref})

		require.NoError(s.T(), err)
		d := s.stored(result.DraftID)
		assert.Equal(s.T(), monday, d.Grid().WeekStart())
		assert.Empty(s.T(), d.Grid().PendingDates())
		for _, day := range d.Grid().Days() {
			assert.Equal(s.T(), availability.DayLoaded, day.State())
		}
	})

	s.Run("defaults the reference date to today", func() {
		s.catalog.EXPECT().GetCourt(gomock.Any(), s.session, s.draft.CourtID).Return(s.draft.BuildCourt(), nil)
		s.offerEveryDay()

		result, err := s.uc.OpenDraft(s.ctx, s.session, commands.OpenDraftRequest{CourtID: s.draft.CourtID})

		require.NoError(s.T(), err)
		assert.Equal(s.T(), s.clock.Today(), s.stored(result.DraftID).ReferenceDate())
	})

	s.Run("a failed day does not fail the draft", func() {
		templates := s.draft.BuildTemplates()
		s.catalog.EXPECT().GetCourt(gomock.Any(), s.session, s.draft.CourtID).Return(s.draft.BuildCourt(), nil)
		s.slots.EXPECT().
			ListTimeSlots(gomock.Any(), s.session, s.draft.CourtID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.Session, _ string, date calendar.Date) ([]availability.Listing, error) {
				if date.Equal(thursday) {
					return nil, infra.WrapRepoErr("backend returned 500", errors.New("boom"), infra.KindUpstreamFailure)
				}
				return builder.AvailableListings(date, templates), nil
			}).
			Times(availability.DaysPerWeek)

		ref := thursday
		result, err := s.uc.OpenDraft(s.ctx, s.session, commands.OpenDraftRequest{CourtID: s.draft.CourtID, ReferenceDate: &ref})

		require.NoError(s.T(), err)
		for _, day := range s.stored(result.DraftID).Grid().Days() {
			if day.Date().Equal(thursday) {
				assert.Equal(s.T(), availability.DayFailed, day.State())
				assert.NotEmpty(s.T(), day.Failure())
				for _, cell := range day.Cells() {
					assert.Equal(s.T(), slot.StatusFailed, cell.Status())
				}
				continue
			}
			assert.Equal(s.T(), availability.DayLoaded, day.State())
		}
	})

	s.Run("unknown court", func() {
		s.catalog.EXPECT().GetCourt(gomock.Any(), s.session, "missing").Return(nil, notFound("court not found"))

		_, err := s.uc.OpenDraft(s.ctx, s.session, commands.OpenDraftRequest{CourtID: "missing"})

		assert.True(s.T(), errs.Is(err, commands.ErrCourtNotFound))
	})

	s.Run("expired session during load", func() {
		s.catalog.EXPECT().GetCourt(gomock.Any(), s.session, s.draft.CourtID).Return(s.draft.BuildCourt(), nil)
		s.slots.EXPECT().
			ListTimeSlots(gomock.Any(), s.session, s.draft.CourtID, gomock.Any()).
			Return(nil, infra.WrapRepoErr("backend returned 401", nil, infra.KindUnauthorized)).
			AnyTimes()

		_, err := s.uc.OpenDraft(s.ctx, s.session, commands.OpenDraftRequest{CourtID: s.draft.CourtID})

		assert.True(s.T(), errs.Is(err, commands.ErrUpstreamUnauthorized))
	})
}

func (s *BookingCommandsTestSuite) TestNavigateWeek() {
	id := s.seedDraft()
	s.offerEveryDay()

	err := s.uc.NavigateWeek(s.ctx, s.session, id, booking.DirectionNext)

	require.NoError(s.T(), err)
	d := s.stored(id)
	assert.Equal(s.T(), monday.AddDays(7), d.Grid().WeekStart())
	assert.Empty(s.T(), d.Grid().PendingDates())
}

func (s *BookingCommandsTestSuite) TestReloadDay() {
	s.Run("refetches one day", func() {
		id := s.seedDraft()
		s.slots.EXPECT().ListTimeSlots(gomock.Any(), s.session, s.draft.CourtID, thursday).Return(nil, nil)

		err := s.uc.ReloadDay(s.ctx, s.session, id, thursday)

		require.NoError(s.T(), err)
		for _, day := range s.stored(id).Grid().Days() {
			if day.Date().Equal(thursday) {
				for _, cell := range day.Cells() {
					assert.Equal(s.T(), slot.StatusUnavailable, cell.Status())
				}
			}
		}
	})

	s.Run("date outside the week", func() {
		id := s.seedDraft()

		err := s.uc.ReloadDay(s.ctx, s.session, id, thursday.AddDays(14))

		assert.True(s.T(), errs.Is(err, commands.ErrDateOutsideWeek))
	})
}

func (s *BookingCommandsTestSuite) TestSelectSlot() {
	tests := []struct {
		name        string
		date        calendar.Date
		index       int
		wantChanged bool
	}{
		{name: "available slot", date: thursday, index: 1, wantChanged: true},
		{name: "past day", date: monday, index: 1, wantChanged: false},
		{name: "index out of range", date: thursday, index: 9, wantChanged: false},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			id := s.seedDraft()

			result, err := s.uc.SelectSlot(s.ctx, s.session, id, tt.date, tt.index)

			require.NoError(s.T(), err)
			assert.Equal(s.T(), tt.wantChanged, result.Changed)
			selected := s.stored(id).SelectedSlot()
			if tt.wantChanged {
				require.NotNil(s.T(), selected)
				assert.Equal(s.T(), tt.index, selected.Index())
			} else {
				assert.Nil(s.T(), selected)
			}
		})
	}

	s.Run("draft of another user", func() {
		id := s.seedDraft()
		other := shared.Session{UserID: "user-2", Token: "other-token"}

		_, err := s.uc.SelectSlot(s.ctx, other, id, thursday, 1)

		assert.True(s.T(), errs.Is(err, commands.ErrDraftNotFound))
		assert.Nil(s.T(), s.stored(id).SelectedSlot())
	})
}

func (s *BookingCommandsTestSuite) TestAdjustServiceQuantity() {
	water := builder.NewServiceBuilder().BuildDomain()

	s.Run("adds and removes quantity", func() {
		id := s.seedDraft()
		s.catalog.EXPECT().ListServices(gomock.Any(), s.session).Return([]*addon.Service{water}, nil).Times(2)

		added, err := s.uc.AdjustServiceQuantity(s.ctx, s.session, id, water.ID(), 2)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), 2, added.Quantity)

		removed, err := s.uc.AdjustServiceQuantity(s.ctx, s.session, id, water.ID(), -5)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), 0, removed.Quantity)
	})

	s.Run("quantity beyond the limit leaves the draft unchanged", func() {
		id := s.seedDraft()
		s.catalog.EXPECT().ListServices(gomock.Any(), s.session).Return([]*addon.Service{water}, nil).Times(2)

		_, err := s.uc.AdjustServiceQuantity(s.ctx, s.session, id, water.ID(), 3)
		require.NoError(s.T(), err)

		_, err = s.uc.AdjustServiceQuantity(s.ctx, s.session, id, water.ID(), 100000000000000)

		assert.True(s.T(), errs.Is(err, addon.ErrQuantityLimit))
		lines := s.stored(id).Lines()
		require.Len(s.T(), lines, 1)
		assert.Equal(s.T(), 3, lines[0].Quantity())
	})

	s.Run("unknown service", func() {
		id := s.seedDraft()
		s.catalog.EXPECT().ListServices(gomock.Any(), s.session).Return([]*addon.Service{water}, nil)

		_, err := s.uc.AdjustServiceQuantity(s.ctx, s.session, id, "svc-missing", 1)

		assert.True(s.T(), errs.Is(err, commands.ErrServiceNotFound))
	})

	s.Run("backend unavailable", func() {
		id := s.seedDraft()
		s.catalog.EXPECT().ListServices(gomock.Any(), s.session).
			Return(nil, infra.WrapRepoErr("backend returned 503", nil, infra.KindUpstreamFailure))

		_, err := s.uc.AdjustServiceQuantity(s.ctx, s.session, id, water.ID(), 1)

		assert.True(s.T(), errs.Is(err, commands.ErrUpstreamUnavailable))
	})
}

func (s *BookingCommandsTestSuite) TestApplyVoucher() {
	catalog := []*voucher.Voucher{builder.Welcome10(), builder.Weekend20()}

	s.Run("eligible voucher", func() {
		id := s.seedDraft()
		_, err := s.uc.SelectSlot(s.ctx, s.session, id, thursday, 0)
		require.NoError(s.T(), err)
		s.catalog.EXPECT().ListVouchers(gomock.Any(), s.session).Return(catalog, nil)

		err = s.uc.ApplyVoucher(s.ctx, s.session, id, "welcome10")

		require.NoError(s.T(), err)
		d := s.stored(id)
		require.NotNil(s.T(), d.Voucher())
		summary := d.Summary(pricing.NewDefaultCalculator())
		assert.Equal(s.T(), int64(20000), summary.Discount.Int64())
		assert.Equal(s.T(), int64(180000), summary.Total.Int64())
	})

	s.Run("below the minimum order", func() {
		id := s.seedDraft()
		_, err := s.uc.SelectSlot(s.ctx, s.session, id, thursday, 0)
		require.NoError(s.T(), err)
		s.catalog.EXPECT().ListVouchers(gomock.Any(), s.session).Return(catalog, nil)

		err = s.uc.ApplyVoucher(s.ctx, s.session, id, "WEEKEND20")

		assert.True(s.T(), errs.Is(err, voucher.ErrVoucherIneligible))
		assert.Nil(s.T(), s.stored(id).Voucher())
	})

	s.Run("unknown code", func() {
		id := s.seedDraft()
		s.catalog.EXPECT().ListVouchers(gomock.Any(), s.session).Return(catalog, nil)

		err := s.uc.ApplyVoucher(s.ctx, s.session, id, "NOPE")

		assert.True(s.T(), errs.Is(err, voucher.ErrVoucherNotFound))
	})

	s.Run("remove", func() {
		id := s.seedDraft()
		_, err := s.uc.SelectSlot(s.ctx, s.session, id, thursday, 0)
		require.NoError(s.T(), err)
		s.catalog.EXPECT().ListVouchers(gomock.Any(), s.session).Return(catalog, nil)
		require.NoError(s.T(), s.uc.ApplyVoucher(s.ctx, s.session, id, "WELCOME10"))

		err = s.uc.RemoveVoucher(s.ctx, s.session, id)

		require.NoError(s.T(), err)
		assert.Nil(s.T(), s.stored(id).Voucher())
	})
}

func (s *BookingCommandsTestSuite) TestSetNote() {
	id := s.seedDraft()

	require.NoError(s.T(), s.uc.SetNote(s.ctx, s.session, id, "bring extra shuttlecocks"))
	assert.Equal(s.T(), "bring extra shuttlecocks", s.stored(id).Note().String())

	long := make([]rune, 501)
	for i := range long {
		long[i] = 'a'
	}
	err := s.uc.SetNote(s.ctx, s.session, id, string(long))
	assert.True(s.T(), errs.Is(err, booking.ErrNoteTooLong))
}

func (s *BookingCommandsTestSuite) TestDiscard() {
	id := s.seedDraft()

	other := shared.Session{UserID: "user-2", Token: "other-token"}
	err := s.uc.Discard(s.ctx, other, id)
	assert.True(s.T(), errs.Is(err, commands.ErrDraftNotFound))

	require.NoError(s.T(), s.uc.Discard(s.ctx, s.session, id))
	_, err = s.store.Get(s.ctx, id)
	assert.True(s.T(), infra.IsKind(err, infra.KindNotFound))
}

func (s *BookingCommandsTestSuite) TestSubmit() {
	key := uuid.New()
	confirmation := &booking.Confirmation{BookingID: "bk-1", Status: booking.StatusPending, TotalAmount: 200000}

	selectedDraft := func() uuid.UUID {
		id := s.seedDraft()
		_, err := s.uc.SelectSlot(s.ctx, s.session, id, thursday, 0)
		require.NoError(s.T(), err)
		return id
	}

	s.Run("creates the booking", func() {
		id := selectedDraft()
		s.ledger.EXPECT().Get(gomock.Any(), key, s.session.UserID).Return(nil, notFound("submission key not found"))
		s.ledger.EXPECT().TryInsert(gomock.Any(), key, s.session.UserID, id, gomock.Any(), s.clock.Now().Add(24*time.Hour)).Return(true, nil)
		s.bookings.EXPECT().CreateBooking(gomock.Any(), s.session, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.Session, sub booking.Submission) (*booking.Confirmation, error) {
				assert.Equal(s.T(), builder.SlotID(thursday, 0), sub.SlotID)
				assert.Equal(s.T(), int64(200000), sub.Total.Int64())
				assert.NotNil(s.T(), sub.Services)
				return confirmation, nil
			})
		s.ledger.EXPECT().Complete(gomock.Any(), key, s.session.UserID, *confirmation).Return(nil)
		s.publisher.EXPECT().PublishBookingSubmitted(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, evt shared.BookingSubmittedEvent) error {
				assert.Equal(s.T(), "bk-1", evt.BookingID)
				assert.Equal(s.T(), thursday.String(), evt.Date)
				return nil
			})

		result, err := s.uc.Submit(s.ctx, s.session, id, key)

		require.NoError(s.T(), err)
		assert.False(s.T(), result.IsReplayed)
		assert.Equal(s.T(), "bk-1", result.Confirmation.BookingID)
		_, err = s.store.Get(s.ctx, id)
		assert.True(s.T(), infra.IsKind(err, infra.KindNotFound))
	})

	s.Run("replays a completed submission", func() {
		id := selectedDraft()
		s.ledger.EXPECT().Get(gomock.Any(), key, s.session.UserID).Return(&shared.SubmissionRecord{
			Key:     key,
			UserID:  s.session.UserID,
			DraftID: id,
			Status:  shared.SubmissionCompleted,
			Result:  confirmation,
		}, nil)

		result, err := s.uc.Submit(s.ctx, s.session, id, key)

		require.NoError(s.T(), err)
		assert.True(s.T(), result.IsReplayed)
		assert.Equal(s.T(), *confirmation, result.Confirmation)
	})

	s.Run("key reused for another draft", func() {
		id := selectedDraft()
		s.ledger.EXPECT().Get(gomock.Any(), key, s.session.UserID).Return(&shared.SubmissionRecord{
			DraftID: uuid.New(),
			Status:  shared.SubmissionCompleted,
			Result:  confirmation,
		}, nil)

		_, err := s.uc.Submit(s.ctx, s.session, id, key)

		assert.True(s.T(), errs.Is(err, commands.ErrDuplicateSubmission))
	})

	s.Run("submission still processing", func() {
		id := selectedDraft()
		s.ledger.EXPECT().Get(gomock.Any(), key, s.session.UserID).Return(&shared.SubmissionRecord{
			DraftID: id,
			Status:  shared.SubmissionProcessing,
		}, nil)

		_, err := s.uc.Submit(s.ctx, s.session, id, key)

		assert.True(s.T(), errs.Is(err, commands.ErrSubmissionInProgress))
	})

	s.Run("loses the race for the key", func() {
		id := selectedDraft()
		s.ledger.EXPECT().Get(gomock.Any(), key, s.session.UserID).Return(nil, notFound("submission key not found"))
		s.ledger.EXPECT().TryInsert(gomock.Any(), key, s.session.UserID, id, gomock.Any(), gomock.Any()).Return(false, nil)
		s.ledger.EXPECT().Get(gomock.Any(), key, s.session.UserID).Return(&shared.SubmissionRecord{
			DraftID: id,
			Status:  shared.SubmissionProcessing,
		}, nil)

		_, err := s.uc.Submit(s.ctx, s.session, id, key)

		assert.True(s.T(), errs.Is(err, commands.ErrSubmissionInProgress))
	})

	s.Run("slot taken refreshes the day", func() {
		id := selectedDraft()
		s.ledger.EXPECT().Get(gomock.Any(), key, s.session.UserID).Return(nil, notFound("submission key not found"))
		s.ledger.EXPECT().TryInsert(gomock.Any(), key, s.session.UserID, id, gomock.Any(), gomock.Any()).Return(true, nil)
		s.bookings.EXPECT().CreateBooking(gomock.Any(), s.session, gomock.Any()).
			Return(nil, infra.WrapRepoErr("backend returned 409", nil, infra.KindConflict))
		s.ledger.EXPECT().Release(gomock.Any(), key, s.session.UserID).Return(nil)

		booked := builder.AvailableListings(thursday, s.draft.BuildTemplates())
		booked[0].Status = slot.StatusBooked
		s.slots.EXPECT().ListTimeSlots(gomock.Any(), s.session, s.draft.CourtID, thursday).Return(booked, nil)

		_, err := s.uc.Submit(s.ctx, s.session, id, key)

		assert.True(s.T(), errs.Is(err, commands.ErrSlotTaken))
		d := s.stored(id)
		assert.Nil(s.T(), d.SelectedSlot())
		cell, ok := d.Grid().Cell(thursday, 0)
		require.True(s.T(), ok)
		assert.Equal(s.T(), slot.StatusBooked, cell.Status())
	})

	s.Run("backend rejects the booking", func() {
		id := selectedDraft()
		s.ledger.EXPECT().Get(gomock.Any(), key, s.session.UserID).Return(nil, notFound("submission key not found"))
		s.ledger.EXPECT().TryInsert(gomock.Any(), key, s.session.UserID, id, gomock.Any(), gomock.Any()).Return(true, nil)
		s.bookings.EXPECT().CreateBooking(gomock.Any(), s.session, gomock.Any()).
			Return(nil, infra.WrapRepoErr("backend returned 422", nil, infra.KindInvalid))
		s.ledger.EXPECT().Release(gomock.Any(), key, s.session.UserID).Return(nil)

		_, err := s.uc.Submit(s.ctx, s.session, id, key)

		assert.True(s.T(), errs.Is(err, commands.ErrBookingRejected))
		assert.NotNil(s.T(), s.stored(id).SelectedSlot())
	})

	s.Run("nothing selected", func() {
		id := s.seedDraft()
		s.ledger.EXPECT().Get(gomock.Any(), key, s.session.UserID).Return(nil, notFound("submission key not found"))

		_, err := s.uc.Submit(s.ctx, s.session, id, key)

		assert.True(s.T(), errs.Is(err, booking.ErrNoSlotSelected))
	})

	s.Run("selection dated before today after midnight", func() {
		s.clock.Set(time.Date(2026, time.October, 13, 23, 30, 0, 0, time.UTC))
		id := s.seedDraft()
		evening := calendar.NewDate(2026, time.October, 13)
		_, err := s.uc.SelectSlot(s.ctx, s.session, id, evening, 0)
		require.NoError(s.T(), err)
		require.NotNil(s.T(), s.stored(id).SelectedSlot())

		s.clock.Set(time.Date(2026, time.October, 14, 0, 10, 0, 0, time.UTC))
		s.ledger.EXPECT().Get(gomock.Any(), key, s.session.UserID).Return(nil, notFound("submission key not found"))

		_, err = s.uc.Submit(s.ctx, s.session, id, key)

		assert.True(s.T(), errs.Is(err, booking.ErrSlotInPast))
	})

	s.Run("missing idempotency key", func() {
		id := selectedDraft()

		_, err := s.uc.Submit(s.ctx, s.session, id, uuid.Nil)

		assert.True(s.T(), errs.Is(err, commands.ErrIdempotencyKeyRequired))
	})
}

func (s *BookingCommandsTestSuite) TestAvailabilityLoaderDropsStaleResults() {
	d := s.draft.BuildDomain()
	require.NoError(s.T(), s.store.Create(s.ctx, d))
	staleTag := availability.FetchTag{CourtID: s.draft.CourtID, WeekStart: monday.AddDays(-7)}
	s.offerEveryDay()

	loader := commands.NewAvailabilityLoader(s.slots, s.store)
	err := loader.Load(s.ctx, s.session, d.ID(), staleTag, d.Grid().Dates())

	require.NoError(s.T(), err)
	assert.Len(s.T(), s.stored(d.ID()).Grid().PendingDates(), availability.DaysPerWeek)
}
