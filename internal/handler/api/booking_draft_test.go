//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"shuttlesync/internal/domain/addon"
	"shuttlesync/internal/domain/booking"
	"shuttlesync/internal/domain/voucher"
	"shuttlesync/internal/handler/api"
	resdto "shuttlesync/internal/handler/dto/response"
	"shuttlesync/internal/infra"
	"shuttlesync/internal/pkg/calendar"
	"shuttlesync/internal/pkg/config"
	"shuttlesync/internal/pkg/errs"
	"shuttlesync/internal/usecase/commands"
	"shuttlesync/internal/usecase/queries"
	"shuttlesync/internal/usecase/shared"
	"shuttlesync/tests/common/httptest"
	"shuttlesync/tests/common/testutil"
	commandsmock "shuttlesync/tests/mock/commands"
	queriesmock "shuttlesync/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUserID = "user-1"

var testSession = shared.Session{UserID: testUserID, Token: "bearer-token"}

type BookingDraftHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockDraftQueries
	handler      *api.BookingDraftHandler
	draftID      uuid.UUID
	view         *queries.DraftView
}

func (s *BookingDraftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDraftQueries(s.mockCtrl)
	s.handler = api.NewBookingDraftHandler(s.mockCommands, s.mockQueries, config.AuthConfig{LoginPath: "/login"})
	s.draftID = uuid.New()
	s.view = newDraftView(s.draftID)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", testUserID)
		c.Set("access_token", strings.TrimPrefix(header, "Bearer "))
		c.Next()
	}

	drafts := s.router.Group("/booking-drafts", authMiddleware)
	drafts.POST("", s.handler.Open)
	drafts.GET("/:id", s.handler.Get)
	drafts.DELETE("/:id", s.handler.Discard)
	drafts.POST("/:id/week", s.handler.NavigateWeek)
	drafts.POST("/:id/days/:date/reload", s.handler.ReloadDay)
	drafts.PUT("/:id/selection", s.handler.SelectSlot)
	drafts.PATCH("/:id/services/:serviceId", s.handler.AdjustService)
	drafts.PUT("/:id/voucher", s.handler.ApplyVoucher)
	drafts.DELETE("/:id/voucher", s.handler.RemoveVoucher)
	drafts.PUT("/:id/note", s.handler.SetNote)
	drafts.POST("/:id/submit", s.handler.Submit)
}

func (s *BookingDraftHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingDraftHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingDraftHandlerTestSuite))
}

func newDraftView(id uuid.UUID) *queries.DraftView {
	return &queries.DraftView{
		ID:            id,
		Court:         queries.CourtView{ID: "court-1", Name: "Court A", Status: "active", Operational: true},
		ReferenceDate: "2026-10-15",
		WeekStart:     "2026-10-12",
		Today:         "2026-10-13",
		Days: []*queries.DayView{{
			Date:    "2026-10-15",
			Weekday: "Thursday",
			State:   "loaded",
			Slots: []*queries.SlotView{{
				Index: 0, SlotID: "slot-1", Date: "2026-10-15", StartTime: "05:00", EndTime: "07:00",
				Price: 200000, Status: "available", Selectable: true,
			}},
		}},
		Summary: queries.SummaryView{
			Subtotal: 200000, Total: 200000,
			SubtotalFormatted: "200.000 ₫", DiscountFormatted: "0 ₫", TotalFormatted: "200.000 ₫",
		},
		CreatedAt: time.Date(2026, time.October, 13, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, time.October, 13, 9, 5, 0, 0, time.UTC),
	}
}

func (s *BookingDraftHandlerTestSuite) expectView() {
	s.mockQueries.EXPECT().Get(gomock.Any(), testSession, s.draftID).Return(s.view, nil).Times(1)
}

func (s *BookingDraftHandlerTestSuite) url(suffix string) string {
	return "/booking-drafts/" + s.draftID.String() + suffix
}

// ================================================================================
// TestOpen
// ================================================================================

func (s *BookingDraftHandlerTestSuite) TestOpen() {
	url := "/booking-drafts"
	reqBody := map[string]any{"courtId": "court-1", "referenceDate": "2026-10-15"}

	s.Run("success: returns 201 with the loaded draft", func() {
		ref := calendar.NewDate(2026, time.October, 15)
		s.mockCommands.EXPECT().
			OpenDraft(gomock.Any(), testSession, commands.OpenDraftRequest{CourtID: "court-1", ReferenceDate: &ref}).
			Return(&commands.OpenDraftResult{DraftID: s.draftID}, nil).Times(1)
		s.expectView()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(s.draftID.String(), body.ID)
		s.Equal("2026-10-12", body.WeekStart)
		s.Require().Len(body.Days, 1)
		s.Equal("slot-1", body.Days[0].Slots[0].SlotID)
		s.Equal("200.000 ₫", body.Summary.TotalFormatted)
		s.NotNil(body.Services)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing courtId", mutate: testutil.Field("courtId", nil)},
			{name: "malformed referenceDate", mutate: testutil.Field("referenceDate", "15/10/2026")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 404 for an unknown court", func() {
		s.mockCommands.EXPECT().OpenDraft(gomock.Any(), testSession, gomock.Any()).
			Return(nil, commands.ErrCourtNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Court not found")
	})

	s.Run("error: 401 with login redirect when the backend rejects the token", func() {
		upstream := infra.WrapRepoErr("backend returned 401", nil, infra.KindUnauthorized)
		s.mockCommands.EXPECT().OpenDraft(gomock.Any(), testSession, gomock.Any()).
			Return(nil, errs.Mark(upstream, commands.ErrUpstreamUnauthorized)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Session expired")
		httptest.AssertLoginRedirect(s.T(), rec, "/login")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet / TestDiscard
// ================================================================================

func (s *BookingDraftHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.expectView()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(""), nil, "bearer-token")

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.view.UpdatedAt.Unix(), body.UpdatedAt)
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking-drafts/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 for a draft of another user", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), testSession, s.draftID).Return(nil, queries.ErrDraftNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(""), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking draft not found")
	})
}

func (s *BookingDraftHandlerTestSuite) TestDiscard() {
	s.mockCommands.EXPECT().Discard(gomock.Any(), testSession, s.draftID).Return(nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.url(""), nil, "bearer-token")

	s.Equal(http.StatusNoContent, rec.Code)
}

// ================================================================================
// Grid operations
// ================================================================================

func (s *BookingDraftHandlerTestSuite) TestNavigateWeek() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().NavigateWeek(gomock.Any(), testSession, s.draftID, booking.DirectionPrevious).Return(nil).Times(1)
		s.expectView()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/week"), map[string]any{"direction": "previous"}, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for an unknown direction", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/week"), map[string]any{"direction": "sideways"}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingDraftHandlerTestSuite) TestReloadDay() {
	s.Run("success", func() {
		date := calendar.NewDate(2026, time.October, 15)
		s.mockCommands.EXPECT().ReloadDay(gomock.Any(), testSession, s.draftID, date).Return(nil).Times(1)
		s.expectView()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/days/2026-10-15/reload"), nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when the date is outside the week", func() {
		s.mockCommands.EXPECT().ReloadDay(gomock.Any(), testSession, s.draftID, gomock.Any()).
			Return(commands.ErrDateOutsideWeek).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/days/2026-11-01/reload"), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Date is not in the displayed week")
	})
}

func (s *BookingDraftHandlerTestSuite) TestSelectSlot() {
	url := s.url("/selection")
	date := calendar.NewDate(2026, time.October, 15)

	s.Run("success: reports whether the selection changed", func() {
		s.mockCommands.EXPECT().SelectSlot(gomock.Any(), testSession, s.draftID, date, 0).
			Return(&commands.SelectSlotResult{Changed: false}, nil).Times(1)
		s.expectView()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"date": "2026-10-15", "slotIndex": 0}, "bearer-token")

		var body resdto.SelectSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.SelectionChanged)
		s.Require().NotNil(body.Draft)
		s.Equal(s.draftID.String(), body.Draft.ID)
	})

	s.Run("error: 400 on validation errors", func() {
		for name, reqBody := range map[string]map[string]any{
			"negative index": {"date": "2026-10-15", "slotIndex": -1},
			"missing index":  {"date": "2026-10-15"},
			"bad date":       {"date": "tomorrow", "slotIndex": 1},
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})
}

// ================================================================================
// Services, voucher, note
// ================================================================================

func (s *BookingDraftHandlerTestSuite) TestAdjustService() {
	url := s.url("/services/svc-water")

	s.Run("success", func() {
		s.mockCommands.EXPECT().AdjustServiceQuantity(gomock.Any(), testSession, s.draftID, "svc-water", -1).
			Return(&commands.AdjustServiceResult{Quantity: 0}, nil).Times(1)
		s.expectView()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"delta": -1}, "bearer-token")

		var body resdto.AdjustServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("svc-water", body.ServiceID)
		s.Equal(0, body.Quantity)
	})

	s.Run("error: 400 without delta", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 when delta is out of range", func() {
		for name, delta := range map[string]int{
			"too large":    100,
			"overflowing":  100000000000000,
			"too negative": -100,
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"delta": delta}, "bearer-token")
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 422 at the quantity limit", func() {
		s.mockCommands.EXPECT().AdjustServiceQuantity(gomock.Any(), testSession, s.draftID, "svc-water", 5).
			Return(nil, addon.ErrQuantityLimit).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"delta": 5}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Service quantity limit reached")
	})

	s.Run("error: 404 for an unknown service", func() {
		s.mockCommands.EXPECT().AdjustServiceQuantity(gomock.Any(), testSession, s.draftID, "svc-water", 1).
			Return(nil, commands.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"delta": 1}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})

	s.Run("error: 502 when the backend is down", func() {
		s.mockCommands.EXPECT().AdjustServiceQuantity(gomock.Any(), testSession, s.draftID, "svc-water", 1).
			Return(nil, errs.Mark(errors.New("dial tcp"), commands.ErrUpstreamUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"delta": 1}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Booking service unavailable")
	})
}

func (s *BookingDraftHandlerTestSuite) TestApplyVoucher() {
	url := s.url("/voucher")

	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "success", expectCode: http.StatusOK},
		{name: "unknown code", err: voucher.ErrVoucherNotFound, expectCode: http.StatusNotFound, expectMsg: "Voucher not found"},
		{name: "below minimum", err: voucher.ErrVoucherIneligible, expectCode: http.StatusUnprocessableEntity, expectMsg: "Voucher does not apply"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockCommands.EXPECT().ApplyVoucher(gomock.Any(), testSession, s.draftID, "welcome10").Return(tt.err).Times(1)
			if tt.err == nil {
				s.expectView()
			}

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"code": "welcome10"}, "bearer-token")

			if tt.err == nil {
				httptest.AssertSuccessResponse(s.T(), rec, tt.expectCode, nil)
				return
			}
			httptest.AssertErrorResponse(s.T(), rec, tt.expectCode, tt.expectMsg)
		})
	}

	s.Run("remove", func() {
		s.mockCommands.EXPECT().RemoveVoucher(gomock.Any(), testSession, s.draftID).Return(nil).Times(1)
		s.expectView()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *BookingDraftHandlerTestSuite) TestSetNote() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().SetNote(gomock.Any(), testSession, s.draftID, "near the window").Return(nil).Times(1)
		s.expectView()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url("/note"), map[string]any{"note": "near the window"}, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when too long", func() {
		long := strings.Repeat("a", 501)
		s.mockCommands.EXPECT().SetNote(gomock.Any(), testSession, s.draftID, long).Return(booking.ErrNoteTooLong).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url("/note"), map[string]any{"note": long}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Note is too long")
	})
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *BookingDraftHandlerTestSuite) TestSubmit() {
	url := s.url("/submit")
	key := uuid.New()
	headers := map[string]string{"Idempotency-Key": key.String()}
	confirmation := booking.Confirmation{BookingID: "bk-1", Status: booking.StatusPending, TotalAmount: 180000}

	s.Run("success: 201 Created", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), testSession, s.draftID, key).
			Return(&commands.SubmitResult{Confirmation: confirmation}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil, "bearer-token", headers)

		var body resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("bk-1", body.BookingID)
		s.Equal("pending", body.Status)
		s.Equal(int64(180000), body.TotalAmount)
		s.Equal("180.000 ₫", body.TotalFormatted)
		s.False(body.Replayed)
	})

	s.Run("success: 200 OK on replay", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), testSession, s.draftID, key).
			Return(&commands.SubmitResult{Confirmation: confirmation, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil, "bearer-token", headers)

		var body resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Replayed)
	})

	s.Run("error: 400 without a valid Idempotency-Key", func() {
		for name, h := range map[string]map[string]string{
			"missing":  nil,
			"not uuid": {"Idempotency-Key": "abc"},
			"nil uuid": {"Idempotency-Key": uuid.Nil.String()},
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil, "bearer-token", h)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
			})
		}
	})

	s.Run("error: mapped usecase errors", func() {
		tests := []struct {
			err        error
			expectCode int
			expectMsg  string
		}{
			{commands.ErrSlotTaken, http.StatusConflict, "Slot is no longer available"},
			{commands.ErrDuplicateSubmission, http.StatusConflict, "different request"},
			{commands.ErrSubmissionInProgress, http.StatusConflict, "being processed"},
			{booking.ErrNoSlotSelected, http.StatusUnprocessableEntity, "Select a time slot"},
			{booking.ErrSlotInPast, http.StatusUnprocessableEntity, "Selected slot is in the past"},
			{commands.ErrBookingRejected, http.StatusUnprocessableEntity, "Booking rejected"},
			{errors.New("unexpected"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tt := range tests {
			s.Run(tt.err.Error(), func() {
				s.mockCommands.EXPECT().Submit(gomock.Any(), testSession, s.draftID, key).Return(nil, tt.err).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil, "bearer-token", headers)

				httptest.AssertErrorResponse(s.T(), rec, tt.expectCode, tt.expectMsg)
			})
		}
	})
}
