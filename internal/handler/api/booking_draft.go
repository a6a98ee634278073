package api

import (
	"net/http"

	reqdto "shuttlesync/internal/handler/dto/request"
	resdto "shuttlesync/internal/handler/dto/response"
	"shuttlesync/internal/handler/httperr"
	"shuttlesync/internal/handler/middleware"
	"shuttlesync/internal/pkg/calendar"
	"shuttlesync/internal/pkg/config"
	"shuttlesync/internal/usecase/commands"
	"shuttlesync/internal/usecase/queries"
	"shuttlesync/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingSession        = httperr.Reason("missing session")
	errInvalidIdempotencyKey = httperr.Reason("invalid idempotency key format")
)

type BookingDraftHandler struct {
	cmds commands.BookingCommands
	q    queries.DraftQueries
	auth config.AuthConfig
}

func NewBookingDraftHandler(cmds commands.BookingCommands, q queries.DraftQueries, auth config.AuthConfig) *BookingDraftHandler {
	return &BookingDraftHandler{cmds: cmds, q: q, auth: auth}
}

// @Summary Open booking draft
// @Description Start a booking for a court. Loads the week around referenceDate (default today).
// @Tags booking-drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenDraftRequest true "Open draft request"
// @Success 201 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/booking-drafts [post]
func (h *BookingDraftHandler) Open(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req reqdto.OpenDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reference date", nil)
		return
	}
	result, err := h.cmds.OpenDraft(c.Request.Context(), s, cmd)
	if err != nil {
		abortWithUseCaseError(c, err, h.auth.LoginPath)
		return
	}
	h.respondWithDraft(c, s, result.DraftID, http.StatusCreated)
}

// @Summary Get booking draft
// @Description Weekly grid, selection, services, voucher and priced summary
// @Tags booking-drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/booking-drafts/{id} [get]
func (h *BookingDraftHandler) Get(c *gin.Context) {
	s, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}
	h.respondWithDraft(c, s, id, http.StatusOK)
}

// @Summary Discard booking draft
// @Tags booking-drafts
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/booking-drafts/{id} [delete]
func (h *BookingDraftHandler) Discard(c *gin.Context) {
	s, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}
	if err := h.cmds.Discard(c.Request.Context(), s, id); err != nil {
		abortWithUseCaseError(c, err, h.auth.LoginPath)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Navigate week
// @Description Move to the next or previous week. Clears the selection.
// @Tags booking-drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body reqdto.NavigateWeekRequest true "Direction"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/booking-drafts/{id}/week [post]
func (h *BookingDraftHandler) NavigateWeek(c *gin.Context) {
	s, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}
	var req reqdto.NavigateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.NavigateWeek(c.Request.Context(), s, id, req.ToDomain()); err != nil {
		abortWithUseCaseError(c, err, h.auth.LoginPath)
		return
	}
	h.respondWithDraft(c, s, id, http.StatusOK)
}

// @Summary Reload day
// @Description Refetch availability for one day of the displayed week
// @Tags booking-drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/booking-drafts/{id}/days/{date}/reload [post]
func (h *BookingDraftHandler) ReloadDay(c *gin.Context) {
	s, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}
	date, err := calendar.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	if err := h.cmds.ReloadDay(c.Request.Context(), s, id, date); err != nil {
		abortWithUseCaseError(c, err, h.auth.LoginPath)
		return
	}
	h.respondWithDraft(c, s, id, http.StatusOK)
}

// @Summary Select slot
// @Description Select one available slot. Invalid targets leave the selection unchanged.
// @Tags booking-drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body reqdto.SelectSlotRequest true "Slot position"
// @Success 200 {object} resdto.SelectSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/booking-drafts/{id}/selection [put]
func (h *BookingDraftHandler) SelectSlot(c *gin.Context) {
	s, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}
	var req reqdto.SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	date, index, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	result, err := h.cmds.SelectSlot(c.Request.Context(), s, id, date, index)
	if err != nil {
		abortWithUseCaseError(c, err, h.auth.LoginPath)
		return
	}
	draft, ok := h.loadDraft(c, s, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, &resdto.SelectSlotResponse{SelectionChanged: result.Changed, Draft: draft})
}

// @Summary Adjust service quantity
// @Description Add delta to a service line. Quantities never go below zero.
// @Tags booking-drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param serviceId path string true "Service ID"
// @Param request body reqdto.AdjustServiceRequest true "Quantity delta"
// @Success 200 {object} resdto.AdjustServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/booking-drafts/{id}/services/{serviceId} [patch]
func (h *BookingDraftHandler) AdjustService(c *gin.Context) {
	s, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}
	var req reqdto.AdjustServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	serviceID := c.Param("serviceId")
	result, err := h.cmds.AdjustServiceQuantity(c.Request.Context(), s, id, serviceID, *req.Delta)
	if err != nil {
		abortWithUseCaseError(c, err, h.auth.LoginPath)
		return
	}
	draft, ok := h.loadDraft(c, s, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, &resdto.AdjustServiceResponse{ServiceID: serviceID, Quantity: result.Quantity, Draft: draft})
}

// @Summary Apply voucher
// @Description Apply a voucher code (case-insensitive). The draft is unchanged on failure.
// @Tags booking-drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body reqdto.ApplyVoucherRequest true "Voucher code"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/booking-drafts/{id}/voucher [put]
func (h *BookingDraftHandler) ApplyVoucher(c *gin.Context) {
	s, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}
	var req reqdto.ApplyVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.ApplyVoucher(c.Request.Context(), s, id, req.Code); err != nil {
		abortWithUseCaseError(c, err, h.auth.LoginPath)
		return
	}
	h.respondWithDraft(c, s, id, http.StatusOK)
}

// @Summary Remove voucher
// @Tags booking-drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Router /api/booking-drafts/{id}/voucher [delete]
func (h *BookingDraftHandler) RemoveVoucher(c *gin.Context) {
	s, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}
	if err := h.cmds.RemoveVoucher(c.Request.Context(), s, id); err != nil {
		abortWithUseCaseError(c, err, h.auth.LoginPath)
		return
	}
	h.respondWithDraft(c, s, id, http.StatusOK)
}

// @Summary Set note
// @Tags booking-drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body reqdto.SetNoteRequest true "Note"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/booking-drafts/{id}/note [put]
func (h *BookingDraftHandler) SetNote(c *gin.Context) {
	s, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}
	var req reqdto.SetNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.SetNote(c.Request.Context(), s, id, req.Note); err != nil {
		abortWithUseCaseError(c, err, h.auth.LoginPath)
		return
	}
	h.respondWithDraft(c, s, id, http.StatusOK)
}

// @Summary Submit booking
// @Description Send the draft to the backend. Retries with the same Idempotency-Key replay the first result.
// @Tags booking-drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param Idempotency-Key header string true "UUID identifying this submission"
// @Success 201 {object} resdto.SubmitResponse
// @Success 200 {object} resdto.SubmitResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/booking-drafts/{id}/submit [post]
func (h *BookingDraftHandler) Submit(c *gin.Context) {
	s, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}
	key, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Valid Idempotency-Key header required", nil)
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), s, id, key)
	if err != nil {
		abortWithUseCaseError(c, err, h.auth.LoginPath)
		return
	}
	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromSubmitResult(result))
}

func (h *BookingDraftHandler) session(c *gin.Context) (shared.Session, bool) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Unauthorized", gin.H{"redirect": h.auth.LoginPath})
		return shared.Session{}, false
	}
	return s, true
}

func (h *BookingDraftHandler) sessionAndID(c *gin.Context) (shared.Session, uuid.UUID, bool) {
	s, ok := h.session(c)
	if !ok {
		return shared.Session{}, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return shared.Session{}, uuid.Nil, false
	}
	return s, id, true
}

func (h *BookingDraftHandler) loadDraft(c *gin.Context, s shared.Session, id uuid.UUID) (*resdto.DraftResponse, bool) {
	view, err := h.q.Get(c.Request.Context(), s, id)
	if err != nil {
		abortWithUseCaseError(c, err, h.auth.LoginPath)
		return nil, false
	}
	return resdto.FromDraftView(view), true
}

func (h *BookingDraftHandler) respondWithDraft(c *gin.Context, s shared.Session, id uuid.UUID, status int) {
	draft, ok := h.loadDraft(c, s, id)
	if !ok {
		return
	}
	c.JSON(status, draft)
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, commands.ErrIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil || key == uuid.Nil {
		return uuid.Nil, errInvalidIdempotencyKey
	}

	return key, nil
}
