package api

import (
	"net/http"

	"shuttlesync/internal/domain/addon"
	"shuttlesync/internal/domain/booking"
	"shuttlesync/internal/domain/voucher"
	"shuttlesync/internal/handler/httperr"
	"shuttlesync/internal/pkg/errs"
	"shuttlesync/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{commands.ErrDraftNotFound, http.StatusNotFound, "Booking draft not found"},
	{commands.ErrCourtNotFound, http.StatusNotFound, "Court not found"},
	{commands.ErrServiceNotFound, http.StatusNotFound, "Service not found"},
	{addon.ErrServiceNotOffered, http.StatusNotFound, "Service not found"},
	{voucher.ErrVoucherNotFound, http.StatusNotFound, "Voucher not found"},
	{voucher.ErrVoucherIneligible, http.StatusUnprocessableEntity, "Voucher does not apply to this order"},
	{booking.ErrNoSlotSelected, http.StatusUnprocessableEntity, "Select a time slot first"},
	{booking.ErrSlotNotIdentified, http.StatusUnprocessableEntity, "Selected slot cannot be booked"},
	{booking.ErrSlotInPast, http.StatusUnprocessableEntity, "Selected slot is in the past"},
	{addon.ErrQuantityLimit, http.StatusUnprocessableEntity, "Service quantity limit reached"},
	{commands.ErrBookingRejected, http.StatusUnprocessableEntity, "Booking rejected"},
	{commands.ErrSlotTaken, http.StatusConflict, "Slot is no longer available"},
	{commands.ErrDuplicateSubmission, http.StatusConflict, "Idempotency key was used for a different request"},
	{commands.ErrSubmissionInProgress, http.StatusConflict, "Submission is currently being processed"},
	{commands.ErrIdempotencyKeyRequired, http.StatusBadRequest, "Idempotency-Key header required"},
	{commands.ErrDateOutsideWeek, http.StatusBadRequest, "Date is not in the displayed week"},
	{booking.ErrNoteTooLong, http.StatusBadRequest, "Note is too long"},
	{booking.ErrInvalidDirection, http.StatusBadRequest, "Invalid direction"},
	{booking.ErrInvalidReference, http.StatusBadRequest, "Invalid reference date"},
	{commands.ErrUpstreamUnavailable, http.StatusBadGateway, "Booking service unavailable"},
}

// abortWithUseCaseError maps usecase errors to responses. An expired upstream session
// answers 401 with the login path for the client to follow.
func abortWithUseCaseError(c *gin.Context, err error, loginPath string) {
	if errs.Is(err, commands.ErrUpstreamUnauthorized) {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Session expired", gin.H{"redirect": loginPath})
		return
	}
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
