package api

import (
	"net/http"

	resdto "shuttlesync/internal/handler/dto/response"
	"shuttlesync/internal/handler/httperr"
	"shuttlesync/internal/handler/middleware"
	"shuttlesync/internal/pkg/config"
	"shuttlesync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q    queries.CatalogQueries
	auth config.AuthConfig
}

func NewCatalogHandler(q queries.CatalogQueries, auth config.AuthConfig) *CatalogHandler {
	return &CatalogHandler{q: q, auth: auth}
}

// @Summary List courts
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CourtResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/courts [get]
func (h *CatalogHandler) ListCourts(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Unauthorized", gin.H{"redirect": h.auth.LoginPath})
		return
	}
	items, err := h.q.ListCourts(c.Request.Context(), s)
	if err != nil {
		abortWithUseCaseError(c, err, h.auth.LoginPath)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourtViews(items))
}

// @Summary List add-on services
// @Description Services grouped by category
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ServiceCategoryResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Unauthorized", gin.H{"redirect": h.auth.LoginPath})
		return
	}
	items, err := h.q.ListServices(c.Request.Context(), s)
	if err != nil {
		abortWithUseCaseError(c, err, h.auth.LoginPath)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceCategoryViews(items))
}

// @Summary List vouchers
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VoucherResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/vouchers [get]
func (h *CatalogHandler) ListVouchers(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Unauthorized", gin.H{"redirect": h.auth.LoginPath})
		return
	}
	items, err := h.q.ListVouchers(c.Request.Context(), s)
	if err != nil {
		abortWithUseCaseError(c, err, h.auth.LoginPath)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVoucherViews(items))
}
