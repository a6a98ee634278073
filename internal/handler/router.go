package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shuttlesync/internal/handler/api"
	"shuttlesync/internal/handler/middleware"
	"shuttlesync/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	draftHandler *api.BookingDraftHandler,
	catalogHandler *api.CatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg, rateLimiter)
	setupRoutes(engine, draftHandler, catalogHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, rateLimiter *middleware.RateLimiter) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(rateLimiter.Middleware())
}

func setupRoutes(engine *gin.Engine, draftHandler *api.BookingDraftHandler, catalogHandler *api.CatalogHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/courts", Handler: catalogHandler.ListCourts},
			{Method: http.MethodGet, Path: "/services", Handler: catalogHandler.ListServices},
			{Method: http.MethodGet, Path: "/vouchers", Handler: catalogHandler.ListVouchers},
		})

		drafts := apiGroup.Group("/booking-drafts")
		{
			addRoutes(drafts, []route{
				{Method: http.MethodPost, Path: "", Handler: draftHandler.Open},
				{Method: http.MethodGet, Path: "/:id", Handler: draftHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: draftHandler.Discard},
				{Method: http.MethodPost, Path: "/:id/week", Handler: draftHandler.NavigateWeek},
				{Method: http.MethodPost, Path: "/:id/days/:date/reload", Handler: draftHandler.ReloadDay},
				{Method: http.MethodPut, Path: "/:id/selection", Handler: draftHandler.SelectSlot},
				{Method: http.MethodPatch, Path: "/:id/services/:serviceId", Handler: draftHandler.AdjustService},
				{Method: http.MethodPut, Path: "/:id/voucher", Handler: draftHandler.ApplyVoucher},
				{Method: http.MethodDelete, Path: "/:id/voucher", Handler: draftHandler.RemoveVoucher},
				{Method: http.MethodPut, Path: "/:id/note", Handler: draftHandler.SetNote},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: draftHandler.Submit},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
