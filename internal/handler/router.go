package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sauna-booking/internal/handler/api"
	"sauna-booking/internal/handler/middleware"
	"sauna-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Reservation  *api.ReservationHandler
	Admin        *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, adminMiddleware *middleware.AdminMiddleware, limiter middleware.RateLimiter, logger *middleware.Logger) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, adminMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(middleware.NotFound())
	engine.NoMethod(middleware.MethodNotAllowed())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, adminMiddleware *middleware.AdminMiddleware, limiter middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		bookingGroup := apiGroup.Group("/booking")
		addRoutes(bookingGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: handlers.Availability.GetAvailability},
			{
				Method:  http.MethodPost,
				Path:    "/reservations",
				Handler: handlers.Reservation.Reserve,
				Mw:      []gin.HandlerFunc{middleware.RateLimit(limiter, "reserve")},
			},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(adminMiddleware.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/sessions", Handler: handlers.Admin.ListSessions},
			{Method: http.MethodGet, Path: "/reservations", Handler: handlers.Admin.ListReservations},
			{Method: http.MethodPost, Path: "/slots", Handler: handlers.Admin.UpdateSlot},
			{Method: http.MethodPost, Path: "/slots/clear", Handler: handlers.Admin.ClearSlot},
			{Method: http.MethodPost, Path: "/days/block", Handler: handlers.Admin.BlockDay},
			{Method: http.MethodPost, Path: "/days/unblock", Handler: handlers.Admin.UnblockDay},
			{Method: http.MethodPost, Path: "/days/reset", Handler: handlers.Admin.ResetDay},
			{Method: http.MethodDelete, Path: "/reservations/:id", Handler: handlers.Admin.CancelReservation},
			{Method: http.MethodGet, Path: "/actions", Handler: handlers.Admin.DispatchQuery},
			{Method: http.MethodPost, Path: "/actions", Handler: handlers.Admin.Dispatch},
		})
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
