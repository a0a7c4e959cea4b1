package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventease-admin/internal/handler/api"
	"eventease-admin/internal/handler/middleware"
	"eventease-admin/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Venue        *api.VenueHandler
	Equipment    *api.EquipmentHandler
	EventGround  *api.EventGroundHandler
	VenueRequest *api.VenueRequestHandler
	Organizer    *api.OrganizerHandler
	Booking      *api.BookingHandler
	Event        *api.EventHandler
	Report       *api.ReportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodPost, Path: "/change_password", Handler: h.Auth.ChangePassword},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		protected := apiGroup.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			addRoutes(protected.Group("/venues"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Venue.ListVenues},
				{Method: http.MethodPost, Path: "", Handler: h.Venue.CreateVenue},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Venue.GetVenue},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Venue.UpdateVenue},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Venue.DeleteVenue},
			})

			addRoutes(protected.Group("/equipment"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Equipment.ListEquipment},
				{Method: http.MethodPost, Path: "", Handler: h.Equipment.CreateEquipment},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Equipment.GetEquipment},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Equipment.UpdateEquipment},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Equipment.DeleteEquipment},
			})

			addRoutes(protected.Group("/event-grounds"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.EventGround.ListEventGrounds},
				{Method: http.MethodPost, Path: "", Handler: h.EventGround.CreateEventGround},
				{Method: http.MethodGet, Path: "/:id", Handler: h.EventGround.GetEventGround},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.EventGround.UpdateEventGround},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.EventGround.DeleteEventGround},
			})

			addRoutes(protected.Group("/venue-requests"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.VenueRequest.ListRequests},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.VenueRequest.MarkRead},
			})

			addRoutes(protected.Group("/venue-request-responses"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.VenueRequest.ListQuotations},
				{Method: http.MethodPost, Path: "", Handler: h.VenueRequest.IssueQuotation},
			})

			addRoutes(protected.Group("/event-responses"), []route{
				{Method: http.MethodPost, Path: "", Handler: h.VenueRequest.AcceptQuotation},
			})

			addRoutes(protected.Group("/organizers"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Organizer.ListOrganizers},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Organizer.GetOrganizer},
			})

			addRoutes(protected.Group("/bookings"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
			})

			addRoutes(protected.Group("/events"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Event.ListEvents},
				{Method: http.MethodGet, Path: "/calendar", Handler: h.Event.Calendar},
			})

			addRoutes(protected.Group("/reports"), []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Report.BookingsReport},
				{Method: http.MethodGet, Path: "/bookings/export", Handler: h.Report.ExportBookings},
				{Method: http.MethodGet, Path: "/performance", Handler: h.Report.PerformanceReport},
				{Method: http.MethodGet, Path: "/financial", Handler: h.Report.FinancialReport},
			})
		}
	}
}

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
