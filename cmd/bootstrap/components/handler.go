package components

import (
	"eventease-admin/internal/handler"
	"eventease-admin/internal/handler/api"
	"eventease-admin/internal/handler/middleware"
	"eventease-admin/internal/pkg/config"
	"eventease-admin/internal/pkg/jwt"
	"eventease-admin/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewVenueHandler,
		api.NewEquipmentHandler,
		api.NewEventGroundHandler,
		api.NewVenueRequestHandler,
		api.NewOrganizerHandler,
		api.NewBookingHandler,
		api.NewEventHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config, jwtService *jwt.Service) *api.AuthHandler {
	return api.NewAuthHandler(authUseCase, cfg.Cookie, jwtService.TokenDuration())
}

func NewHandlers(
	auth *api.AuthHandler,
	venue *api.VenueHandler,
	equipment *api.EquipmentHandler,
	eventGround *api.EventGroundHandler,
	venueRequest *api.VenueRequestHandler,
	organizer *api.OrganizerHandler,
	booking *api.BookingHandler,
	event *api.EventHandler,
	report *api.ReportHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Venue:        venue,
		Equipment:    equipment,
		EventGround:  eventGround,
		VenueRequest: venueRequest,
		Organizer:    organizer,
		Booking:      booking,
		Event:        event,
		Report:       report,
	}
}
