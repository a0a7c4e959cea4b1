package components

import (
	"eventease-admin/internal/pkg/clock"
	"eventease-admin/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewVenueUseCase,
		usecase.NewEquipmentUseCase,
		usecase.NewEventGroundUseCase,
		usecase.NewOrganizerUseCase,
		usecase.NewVenueRequestUseCase,
		usecase.NewBookingUseCase,
		usecase.NewEventUseCase,
		usecase.NewReportUseCase,
		func(a usecase.AuthUseCase) usecase.TokenValidator { return a },
	),
)
