package components

import (
	repo_impl "eventease-admin/internal/infra/repository"
	"eventease-admin/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewStaffRepository,
			fx.As(new(usecase.StaffRepository)),
		),
		fx.Annotate(
			repo_impl.NewVenueRepository,
			fx.As(new(usecase.VenueRepository)),
		),
		fx.Annotate(
			repo_impl.NewEquipmentRepository,
			fx.As(new(usecase.EquipmentRepository)),
		),
		fx.Annotate(
			repo_impl.NewEventGroundRepository,
			fx.As(new(usecase.EventGroundRepository)),
		),
		fx.Annotate(
			repo_impl.NewOrganizerRepository,
			fx.As(new(usecase.OrganizerRepository)),
		),
		fx.Annotate(
			repo_impl.NewVenueRequestRepository,
			fx.As(new(usecase.VenueRequestRepository)),
		),
		fx.Annotate(
			repo_impl.NewQuotationRepository,
			fx.As(new(usecase.QuotationRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
	),
)
