package usecase

import (
	"context"
	"errors"

	"eventease-admin/internal/infra"
	"eventease-admin/internal/usecase/command"
	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrVenueNotFound = errors.New("venue not found")
	ErrVenueInUse    = errors.New("venue is referenced by existing requests")
)

type VenueRepository interface {
	FindAll(ctx context.Context) ([]*readmodel.VenueRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.VenueRM, error)
	Create(ctx context.Context, cmd command.CreateVenue) (*readmodel.VenueRM, error)
	Patch(ctx context.Context, id uuid.UUID, cmd command.PatchVenue) (*readmodel.VenueRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type VenueUseCase interface {
	ListVenues(ctx context.Context) ([]*readmodel.VenueRM, error)
	GetVenue(ctx context.Context, id uuid.UUID) (*readmodel.VenueRM, error)
	CreateVenue(ctx context.Context, cmd command.CreateVenue) (*readmodel.VenueRM, error)
	UpdateVenue(ctx context.Context, id uuid.UUID, cmd command.PatchVenue) (*readmodel.VenueRM, error)
	DeleteVenue(ctx context.Context, id uuid.UUID) error
}

type venueUseCaseImpl struct {
	venueRepo VenueRepository
}

func NewVenueUseCase(venueRepo VenueRepository) VenueUseCase {
	return &venueUseCaseImpl{venueRepo: venueRepo}
}

func (u *venueUseCaseImpl) ListVenues(ctx context.Context) ([]*readmodel.VenueRM, error) {
	return u.venueRepo.FindAll(ctx)
}

func (u *venueUseCaseImpl) GetVenue(ctx context.Context, id uuid.UUID) (*readmodel.VenueRM, error) {
	v, err := u.venueRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

func (u *venueUseCaseImpl) CreateVenue(ctx context.Context, cmd command.CreateVenue) (*readmodel.VenueRM, error) {
	return u.venueRepo.Create(ctx, cmd)
}

func (u *venueUseCaseImpl) UpdateVenue(ctx context.Context, id uuid.UUID, cmd command.PatchVenue) (*readmodel.VenueRM, error) {
	v, err := u.venueRepo.Patch(ctx, id, cmd)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

func (u *venueUseCaseImpl) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	err := u.venueRepo.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrVenueNotFound
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrVenueInUse
	default:
		return err
	}
}
