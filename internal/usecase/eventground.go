package usecase

import (
	"context"
	"errors"

	"eventease-admin/internal/infra"
	"eventease-admin/internal/usecase/command"
	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrEventGroundNotFound = errors.New("event ground not found")

type EventGroundRepository interface {
	FindAll(ctx context.Context) ([]*readmodel.EventGroundRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.EventGroundRM, error)
	Create(ctx context.Context, cmd command.CreateEventGround) (*readmodel.EventGroundRM, error)
	Patch(ctx context.Context, id uuid.UUID, cmd command.PatchEventGround) (*readmodel.EventGroundRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventGroundUseCase interface {
	ListEventGrounds(ctx context.Context) ([]*readmodel.EventGroundRM, error)
	GetEventGround(ctx context.Context, id uuid.UUID) (*readmodel.EventGroundRM, error)
	CreateEventGround(ctx context.Context, cmd command.CreateEventGround) (*readmodel.EventGroundRM, error)
	UpdateEventGround(ctx context.Context, id uuid.UUID, cmd command.PatchEventGround) (*readmodel.EventGroundRM, error)
	DeleteEventGround(ctx context.Context, id uuid.UUID) error
}

type eventGroundUseCaseImpl struct {
	groundRepo EventGroundRepository
}

func NewEventGroundUseCase(groundRepo EventGroundRepository) EventGroundUseCase {
	return &eventGroundUseCaseImpl{groundRepo: groundRepo}
}

func (u *eventGroundUseCaseImpl) ListEventGrounds(ctx context.Context) ([]*readmodel.EventGroundRM, error) {
	return u.groundRepo.FindAll(ctx)
}

func (u *eventGroundUseCaseImpl) GetEventGround(ctx context.Context, id uuid.UUID) (*readmodel.EventGroundRM, error) {
	g, err := u.groundRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventGroundNotFound
		}
		return nil, err
	}
	return g, nil
}

func (u *eventGroundUseCaseImpl) CreateEventGround(ctx context.Context, cmd command.CreateEventGround) (*readmodel.EventGroundRM, error) {
	return u.groundRepo.Create(ctx, cmd)
}

func (u *eventGroundUseCaseImpl) UpdateEventGround(ctx context.Context, id uuid.UUID, cmd command.PatchEventGround) (*readmodel.EventGroundRM, error) {
	g, err := u.groundRepo.Patch(ctx, id, cmd)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventGroundNotFound
		}
		return nil, err
	}
	return g, nil
}

func (u *eventGroundUseCaseImpl) DeleteEventGround(ctx context.Context, id uuid.UUID) error {
	err := u.groundRepo.Delete(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEventGroundNotFound
		}
		return err
	}
	return nil
}
