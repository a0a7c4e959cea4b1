package usecase

import (
	"context"
	"errors"

	"eventease-admin/internal/infra"
	"eventease-admin/internal/usecase/command"
	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrEquipmentNotFound = errors.New("equipment not found")

type EquipmentRepository interface {
	FindAll(ctx context.Context) ([]*readmodel.EquipmentRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.EquipmentRM, error)
	Create(ctx context.Context, cmd command.CreateEquipment) (*readmodel.EquipmentRM, error)
	Patch(ctx context.Context, id uuid.UUID, cmd command.PatchEquipment) (*readmodel.EquipmentRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type EquipmentUseCase interface {
	ListEquipment(ctx context.Context) ([]*readmodel.EquipmentRM, error)
	GetEquipment(ctx context.Context, id uuid.UUID) (*readmodel.EquipmentRM, error)
	CreateEquipment(ctx context.Context, cmd command.CreateEquipment) (*readmodel.EquipmentRM, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, cmd command.PatchEquipment) (*readmodel.EquipmentRM, error)
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
}

type equipmentUseCaseImpl struct {
	equipmentRepo EquipmentRepository
}

func NewEquipmentUseCase(equipmentRepo EquipmentRepository) EquipmentUseCase {
	return &equipmentUseCaseImpl{equipmentRepo: equipmentRepo}
}

func (u *equipmentUseCaseImpl) ListEquipment(ctx context.Context) ([]*readmodel.EquipmentRM, error) {
	return u.equipmentRepo.FindAll(ctx)
}

func (u *equipmentUseCaseImpl) GetEquipment(ctx context.Context, id uuid.UUID) (*readmodel.EquipmentRM, error) {
	e, err := u.equipmentRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return e, nil
}

func (u *equipmentUseCaseImpl) CreateEquipment(ctx context.Context, cmd command.CreateEquipment) (*readmodel.EquipmentRM, error) {
	return u.equipmentRepo.Create(ctx, cmd)
}

func (u *equipmentUseCaseImpl) UpdateEquipment(ctx context.Context, id uuid.UUID, cmd command.PatchEquipment) (*readmodel.EquipmentRM, error) {
	e, err := u.equipmentRepo.Patch(ctx, id, cmd)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return e, nil
}

func (u *equipmentUseCaseImpl) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	err := u.equipmentRepo.Delete(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEquipmentNotFound
		}
		return err
	}
	return nil
}
