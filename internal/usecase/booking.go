package usecase

import (
	"context"
	"errors"

	"eventease-admin/internal/infra"
	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingUseCase interface {
	ListBookings(ctx context.Context) ([]*readmodel.BookingRM, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
}

func NewBookingUseCase(bookingRepo BookingRepository) BookingUseCase {
	return &bookingUseCaseImpl{bookingRepo: bookingRepo}
}

func (u *bookingUseCaseImpl) ListBookings(ctx context.Context) ([]*readmodel.BookingRM, error) {
	return u.bookingRepo.FindAll(ctx)
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	b, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}
