package usecase

import (
	"context"
	"errors"

	"eventease-admin/internal/domain/booking"
	"eventease-admin/internal/infra"
	"eventease-admin/internal/usecase/command"
	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrVenueRequestNotFound = errors.New("venue request not found")
	ErrQuotationNotFound    = errors.New("quotation not found")
	ErrAlreadyQuoted        = errors.New("request already has a quotation")
	ErrAlreadyAccepted      = errors.New("quotation already accepted")
	ErrInvalidQuotation     = errors.New("invalid quotation amounts")
)

type VenueRequestRepository interface {
	FindAll(ctx context.Context, onlyPending bool) ([]*readmodel.VenueRequestRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.VenueRequestRM, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type QuotationRepository interface {
	Create(ctx context.Context, cmd command.CreateQuotation) (*readmodel.QuotationRM, error)
	FindAll(ctx context.Context) ([]*readmodel.QuotationRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.QuotationRM, error)
}

type BookingRepository interface {
	FindAll(ctx context.Context) ([]*readmodel.BookingRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	CreateFromQuotation(ctx context.Context, quotationID uuid.UUID, status string) (*readmodel.BookingRM, error)
}

type VenueRequestUseCase interface {
	ListRequests(ctx context.Context, includeResponded bool) ([]*readmodel.VenueRequestRM, error)
	MarkRequestRead(ctx context.Context, id uuid.UUID) error
	ListQuotations(ctx context.Context) ([]*readmodel.QuotationRM, error)
	IssueQuotation(ctx context.Context, cmd command.CreateQuotation) (*readmodel.QuotationRM, error)
	AcceptQuotation(ctx context.Context, quotationID uuid.UUID) (*readmodel.BookingRM, error)
}

type venueRequestUseCaseImpl struct {
	requestRepo   VenueRequestRepository
	quotationRepo QuotationRepository
	bookingRepo   BookingRepository
}

func NewVenueRequestUseCase(
	requestRepo VenueRequestRepository,
	quotationRepo QuotationRepository,
	bookingRepo BookingRepository,
) VenueRequestUseCase {
	return &venueRequestUseCaseImpl{
		requestRepo:   requestRepo,
		quotationRepo: quotationRepo,
		bookingRepo:   bookingRepo,
	}
}

func (u *venueRequestUseCaseImpl) ListRequests(ctx context.Context, includeResponded bool) ([]*readmodel.VenueRequestRM, error) {
	return u.requestRepo.FindAll(ctx, !includeResponded)
}

func (u *venueRequestUseCaseImpl) MarkRequestRead(ctx context.Context, id uuid.UUID) error {
	err := u.requestRepo.MarkRead(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrVenueRequestNotFound
		}
		return err
	}
	return nil
}

func (u *venueRequestUseCaseImpl) ListQuotations(ctx context.Context) ([]*readmodel.QuotationRM, error) {
	return u.quotationRepo.FindAll(ctx)
}

// IssueQuotation creates the staff response; on success the request drops out
// of the pending list.
func (u *venueRequestUseCaseImpl) IssueQuotation(ctx context.Context, cmd command.CreateQuotation) (*readmodel.QuotationRM, error) {
	if cmd.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidQuotation
	}
	for _, rate := range cmd.DailyRates {
		if rate.IsNegative() {
			return nil, ErrInvalidQuotation
		}
	}

	q, err := u.quotationRepo.Create(ctx, cmd)
	switch {
	case err == nil:
		return q, nil
	case infra.IsKind(err, infra.KindDuplicateKey):
		return nil, ErrAlreadyQuoted
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return nil, ErrVenueRequestNotFound
	default:
		return nil, err
	}
}

// AcceptQuotation records the organizer's acceptance and derives a tentative
// booking carrying the quoted amounts.
func (u *venueRequestUseCaseImpl) AcceptQuotation(ctx context.Context, quotationID uuid.UUID) (*readmodel.BookingRM, error) {
	b, err := u.bookingRepo.CreateFromQuotation(ctx, quotationID, booking.StatusTentative.String())
	switch {
	case err == nil:
		return b, nil
	case infra.IsKind(err, infra.KindNotFound):
		return nil, ErrQuotationNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return nil, ErrAlreadyAccepted
	default:
		return nil, err
	}
}
