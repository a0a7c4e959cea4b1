package usecase

import (
	"context"
	"errors"

	"eventease-admin/internal/infra"
	"eventease-admin/internal/report/tabular"
	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrOrganizerNotFound = errors.New("organizer not found")

type OrganizerRepository interface {
	FindAll(ctx context.Context) ([]*readmodel.OrganizerRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.OrganizerRM, error)
}

// OrganizerFilter mirrors the directory screen controls: a free-text search
// and a verified/unverified selector ("all" means no constraint).
type OrganizerFilter struct {
	Search   string
	Verified string
}

type OrganizerUseCase interface {
	ListOrganizers(ctx context.Context, filter OrganizerFilter) ([]*readmodel.OrganizerRM, error)
	GetOrganizer(ctx context.Context, id uuid.UUID) (*readmodel.OrganizerRM, error)
}

type organizerUseCaseImpl struct {
	organizerRepo OrganizerRepository
}

func NewOrganizerUseCase(organizerRepo OrganizerRepository) OrganizerUseCase {
	return &organizerUseCaseImpl{organizerRepo: organizerRepo}
}

func (u *organizerUseCaseImpl) ListOrganizers(ctx context.Context, filter OrganizerFilter) ([]*readmodel.OrganizerRM, error) {
	organizers, err := u.organizerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	verified := func(o *readmodel.OrganizerRM) string {
		if o.IsVerified {
			return "verified"
		}
		return "unverified"
	}

	return tabular.Filter(organizers,
		tabular.TextSearch(filter.Search,
			func(o *readmodel.OrganizerRM) string { return o.FullName() },
			func(o *readmodel.OrganizerRM) string { return o.OrganizationName },
			func(o *readmodel.OrganizerRM) string { return o.Email },
		),
		tabular.FieldEquals(filter.Verified, verified),
	), nil
}

func (u *organizerUseCaseImpl) GetOrganizer(ctx context.Context, id uuid.UUID) (*readmodel.OrganizerRM, error) {
	o, err := u.organizerRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrganizerNotFound
		}
		return nil, err
	}
	return o, nil
}
