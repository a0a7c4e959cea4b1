package repository

import (
	"context"

	"eventease-admin/internal/infra"
	"eventease-admin/internal/pkg/pgconv"
	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const organizerColumns = `id, first_name, last_name, organization_name, email, phone, address, is_verified, created_at`

type OrganizerRepository struct {
	pool *pgxpool.Pool
}

func NewOrganizerRepository(pool *pgxpool.Pool) *OrganizerRepository {
	return &OrganizerRepository{pool: pool}
}

func (r *OrganizerRepository) FindAll(ctx context.Context) ([]*readmodel.OrganizerRM, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+organizerColumns+` FROM organizers ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list organizers", err)
	}
	defer rows.Close()

	var organizers []*readmodel.OrganizerRM
	for rows.Next() {
		var o readmodel.OrganizerRM
		err := rows.Scan(
			&o.ID, &o.FirstName, &o.LastName, &o.OrganizationName,
			&o.Email, &o.Phone, &o.Address, &o.IsVerified, &o.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan organizer row", err)
		}
		organizers = append(organizers, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read organizer rows", err)
	}
	return organizers, nil
}

func (r *OrganizerRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.OrganizerRM, error) {
	var o readmodel.OrganizerRM
	err := r.pool.QueryRow(ctx, `SELECT `+organizerColumns+` FROM organizers WHERE id = $1`, id).Scan(
		&o.ID, &o.FirstName, &o.LastName, &o.OrganizationName,
		&o.Email, &o.Phone, &o.Address, &o.IsVerified, &o.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("organizer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find organizer by ID", err)
	}
	return &o, nil
}
