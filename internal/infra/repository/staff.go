package repository

import (
	"context"

	"eventease-admin/internal/infra"
	"eventease-admin/internal/pkg/pgconv"
	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StaffRepository struct {
	pool *pgxpool.Pool
}

func NewStaffRepository(pool *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{pool: pool}
}

func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (*readmodel.StaffRM, string, error) {
	var (
		s    readmodel.StaffRM
		hash string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, first_name, last_name, role, created_at
		FROM staff WHERE lower(email) = lower($1)`, email,
	).Scan(&s.ID, &s.Email, &hash, &s.FirstName, &s.LastName, &s.Role, &s.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find staff by email", err)
	}
	return &s, hash, nil
}

func (r *StaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.StaffRM, error) {
	var s readmodel.StaffRM
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, first_name, last_name, role, created_at
		FROM staff WHERE id = $1`, id,
	).Scan(&s.ID, &s.Email, &s.FirstName, &s.LastName, &s.Role, &s.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff by ID", err)
	}
	return &s, nil
}

func (r *StaffRepository) PasswordHash(ctx context.Context, id uuid.UUID) (string, error) {
	var hash string
	err := r.pool.QueryRow(ctx, `SELECT password_hash FROM staff WHERE id = $1`, id).Scan(&hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to load staff password hash", err)
	}
	return hash, nil
}

func (r *StaffRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE staff SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update staff password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("staff not found", nil, infra.KindNotFound)
	}
	return nil
}
