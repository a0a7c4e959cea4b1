package repository

import (
	"context"
	"fmt"
	"strings"

	"eventease-admin/internal/infra"
	"eventease-admin/internal/pkg/pgconv"
	"eventease-admin/internal/usecase/command"
	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const venueColumns = `id, name, location, capacity, price_per_day, amenities, available, description, images, created_at, updated_at`

type VenueRepository struct {
	pool *pgxpool.Pool
}

func NewVenueRepository(pool *pgxpool.Pool) *VenueRepository {
	return &VenueRepository{pool: pool}
}

func scanVenue(row pgx.Row) (*readmodel.VenueRM, error) {
	var (
		v     readmodel.VenueRM
		price pgtype.Numeric
	)
	err := row.Scan(
		&v.ID, &v.Name, &v.Location, &v.Capacity, &price,
		&v.Amenities, &v.Available, &v.Description, &v.Images,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.PricePerDay = pgconv.DecimalFromPgtype(price)
	return &v, nil
}

func (r *VenueRepository) FindAll(ctx context.Context) ([]*readmodel.VenueRM, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+venueColumns+` FROM venues ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venues", err)
	}
	defer rows.Close()

	var venues []*readmodel.VenueRM
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan venue row", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read venue rows", err)
	}
	return venues, nil
}

func (r *VenueRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.VenueRM, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = $1`, id)
	v, err := scanVenue(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue by ID", err)
	}
	return v, nil
}

func (r *VenueRepository) Create(ctx context.Context, cmd command.CreateVenue) (*readmodel.VenueRM, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO venues (name, location, capacity, price_per_day, amenities, available, description, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+venueColumns,
		cmd.Name, cmd.Location, cmd.Capacity, pgconv.DecimalToPgtype(cmd.PricePerDay),
		cmd.Amenities, cmd.Available, cmd.Description, cmd.Images,
	)
	v, err := scanVenue(row)
	if err != nil {
		if pgconv.IsDuplicateKey(err) {
			return nil, infra.WrapRepoErr("venue already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create venue", err)
	}
	return v, nil
}

func (r *VenueRepository) Patch(ctx context.Context, id uuid.UUID, cmd command.PatchVenue) (*readmodel.VenueRM, error) {
	set := newSetClause()
	setField(set, "name", cmd.Name)
	setField(set, "location", cmd.Location)
	setField(set, "capacity", cmd.Capacity)
	if cmd.PricePerDay != nil {
		set.AddValue("price_per_day", pgconv.DecimalToPgtype(*cmd.PricePerDay))
	}
	if cmd.Amenities != nil {
		set.AddValue("amenities", cmd.Amenities)
	}
	setField(set, "available", cmd.Available)
	setField(set, "description", cmd.Description)
	if cmd.Images != nil {
		set.AddValue("images", cmd.Images)
	}
	if len(set.fragments) == 0 {
		return r.FindByID(ctx, id)
	}

	query, args := set.Build("venues", venueColumns, id)
	v, err := scanVenue(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update venue", err)
	}
	return v, nil
}

func (r *VenueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("venue is referenced by requests", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete venue", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}

// setClause accumulates SET fragments for partial updates; always bumps
// updated_at.
type setClause struct {
	fragments []string
	args      []any
}

func newSetClause() *setClause {
	return &setClause{}
}

func setField[T any](s *setClause, column string, value *T) {
	if value != nil {
		s.AddValue(column, *value)
	}
}

func (s *setClause) AddValue(column string, value any) {
	s.args = append(s.args, value)
	s.fragments = append(s.fragments, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

func (s *setClause) Build(table, returning string, id uuid.UUID) (string, []any) {
	fragments := append(s.fragments, "updated_at = now()")
	args := append(s.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(fragments, ", "), len(args), returning,
	)
	return query, args
}
