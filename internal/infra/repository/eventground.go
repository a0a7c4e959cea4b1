package repository

import (
	"context"

	"eventease-admin/internal/infra"
	"eventease-admin/internal/pkg/pgconv"
	"eventease-admin/internal/usecase/command"
	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const eventGroundColumns = `id, name, longitude, latitude, capacity, availability, price_per_day, amenities, images, created_at, updated_at`

type EventGroundRepository struct {
	pool *pgxpool.Pool
}

func NewEventGroundRepository(pool *pgxpool.Pool) *EventGroundRepository {
	return &EventGroundRepository{pool: pool}
}

func scanEventGround(row pgx.Row) (*readmodel.EventGroundRM, error) {
	var (
		g     readmodel.EventGroundRM
		price pgtype.Numeric
	)
	err := row.Scan(
		&g.ID, &g.Name, &g.Longitude, &g.Latitude, &g.Capacity,
		&g.Availability, &price, &g.Amenities, &g.Images,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	g.PricePerDay = pgconv.DecimalFromPgtype(price)
	return &g, nil
}

func (r *EventGroundRepository) FindAll(ctx context.Context) ([]*readmodel.EventGroundRM, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+eventGroundColumns+` FROM event_grounds ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list event grounds", err)
	}
	defer rows.Close()

	var grounds []*readmodel.EventGroundRM
	for rows.Next() {
		g, err := scanEventGround(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan event ground row", err)
		}
		grounds = append(grounds, g)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read event ground rows", err)
	}
	return grounds, nil
}

func (r *EventGroundRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.EventGroundRM, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+eventGroundColumns+` FROM event_grounds WHERE id = $1`, id)
	g, err := scanEventGround(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event ground not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event ground by ID", err)
	}
	return g, nil
}

func (r *EventGroundRepository) Create(ctx context.Context, cmd command.CreateEventGround) (*readmodel.EventGroundRM, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO event_grounds (name, longitude, latitude, capacity, availability, price_per_day, amenities, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+eventGroundColumns,
		cmd.Name, cmd.Longitude, cmd.Latitude, cmd.Capacity, cmd.Availability,
		pgconv.DecimalToPgtype(cmd.PricePerDay), cmd.Amenities, cmd.Images,
	)
	g, err := scanEventGround(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create event ground", err)
	}
	return g, nil
}

func (r *EventGroundRepository) Patch(ctx context.Context, id uuid.UUID, cmd command.PatchEventGround) (*readmodel.EventGroundRM, error) {
	set := newSetClause()
	setField(set, "name", cmd.Name)
	setField(set, "longitude", cmd.Longitude)
	setField(set, "latitude", cmd.Latitude)
	setField(set, "capacity", cmd.Capacity)
	setField(set, "availability", cmd.Availability)
	if cmd.PricePerDay != nil {
		set.AddValue("price_per_day", pgconv.DecimalToPgtype(*cmd.PricePerDay))
	}
	if cmd.Amenities != nil {
		set.AddValue("amenities", cmd.Amenities)
	}
	if cmd.Images != nil {
		set.AddValue("images", cmd.Images)
	}
	if len(set.fragments) == 0 {
		return r.FindByID(ctx, id)
	}

	query, args := set.Build("event_grounds", eventGroundColumns, id)
	g, err := scanEventGround(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event ground not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update event ground", err)
	}
	return g, nil
}

func (r *EventGroundRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM event_grounds WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete event ground", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event ground not found", nil, infra.KindNotFound)
	}
	return nil
}
