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

const equipmentColumns = `id, name, category, description, quantity_available, rental_price_per_day, condition, created_at, updated_at`

type EquipmentRepository struct {
	pool *pgxpool.Pool
}

func NewEquipmentRepository(pool *pgxpool.Pool) *EquipmentRepository {
	return &EquipmentRepository{pool: pool}
}

func scanEquipment(row pgx.Row) (*readmodel.EquipmentRM, error) {
	var (
		e     readmodel.EquipmentRM
		price pgtype.Numeric
	)
	err := row.Scan(
		&e.ID, &e.Name, &e.Category, &e.Description, &e.QuantityAvailable,
		&price, &e.Condition, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.RentalPricePerDay = pgconv.DecimalFromPgtype(price)
	return &e, nil
}

func (r *EquipmentRepository) FindAll(ctx context.Context) ([]*readmodel.EquipmentRM, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+equipmentColumns+` FROM equipment ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list equipment", err)
	}
	defer rows.Close()

	var items []*readmodel.EquipmentRM
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan equipment row", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read equipment rows", err)
	}
	return items, nil
}

func (r *EquipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.EquipmentRM, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE id = $1`, id)
	e, err := scanEquipment(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find equipment by ID", err)
	}
	return e, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, cmd command.CreateEquipment) (*readmodel.EquipmentRM, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO equipment (name, category, description, quantity_available, rental_price_per_day, condition)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+equipmentColumns,
		cmd.Name, cmd.Category, cmd.Description, cmd.QuantityAvailable,
		pgconv.DecimalToPgtype(cmd.RentalPricePerDay), cmd.Condition,
	)
	e, err := scanEquipment(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create equipment", err)
	}
	return e, nil
}

func (r *EquipmentRepository) Patch(ctx context.Context, id uuid.UUID, cmd command.PatchEquipment) (*readmodel.EquipmentRM, error) {
	set := newSetClause()
	setField(set, "name", cmd.Name)
	setField(set, "category", cmd.Category)
	setField(set, "description", cmd.Description)
	setField(set, "quantity_available", cmd.QuantityAvailable)
	if cmd.RentalPricePerDay != nil {
		set.AddValue("rental_price_per_day", pgconv.DecimalToPgtype(*cmd.RentalPricePerDay))
	}
	setField(set, "condition", cmd.Condition)
	if len(set.fragments) == 0 {
		return r.FindByID(ctx, id)
	}

	query, args := set.Build("equipment", equipmentColumns, id)
	e, err := scanEquipment(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update equipment", err)
	}
	return e, nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete equipment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return nil
}
