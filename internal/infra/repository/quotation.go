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

const quotationSelect = `
	SELECT q.id, q.request_id, vr.event_name, o.first_name || ' ' || o.last_name,
	       q.total_amount, q.daily_rates, q.notes, q.created_at
	FROM quotations q
	JOIN venue_requests vr ON vr.id = q.request_id
	JOIN organizers o ON o.id = vr.organizer_id`

type QuotationRepository struct {
	pool *pgxpool.Pool
}

func NewQuotationRepository(pool *pgxpool.Pool) *QuotationRepository {
	return &QuotationRepository{pool: pool}
}

func scanQuotation(row pgx.Row) (*readmodel.QuotationRM, error) {
	var (
		q     readmodel.QuotationRM
		total pgtype.Numeric
		rates []pgtype.Numeric
		notes pgtype.Text
	)
	err := row.Scan(&q.ID, &q.RequestID, &q.EventName, &q.OrganizerName, &total, &rates, &notes, &q.CreatedAt)
	if err != nil {
		return nil, err
	}
	q.TotalAmount = pgconv.DecimalFromPgtype(total)
	q.DailyRates = pgconv.DecimalsFromPgtype(rates)
	q.Notes = pgconv.StringPtrFromPgtype(notes)
	return &q, nil
}

// Create inserts the quotation and flips the request out of the pending list
// in the same transaction.
func (r *QuotationRepository) Create(ctx context.Context, cmd command.CreateQuotation) (*readmodel.QuotationRM, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var id uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO quotations (request_id, total_amount, daily_rates, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		cmd.RequestID, pgconv.DecimalToPgtype(cmd.TotalAmount),
		pgconv.DecimalsToPgtype(cmd.DailyRates), cmd.Notes,
	).Scan(&id)
	if err != nil {
		switch {
		case pgconv.IsDuplicateKey(err):
			return nil, infra.WrapRepoErr("request already has a quotation", err, infra.KindDuplicateKey)
		case pgconv.IsForeignKeyViolation(err):
			return nil, infra.WrapRepoErr("venue request not found", err, infra.KindForeignKeyViolated)
		default:
			return nil, infra.WrapRepoErr("failed to create quotation", err)
		}
	}

	if _, err := tx.Exec(ctx, `UPDATE venue_requests SET responded = true WHERE id = $1`, cmd.RequestID); err != nil {
		return nil, infra.WrapRepoErr("failed to mark request responded", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit quotation", err)
	}

	return r.FindByID(ctx, id)
}

func (r *QuotationRepository) FindAll(ctx context.Context) ([]*readmodel.QuotationRM, error) {
	rows, err := r.pool.Query(ctx, quotationSelect+` ORDER BY q.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotations", err)
	}
	defer rows.Close()

	var quotations []*readmodel.QuotationRM
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan quotation row", err)
		}
		quotations = append(quotations, q)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read quotation rows", err)
	}
	return quotations, nil
}

func (r *QuotationRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.QuotationRM, error) {
	q, err := scanQuotation(r.pool.QueryRow(ctx, quotationSelect+` WHERE q.id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quotation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quotation by ID", err)
	}
	return q, nil
}
