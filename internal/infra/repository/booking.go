package repository

import (
	"context"

	"eventease-admin/internal/infra"
	"eventease-admin/internal/pkg/pgconv"
	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingSelect = `
	SELECT b.id, vr.event_name, o.first_name || ' ' || o.last_name, v.name,
	       vr.event_dates, vr.expected_attendance, q.total_amount, b.amount_paid, b.status, b.created_at
	FROM bookings b
	JOIN quotations q ON q.id = b.quotation_id
	JOIN venue_requests vr ON vr.id = q.request_id
	JOIN organizers o ON o.id = b.organizer_id
	LEFT JOIN venues v ON v.id = vr.venue_id`

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func scanBooking(row pgx.Row) (*readmodel.BookingRM, error) {
	var (
		b         readmodel.BookingRM
		venueName pgtype.Text
		total     pgtype.Numeric
		paid      pgtype.Numeric
	)
	err := row.Scan(
		&b.ID, &b.EventName, &b.OrganizerName, &venueName,
		&b.EventDates, &b.ExpectedAttendance, &total, &paid, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.VenueName = pgconv.StringPtrFromPgtype(venueName)
	b.TotalAmount = pgconv.DecimalFromPgtype(total)
	b.AmountPaid = pgconv.DecimalFromPgtype(paid)
	return &b, nil
}

// FindAll loads every booking with its payment records. The report layer
// works over this full in-memory array; there is no push-down of filters.
func (r *BookingRepository) FindAll(ctx context.Context) ([]*readmodel.BookingRM, error) {
	rows, err := r.pool.Query(ctx, bookingSelect+` ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var bookings []*readmodel.BookingRM
	byID := make(map[uuid.UUID]*readmodel.BookingRM)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		b.Payments = []readmodel.PaymentRM{}
		bookings = append(bookings, b)
		byID[b.ID] = b
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	if err := r.attachPayments(ctx, byID); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	b, err := scanBooking(r.pool.QueryRow(ctx, bookingSelect+` WHERE b.id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	b.Payments = []readmodel.PaymentRM{}
	byID := map[uuid.UUID]*readmodel.BookingRM{b.ID: b}
	if err := r.attachPayments(ctx, byID); err != nil {
		return nil, err
	}
	return b, nil
}

// CreateFromQuotation turns an accepted quotation into a tentative booking.
func (r *BookingRepository) CreateFromQuotation(ctx context.Context, quotationID uuid.UUID, status string) (*readmodel.BookingRM, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO bookings (organizer_id, quotation_id, status)
		SELECT vr.organizer_id, q.id, $2
		FROM quotations q
		JOIN venue_requests vr ON vr.id = q.request_id
		WHERE q.id = $1
		RETURNING id`,
		quotationID, status,
	).Scan(&id)
	if err != nil {
		switch {
		case pgconv.IsNoRows(err):
			return nil, infra.WrapRepoErr("quotation not found", err, infra.KindNotFound)
		case pgconv.IsDuplicateKey(err):
			return nil, infra.WrapRepoErr("quotation already accepted", err, infra.KindDuplicateKey)
		default:
			return nil, infra.WrapRepoErr("failed to create booking", err)
		}
	}
	return r.FindByID(ctx, id)
}

func (r *BookingRepository) attachPayments(ctx context.Context, byID map[uuid.UUID]*readmodel.BookingRM) error {
	ids := make([]uuid.UUID, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT booking_id, method, amount, transaction_id, paid_at
		FROM payments
		WHERE booking_id = ANY($1)
		ORDER BY paid_at`, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookingID uuid.UUID
			p         readmodel.PaymentRM
			amount    pgtype.Numeric
		)
		if err := rows.Scan(&bookingID, &p.Method, &amount, &p.TransactionID, &p.PaidAt); err != nil {
			return infra.WrapRepoErr("failed to scan payment row", err)
		}
		p.Amount = pgconv.DecimalFromPgtype(amount)
		if b, ok := byID[bookingID]; ok {
			b.Payments = append(b.Payments, p)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read payment rows", err)
	}
	return nil
}
