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

const venueRequestSelect = `
	SELECT vr.id, vr.organizer_id, o.first_name || ' ' || o.last_name,
	       vr.event_name, vr.event_description, vr.event_dates, vr.expected_attendance,
	       vr.venue_id, v.name, vr.is_read, vr.responded, vr.request_date, vr.additional_requests
	FROM venue_requests vr
	JOIN organizers o ON o.id = vr.organizer_id
	LEFT JOIN venues v ON v.id = vr.venue_id`

type VenueRequestRepository struct {
	pool *pgxpool.Pool
}

func NewVenueRequestRepository(pool *pgxpool.Pool) *VenueRequestRepository {
	return &VenueRequestRepository{pool: pool}
}

func scanVenueRequest(row pgx.Row) (*readmodel.VenueRequestRM, error) {
	var (
		rm        readmodel.VenueRequestRM
		venueID   pgtype.UUID
		venueName pgtype.Text
		extra     pgtype.Text
	)
	err := row.Scan(
		&rm.ID, &rm.OrganizerID, &rm.OrganizerName,
		&rm.EventName, &rm.EventDescription, &rm.EventDates, &rm.ExpectedAttendance,
		&venueID, &venueName, &rm.IsRead, &rm.Responded, &rm.RequestDate, &extra,
	)
	if err != nil {
		return nil, err
	}
	rm.VenueID = pgconv.UUIDPtrFromPgtype(venueID)
	rm.VenueName = pgconv.StringPtrFromPgtype(venueName)
	rm.AdditionalRequests = pgconv.StringPtrFromPgtype(extra)
	return &rm, nil
}

// FindAll returns requests newest first; onlyPending restricts to requests
// without an issued quotation, which is what the requests screen shows.
func (r *VenueRequestRepository) FindAll(ctx context.Context, onlyPending bool) ([]*readmodel.VenueRequestRM, error) {
	query := venueRequestSelect
	if onlyPending {
		query += ` WHERE NOT vr.responded`
	}
	query += ` ORDER BY vr.request_date DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venue requests", err)
	}
	defer rows.Close()

	var requests []*readmodel.VenueRequestRM
	for rows.Next() {
		rm, err := scanVenueRequest(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan venue request row", err)
		}
		requests = append(requests, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read venue request rows", err)
	}
	return requests, nil
}

func (r *VenueRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.VenueRequestRM, error) {
	rm, err := scanVenueRequest(r.pool.QueryRow(ctx, venueRequestSelect+` WHERE vr.id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue request by ID", err)
	}
	return rm, nil
}

func (r *VenueRequestRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE venue_requests SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark venue request read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("venue request not found", nil, infra.KindNotFound)
	}
	return nil
}
