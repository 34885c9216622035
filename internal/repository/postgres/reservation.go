package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/repository"
)

type reservationRepository struct {
	q DBTX
}

func NewReservationRepository(q DBTX) repository.ReservationRepository {
	return &reservationRepository{q: q}
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (item_id, booker_id, start_booking, finish_booking, status)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.q.QueryRowContext(ctx, query, res.ItemID, res.BookerID, res.Start, res.End, res.Status).Scan(&res.ID)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res := &domain.Reservation{Booker: &domain.User{}, Item: &domain.Item{}}
	query := `SELECT r.id, r.item_id, r.booker_id, r.start_booking, r.finish_booking, r.status,
	                 u.id, u.name, u.email,
	                 i.id, i.owner_id, i.name, i.description, i.available
	          FROM reservations r
	          JOIN users u ON u.id = r.booker_id
	          JOIN items i ON i.id = r.item_id
	          WHERE r.id = $1`
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&res.ID, &res.ItemID, &res.BookerID, &res.Start, &res.End, &res.Status,
		&res.Booker.ID, &res.Booker.Name, &res.Booker.Email,
		&res.Item.ID, &res.Item.OwnerID, &res.Item.Name, &res.Item.Description, &res.Item.Available,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: reservation %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	_, err := r.q.ExecContext(ctx, `UPDATE reservations SET status = $1 WHERE id = $2`, status, id)
	return err
}

func (r *reservationRepository) List(ctx context.Context, f repository.ReservationFilter) ([]domain.Reservation, error) {
	query := `SELECT r.id, r.item_id, r.booker_id, r.start_booking, r.finish_booking, r.status
	          FROM reservations r
	          JOIN items i ON i.id = r.item_id
	          WHERE 1=1`
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.BookerID != 0 {
		query += " AND r.booker_id = " + arg(f.BookerID)
	}
	if f.ItemOwnerID != 0 {
		query += " AND i.owner_id = " + arg(f.ItemOwnerID)
	}
	if f.Status != "" {
		query += " AND r.status = " + arg(f.Status)
	}
	if f.StartBefore != nil {
		query += " AND r.start_booking < " + arg(*f.StartBefore)
	}
	if f.StartAfter != nil {
		query += " AND r.start_booking > " + arg(*f.StartAfter)
	}
	if f.EndBefore != nil {
		query += " AND r.finish_booking < " + arg(*f.EndBefore)
	}
	if f.EndAfter != nil {
		query += " AND r.finish_booking > " + arg(*f.EndAfter)
	}
	query += " ORDER BY r.start_booking DESC, r.id ASC"

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *reservationRepository) ListByItem(ctx context.Context, itemID int64) ([]domain.Reservation, error) {
	query := `SELECT id, item_id, booker_id, start_booking, finish_booking, status
	          FROM reservations WHERE item_id = $1 ORDER BY start_booking DESC, id ASC`
	rows, err := r.q.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *reservationRepository) ListByItemOwner(ctx context.Context, ownerID int64) ([]domain.Reservation, error) {
	query := `SELECT r.id, r.item_id, r.booker_id, r.start_booking, r.finish_booking, r.status
	          FROM reservations r
	          JOIN items i ON i.id = r.item_id
	          WHERE i.owner_id = $1 ORDER BY r.start_booking ASC, r.id ASC`
	rows, err := r.q.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *reservationRepository) ListByBookerAndItem(ctx context.Context, bookerID, itemID int64) ([]domain.Reservation, error) {
	query := `SELECT id, item_id, booker_id, start_booking, finish_booking, status
	          FROM reservations WHERE booker_id = $1 AND item_id = $2 ORDER BY start_booking ASC, id ASC`
	rows, err := r.q.QueryContext(ctx, query, bookerID, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *reservationRepository) CompleteEnded(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE reservations SET status = $1 WHERE status = $2 AND finish_booking < $3`
	result, err := r.q.ExecContext(ctx, query, domain.ReservationStatusCompleted, domain.ReservationStatusApproved, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanReservations(rows *sql.Rows) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.ItemID, &res.BookerID, &res.Start, &res.End, &res.Status); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}
