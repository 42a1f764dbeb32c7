package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, type, item_id, item_name, user_id, user_name,
		start_date, end_date, purpose, notes, status,
		created_at, updated_at, approved_at, rejection_reason`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanBooking(row scanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.Type, &b.ItemID, &b.ItemName, &b.UserID, &b.UserName,
		&b.StartDate, &b.EndDate, &b.Purpose, &b.Notes, &b.Status,
		&b.CreatedAt, &b.UpdatedAt, &b.ApprovedAt, &b.RejectionReason,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.Type, b.ItemID, b.ItemName, b.UserID, b.UserName,
		b.StartDate, b.EndDate, b.Purpose, b.Notes, b.Status,
		b.CreatedAt, b.UpdatedAt, b.ApprovedAt, b.RejectionReason,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			// item_id или user_id не существует
			return fmt.Errorf("%w: unknown item or user", domain.ErrValidation)
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) UpdateStatus(
	ctx context.Context,
	id string,
	from domain.BookingStatus,
	upd domain.StatusUpdate,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $3,
			      approved_at = COALESCE($4, approved_at),
			      rejection_reason = $5,
			      updated_at = $6
			  WHERE id = $1 AND status = $2`
	res, err := tx.ExecContext(
		ctx, query, id, from,
		upd.Status, upd.ApprovedAt, upd.RejectionReason, upd.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if affected == 0 {
		// Бронь исчезла или статус успели поменять
		var current domain.BookingStatus
		checkErr := tx.QueryRowContext(ctx, `SELECT status FROM bookings WHERE id = $1`, id).Scan(&current)
		if errors.Is(checkErr, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		if checkErr != nil {
			return fmt.Errorf("check booking status: %w", checkErr)
		}
		return domain.ErrInvalidTransition
	}

	return tx.Commit()
}

// ActivateStarted переводит одобренные брони, у которых наступило начало, в active.
func (r *BookingRepository) ActivateStarted(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	return r.advance(ctx, domain.BookingStatusApproved, domain.BookingStatusActive, "start_date", now)
}

func (r *BookingRepository) CompleteFinished(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	return r.advance(ctx, domain.BookingStatusActive, domain.BookingStatusCompleted, "end_date", now)
}

func (r *BookingRepository) advance(
	ctx context.Context,
	from, to domain.BookingStatus,
	boundary string,
	now time.Time,
) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = $3
			  WHERE status = $1 AND ` + boundary + ` <= $3
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("advance %s to %s: %w", from, to, err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	res := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
