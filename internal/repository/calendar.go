package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CalendarRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCalendarRepo(db *dbpg.DB) *CalendarRepository {
	return &CalendarRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *CalendarRepository) List(ctx context.Context) ([]domain.CalendarEvent, error) {
	query := `SELECT id, event_date, title, type
			  FROM calendar_events
			  ORDER BY event_date, created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	defer rows.Close()

	res := make([]domain.CalendarEvent, 0)
	for rows.Next() {
		var e domain.CalendarEvent
		if err = rows.Scan(&e.ID, &e.Date, &e.Title, &e.Type); err != nil {
			return nil, fmt.Errorf("scan calendar event: %w", err)
		}
		e.Date = time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
		res = append(res, e)
	}

	return res, rows.Err()
}

// Upsert вставляет события одной транзакцией. Пара (дата, название) уникальна,
// при совпадении обновляется только тип. Возвращает число затронутых строк.
func (r *CalendarRepository) Upsert(ctx context.Context, events []domain.CalendarEvent) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO calendar_events (id, event_date, title, type, created_at)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (event_date, title) DO UPDATE SET type = EXCLUDED.type`

	now := time.Now().UTC()
	total := 0
	for _, e := range events {
		id := e.ID
		if id == "" {
			id = uuid.New().String()
		}

		res, err := tx.ExecContext(ctx, query, id, e.Date.Format(time.DateOnly), e.Title, e.Type, now)
		if err != nil {
			return 0, fmt.Errorf("upsert calendar event %q: %w", e.Title, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("calendar rows affected: %w", err)
		}
		total += int(n)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return total, nil
}
