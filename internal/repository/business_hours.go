package repository

import (
	"context"
	"time"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
)

func (r *Repository) GetBusinessHours() ([]*domain.BusinessHours, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT weekday, is_closed, open_time, close_time, version
		FROM business_hours ORDER BY weekday
	`
	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hours := make([]*domain.BusinessHours, 0, 7)
	for rows.Next() {
		var weekday int
		day := &domain.BusinessHours{}
		if err := rows.Scan(&weekday, &day.IsClosed, &day.Open, &day.Close, &day.Version); err != nil {
			return nil, err
		}
		day.Weekday = time.Weekday(weekday)
		hours = append(hours, day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return hours, nil
}

// UpsertBusinessHours replaces one weekday's window; there is exactly one
// row per weekday.
func (r *Repository) UpsertBusinessHours(day *domain.BusinessHours) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO business_hours (weekday, is_closed, open_time, close_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (weekday) DO UPDATE
		SET
			is_closed = EXCLUDED.is_closed,
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			version = business_hours.version + 1
		RETURNING version
	`
	params := []any{int(day.Weekday), day.IsClosed, day.Open, day.Close}
	return r.dbpool.QueryRowContext(ctx, query, params...).Scan(&day.Version)
}
