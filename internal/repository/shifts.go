package repository

import (
	"context"
	"time"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
)

func (r *Repository) CreateShift(shift *domain.Shift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO shifts (name, start_time, end_time, duration_hours, required_employees, is_overnight)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`
	params := []any{shift.Name, shift.StartTime, shift.EndTime, shift.DurationHours, shift.RequiredEmployees, shift.IsOvernight}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&shift.ID, &shift.CreatedAt, &shift.Version); err != nil {
		return err
	}

	for _, role := range shift.Roles {
		query = `
			INSERT INTO shift_roles (shift_id, role, headcount, duration_hours)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.ExecContext(ctx, query, shift.ID, role.Role, role.Count, role.DurationHours); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *Repository) GetShiftByID(id int64) (*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shift := &domain.Shift{
		ID: id,
	}

	query := `
		SELECT name, start_time, end_time, duration_hours, required_employees, is_overnight, created_at, version
		FROM shifts WHERE id = $1
	`
	dst := []any{&shift.Name, &shift.StartTime, &shift.EndTime, &shift.DurationHours, &shift.RequiredEmployees, &shift.IsOvernight, &shift.CreatedAt, &shift.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	query = `
		SELECT role, headcount, duration_hours FROM shift_roles WHERE shift_id = $1 ORDER BY role
	`
	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		role := domain.ShiftRole{}
		if err := rows.Scan(&role.Role, &role.Count, &role.DurationHours); err != nil {
			return nil, err
		}
		shift.Roles = append(shift.Roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shift, nil
}

func (r *Repository) GetAllShifts() ([]*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, start_time, end_time, duration_hours, required_employees, is_overnight, created_at, version
		FROM shifts ORDER BY id
	`
	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	shiftsMap := make(map[int64]*domain.Shift)
	for rows.Next() {
		shift := &domain.Shift{}
		dst := []any{&shift.ID, &shift.Name, &shift.StartTime, &shift.EndTime, &shift.DurationHours, &shift.RequiredEmployees, &shift.IsOvernight, &shift.CreatedAt, &shift.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
		shiftsMap[shift.ID] = shift
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	query = `
		SELECT shift_id, role, headcount, duration_hours FROM shift_roles ORDER BY shift_id, role
	`
	roleRows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer roleRows.Close()

	for roleRows.Next() {
		var shiftID int64
		role := domain.ShiftRole{}
		if err := roleRows.Scan(&shiftID, &role.Role, &role.Count, &role.DurationHours); err != nil {
			return nil, err
		}
		if shift, exists := shiftsMap[shiftID]; exists {
			shift.Roles = append(shift.Roles, role)
		}
	}
	if err := roleRows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Repository) UpdateShift(shift *domain.Shift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE shifts
		SET
			name = $1,
			start_time = $2,
			end_time = $3,
			duration_hours = $4,
			required_employees = $5,
			is_overnight = $6,
			version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING created_at, version
	`
	params := []any{shift.Name, shift.StartTime, shift.EndTime, shift.DurationHours, shift.RequiredEmployees, shift.IsOvernight, shift.ID, shift.Version}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&shift.CreatedAt, &shift.Version); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM shift_roles WHERE shift_id = $1`, shift.ID); err != nil {
		return err
	}
	for _, role := range shift.Roles {
		query = `
			INSERT INTO shift_roles (shift_id, role, headcount, duration_hours)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.ExecContext(ctx, query, shift.ID, role.Role, role.Count, role.DurationHours); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteShift removes the shift together with every assignment that
// references it, so availability and conflict checks never meet a
// half-deleted shift.
func (r *Repository) DeleteShift(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	statements := []string{
		`DELETE FROM shift_assignments WHERE shift_id = $1`,
		`DELETE FROM shift_roles WHERE shift_id = $1`,
		`DELETE FROM shifts WHERE id = $1`,
	}
	for _, statement := range statements {
		if _, err := tx.ExecContext(ctx, statement, id); err != nil {
			return err
		}
	}

	return tx.Commit()
}
