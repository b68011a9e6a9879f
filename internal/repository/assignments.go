package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
)

const assignmentColumns = `id, shift_id, employee_id, date, start_time, end_time, is_overnight, pair_key, status, created_at, version`

func scanAssignment(scanner interface{ Scan(...any) error }) (*domain.ShiftAssignment, error) {
	assignment := &domain.ShiftAssignment{}
	dst := []any{
		&assignment.ID,
		&assignment.ShiftID,
		&assignment.EmployeeID,
		&assignment.Date,
		&assignment.StartTime,
		&assignment.EndTime,
		&assignment.IsOvernight,
		&assignment.PairKey,
		&assignment.Status,
		&assignment.CreatedAt,
		&assignment.Version,
	}
	if err := scanner.Scan(dst...); err != nil {
		return nil, err
	}
	return assignment, nil
}

// CreateAssignments inserts the given assignments in one transaction. A
// same-day assignment is a single row; the two halves of an overnight
// assignment arrive together and either both land or neither does.
func (r *Repository) CreateAssignments(assignments []*domain.ShiftAssignment) error {
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
		INSERT INTO shift_assignments (shift_id, employee_id, date, start_time, end_time, is_overnight, pair_key, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, version
	`
	for _, assignment := range assignments {
		params := []any{
			assignment.ShiftID,
			assignment.EmployeeID,
			assignment.Date,
			assignment.StartTime,
			assignment.EndTime,
			assignment.IsOvernight,
			assignment.PairKey,
			assignment.Status,
		}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.Version); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *Repository) GetAssignmentByID(id int64) (*domain.ShiftAssignment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT ` + assignmentColumns + `
		FROM shift_assignments WHERE id = $1
	`
	return scanAssignment(r.dbpool.QueryRowContext(ctx, query, id))
}

func (r *Repository) GetAllAssignments() ([]*domain.ShiftAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM shift_assignments ORDER BY date, start_time, id
	`
	return r.queryAssignments(query)
}

// GetAssignmentsBetween returns the assignments dated inside the
// inclusive [startDate, endDate] window, ordered for schedule rendering.
func (r *Repository) GetAssignmentsBetween(startDate, endDate string) ([]*domain.ShiftAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM shift_assignments
		WHERE date >= $1 AND date <= $2
		ORDER BY date, start_time, id
	`
	return r.queryAssignments(query, startDate, endDate)
}

func (r *Repository) GetAssignmentsByEmployee(employeeID int64) ([]*domain.ShiftAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM shift_assignments
		WHERE employee_id = $1
		ORDER BY date, start_time, id
	`
	return r.queryAssignments(query, employeeID)
}

func (r *Repository) GetAssignmentsByShift(shiftID int64) ([]*domain.ShiftAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM shift_assignments
		WHERE shift_id = $1
		ORDER BY date, start_time, id
	`
	return r.queryAssignments(query, shiftID)
}

func (r *Repository) queryAssignments(query string, args ...any) ([]*domain.ShiftAssignment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]*domain.ShiftAssignment, 0)
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// UpdateAssignmentStatus moves the assignment to the given status. The
// twin of an overnight pair follows in the same transaction so a head
// never ends up cancelled while its tail stays live.
func (r *Repository) UpdateAssignmentStatus(assignment *domain.ShiftAssignment, status domain.AssignmentStatus) error {
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
		UPDATE shift_assignments
		SET status = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`
	if err := tx.QueryRowContext(ctx, query, status, assignment.ID, assignment.Version).Scan(&assignment.Version); err != nil {
		return err
	}
	assignment.Status = status

	if assignment.PairKey != "" {
		query = `
			UPDATE shift_assignments
			SET status = $1, version = version + 1
			WHERE pair_key = $2 AND id != $3
		`
		if _, err := tx.ExecContext(ctx, query, status, assignment.PairKey, assignment.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteAssignment removes the row and, for an overnight pair, its twin.
// It returns the deleted rows so the caller can publish notifications.
func (r *Repository) DeleteAssignment(id int64) ([]*domain.ShiftAssignment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		SELECT ` + assignmentColumns + `
		FROM shift_assignments WHERE id = $1
	`
	assignment, err := scanAssignment(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	deleted := []*domain.ShiftAssignment{assignment}

	if assignment.PairKey != "" {
		query = `
			SELECT ` + assignmentColumns + `
			FROM shift_assignments WHERE pair_key = $1 AND id != $2
		`
		twin, err := scanAssignment(tx.QueryRowContext(ctx, query, assignment.PairKey, assignment.ID))
		switch err {
		case nil:
			deleted = append(deleted, twin)
		case sql.ErrNoRows:
			// A missing twin violates the pairing invariant; the deletion
			// still proceeds so the caller can clean up and log.
		default:
			return nil, err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM shift_assignments WHERE pair_key = $1`, assignment.PairKey); err != nil {
			return nil, err
		}
	} else {
		if _, err := tx.ExecContext(ctx, `DELETE FROM shift_assignments WHERE id = $1`, assignment.ID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return deleted, nil
}
