package repository

import (
	"context"
	"time"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
)

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
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
		INSERT INTO employees (name, email)
		VALUES ($1, $2)
		RETURNING id, created_at, version
	`
	if err := tx.QueryRowContext(ctx, query, employee.Name, employee.Email).Scan(&employee.ID, &employee.CreatedAt, &employee.Version); err != nil {
		return err
	}

	if err := insertEmployeeDetails(ctx, tx, employee); err != nil {
		return err
	}

	return tx.Commit()
}

func insertEmployeeDetails(ctx context.Context, tx queryExecutor, employee *domain.Employee) error {
	for _, role := range employee.Roles {
		query := `
			INSERT INTO employee_roles (employee_id, role)
			VALUES ($1, $2)
		`
		if _, err := tx.ExecContext(ctx, query, employee.ID, role); err != nil {
			return err
		}
	}

	for weekday, window := range employee.Availability {
		query := `
			INSERT INTO employee_availability (employee_id, weekday, is_closed, start_time, end_time)
			VALUES ($1, $2, $3, $4, $5)
		`
		params := []any{employee.ID, int(weekday), window.IsClosed, window.Start, window.End}
		if _, err := tx.ExecContext(ctx, query, params...); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) GetEmployeeByID(id int64) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		ID: id,
	}

	query := `
		SELECT name, email, created_at, version
		FROM employees WHERE id = $1
	`
	dst := []any{&employee.Name, &employee.Email, &employee.CreatedAt, &employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	query = `
		SELECT role FROM employee_roles WHERE employee_id = $1 ORDER BY role
	`
	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employee.Roles = make([]string, 0)
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, err
		}
		employee.Roles = append(employee.Roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	query = `
		SELECT weekday, is_closed, start_time, end_time
		FROM employee_availability WHERE employee_id = $1
	`
	availRows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer availRows.Close()

	for availRows.Next() {
		var weekday int
		window := domain.DayAvailability{}
		if err := availRows.Scan(&weekday, &window.IsClosed, &window.Start, &window.End); err != nil {
			return nil, err
		}
		if employee.Availability == nil {
			// Only employees with declared availability get a map; absence
			// means unrestricted and the engine relies on that.
			employee.Availability = domain.Availability{}
		}
		employee.Availability[time.Weekday(weekday)] = window
	}
	if err := availRows.Err(); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, email, created_at, version FROM employees ORDER BY id
	`
	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	employeesMap := make(map[int64]*domain.Employee)
	for rows.Next() {
		employee := &domain.Employee{Roles: make([]string, 0)}
		dst := []any{&employee.ID, &employee.Name, &employee.Email, &employee.CreatedAt, &employee.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
		employeesMap[employee.ID] = employee
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	query = `
		SELECT employee_id, role FROM employee_roles ORDER BY employee_id, role
	`
	roleRows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer roleRows.Close()

	for roleRows.Next() {
		var employeeID int64
		var role string
		if err := roleRows.Scan(&employeeID, &role); err != nil {
			return nil, err
		}
		if employee, exists := employeesMap[employeeID]; exists {
			employee.Roles = append(employee.Roles, role)
		}
	}
	if err := roleRows.Err(); err != nil {
		return nil, err
	}

	query = `
		SELECT employee_id, weekday, is_closed, start_time, end_time FROM employee_availability
	`
	availRows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer availRows.Close()

	for availRows.Next() {
		var employeeID int64
		var weekday int
		window := domain.DayAvailability{}
		if err := availRows.Scan(&employeeID, &weekday, &window.IsClosed, &window.Start, &window.End); err != nil {
			return nil, err
		}
		employee, exists := employeesMap[employeeID]
		if !exists {
			continue
		}
		if employee.Availability == nil {
			employee.Availability = domain.Availability{}
		}
		employee.Availability[time.Weekday(weekday)] = window
	}
	if err := availRows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) UpdateEmployee(employee *domain.Employee) error {
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
		UPDATE employees
		SET
			name = $1,
			email = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING created_at, version
	`
	params := []any{employee.Name, employee.Email, employee.ID, employee.Version}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&employee.CreatedAt, &employee.Version); err != nil {
		return err
	}

	// Roles and availability are replaced wholesale.
	if _, err := tx.ExecContext(ctx, `DELETE FROM employee_roles WHERE employee_id = $1`, employee.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM employee_availability WHERE employee_id = $1`, employee.ID); err != nil {
		return err
	}
	if err := insertEmployeeDetails(ctx, tx, employee); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteEmployee removes the employee and every assignment referencing
// them in one transaction, so the engine never sees a dangling employee
// reference.
func (r *Repository) DeleteEmployee(id int64) error {
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
		`DELETE FROM shift_assignments WHERE employee_id = $1`,
		`DELETE FROM employee_roles WHERE employee_id = $1`,
		`DELETE FROM employee_availability WHERE employee_id = $1`,
		`DELETE FROM employees WHERE id = $1`,
	}
	for _, statement := range statements {
		if _, err := tx.ExecContext(ctx, statement, id); err != nil {
			return err
		}
	}

	return tx.Commit()
}
