package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shiftwise-dev/rota-manager/backend/internal/config"
	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
	"github.com/shiftwise-dev/rota-manager/backend/internal/engine"
	"github.com/shiftwise-dev/rota-manager/backend/internal/repository"
)

var firstNames = []string{
	"Alice", "Ben", "Carla", "Dan", "Elena", "Frank", "Grace", "Hugo",
	"Ines", "Jon", "Kate", "Liam", "Mona", "Nils", "Olga", "Pete",
}
var lastNames = []string{
	"Adams", "Baker", "Clark", "Diaz", "Evans", "Fischer", "Green",
	"Hart", "Ivanov", "Jones", "Keller", "Lopez", "Meyer", "Novak",
}
var roles = []string{"bartender", "server", "cook", "host", "manager"}

func randomEmployee(emailDomain string) *domain.Employee {
	name := firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
	email := fmt.Sprintf("%s%d@%s", name[:1], rand.Intn(10000), emailDomain)

	employee := &domain.Employee{
		Name:  name,
		Email: email,
		Roles: []string{roles[rand.Intn(len(roles))]},
	}

	// Roughly one in four employees is unrestricted; the rest declare a
	// weekly availability with a couple of closed days.
	if rand.Intn(4) > 0 {
		employee.Availability = domain.Availability{}
		for day := time.Sunday; day <= time.Saturday; day++ {
			if rand.Intn(7) < 2 {
				employee.Availability[day] = domain.DayAvailability{IsClosed: true}
				continue
			}
			startHour := 6 + rand.Intn(6)
			endHour := startHour + 6 + rand.Intn(6)
			if endHour > 23 {
				endHour = 23
			}
			employee.Availability[day] = domain.DayAvailability{
				Start: fmt.Sprintf("%02d:00", startHour),
				End:   fmt.Sprintf("%02d:00", endHour),
			}
		}
	}

	return employee
}

// SeedEmployees inserts n randomized employees.
func SeedEmployees(repo *repository.Repository, cfg *config.Config, n int) {
	cnt := 0
	for i := 0; i < n; i++ {
		employee := randomEmployee(cfg.Seed.EmailDomain)
		if err := domain.NormalizeEmployee(employee); err != nil {
			slog.Error("generated an invalid employee", "error", err)
			continue
		}
		if err := repo.CreateEmployee(employee); err != nil {
			slog.Error("failed to insert employee", "error", err)
			continue
		}
		cnt++
	}
	slog.Info("employees inserted", "count", cnt)
}

// SeedShifts inserts a standard shift catalog, overnight shift included.
func SeedShifts(repo *repository.Repository) {
	shifts := []*domain.Shift{
		{Name: "Morning", StartTime: "06:00", EndTime: "14:00", DurationHours: 8, RequiredEmployees: 3},
		{Name: "Day", StartTime: "09:00", EndTime: "17:00", DurationHours: 8, RequiredEmployees: 4},
		{Name: "Evening", StartTime: "14:00", EndTime: "22:00", DurationHours: 8, RequiredEmployees: 3},
		{Name: "Night", StartTime: "22:00", EndTime: "06:00", DurationHours: 8, RequiredEmployees: 2},
	}

	cnt := 0
	for _, shift := range shifts {
		if err := domain.NormalizeShift(shift); err != nil {
			slog.Error("generated an invalid shift", "error", err)
			continue
		}
		if err := repo.CreateShift(shift); err != nil {
			slog.Error("failed to insert shift", "error", err)
			continue
		}
		cnt++
	}
	slog.Info("shifts inserted", "count", cnt)
}

// SeedBusinessHours inserts a default trading week: closed on Sunday,
// shorter Saturday.
func SeedBusinessHours(repo *repository.Repository) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		entry := &domain.BusinessHours{Weekday: day, Open: "08:00", Close: "22:00"}
		switch day {
		case time.Sunday:
			entry = &domain.BusinessHours{Weekday: day, IsClosed: true}
		case time.Saturday:
			entry = &domain.BusinessHours{Weekday: day, Open: "10:00", Close: "18:00"}
		}
		if err := repo.UpsertBusinessHours(entry); err != nil {
			slog.Error("failed to insert business hours", "weekday", day, "error", err)
		}
	}
	slog.Info("business hours inserted")
}

// SeedAssignments fills the current Monday-based week with assignments.
// Every candidate goes through the engine gate; candidates the engine
// rejects are skipped, never forced in.
func SeedAssignments(repo *repository.Repository) {
	employees, err := repo.GetAllEmployees()
	if err != nil {
		slog.Error("failed to fetch employees", "error", err)
		return
	}
	shifts, err := repo.GetAllShifts()
	if err != nil {
		slog.Error("failed to fetch shifts", "error", err)
		return
	}
	if len(employees) == 0 || len(shifts) == 0 {
		slog.Error("seed employees and shifts first")
		return
	}

	catalog := make(map[int64]*domain.Shift, len(shifts))
	for _, shift := range shifts {
		catalog[shift.ID] = shift
	}

	weekStart, weekEnd := engine.WeekBounds(time.Now(), time.Monday)
	cnt := 0
	for day := weekStart; !day.After(weekEnd); day = day.AddDate(0, 0, 1) {
		date := day.Format(domain.DateLayout)

		for _, shift := range shifts {
			for i := 0; i < int(shift.RequiredEmployees); i++ {
				employee := employees[rand.Intn(len(employees))]

				snapshot, err := repo.GetAssignmentsBetween(date, day.AddDate(0, 0, 1).Format(domain.DateLayout))
				if err != nil {
					slog.Error("failed to fetch snapshot", "error", err)
					return
				}

				intervals, err := engine.SplitCandidate(shift, day)
				if err != nil {
					slog.Error("failed to split candidate", "shift", shift.Name, "error", err)
					break
				}

				valid := true
				for _, interval := range intervals {
					verdict := engine.ValidateCandidate(engine.Candidate{
						Employee: employee,
						Start:    interval[0],
						End:      interval[1],
					}, snapshot, catalog)
					if len(verdict) > 0 {
						valid = false
						break
					}
				}
				if !valid {
					continue
				}

				rows, err := assignmentRows(employee, shift, date)
				if err != nil {
					slog.Error("failed to build assignment rows", "error", err)
					continue
				}
				if err := repo.CreateAssignments(rows); err != nil {
					slog.Error("failed to insert assignment", "error", err)
					continue
				}
				cnt++
			}
		}
	}

	slog.Info("assignments inserted", "count", cnt)
}

func assignmentRows(employee *domain.Employee, shift *domain.Shift, date string) ([]*domain.ShiftAssignment, error) {
	head := &domain.ShiftAssignment{
		EmployeeID: employee.ID,
		Date:       date,
		Status:     domain.AssignmentConfirmed,
	}
	if err := domain.NormalizeAssignment(head, shift); err != nil {
		return nil, err
	}

	if !shift.IsOvernight {
		return []*domain.ShiftAssignment{head}, nil
	}

	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, err
	}

	pairKey := uuid.NewString()
	head.EndTime = "23:59"
	head.PairKey = pairKey

	tail := &domain.ShiftAssignment{
		EmployeeID: employee.ID,
		Date:       day.AddDate(0, 0, 1).Format(domain.DateLayout),
		Status:     domain.AssignmentConfirmed,
	}
	if err := domain.NormalizeAssignment(tail, shift); err != nil {
		return nil, err
	}
	tail.StartTime = "00:00"
	tail.PairKey = pairKey

	return []*domain.ShiftAssignment{head, tail}, nil
}
