package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shiftwise-dev/rota-manager/backend/internal/config"
	"github.com/shiftwise-dev/rota-manager/backend/internal/repository"
	"github.com/shiftwise-dev/rota-manager/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation (1: insert random employees, 2: insert shift catalog, 3: insert business hours, 4: insert a week of assignments, 5: all of the above)")
	flag.IntVar(&n, "n", 0, "number of employees to insert (op 1 and 5)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, relying on the environment")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if n <= 0 {
		n = cfg.Seed.EmployeeCount
	}

	// Create the database connection pool
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create the database connection pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect eagerly, so ping before seeding
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to the database", "error", err)
		return
	}

	// Create the repository
	repo := repository.NewRepository(cfg, dbpool)

	// Run the requested operation
	switch op {
	case 0:
		slog.Error("no operation specified")
	case 1:
		seed.SeedEmployees(repo, cfg, n)
	case 2:
		seed.SeedShifts(repo)
	case 3:
		seed.SeedBusinessHours(repo)
	case 4:
		seed.SeedAssignments(repo)
	case 5:
		seed.SeedEmployees(repo, cfg, n)
		seed.SeedShifts(repo)
		seed.SeedBusinessHours(repo)
		seed.SeedAssignments(repo)
	default:
		slog.Error("unknown operation", slog.Int("op", op))
	}
}
