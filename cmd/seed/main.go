package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/melihkochan/personelplanlama/backend/internal/config"
	"github.com/melihkochan/personelplanlama/backend/internal/domain"
	"github.com/melihkochan/personelplanlama/backend/internal/repository"
	"github.com/melihkochan/personelplanlama/backend/internal/seed"
	"github.com/melihkochan/personelplanlama/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var periodID int64

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random users, 2: insert random employees, 3: seed the fleet, 4: insert random shift statuses, 5: import workbook)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Int64Var(&periodID, "period-id", 0, "shift period to attach statuses to")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect, ping to surface connection errors now
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation specified")
	case 1:
		if n <= 0 {
			slog.Error("invalid user count")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("failed to generate random user", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("failed to insert user", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("users inserted", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("invalid employee count")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				emp := utils.GenerateRandomEmployee()
				if err := repo.CreateEmployee(emp); err != nil {
					slog.Error("failed to insert employee", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("employees inserted", slog.Int("count", n-cnt))
		}
	case 3:
		seed.SeedFleet(repo)
	case 4:
		if periodID <= 0 {
			slog.Error("invalid period ID")
			return
		}

		if _, err := repo.GetShiftPeriodByID(periodID); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				slog.Error("period does not exist", slog.Int64("period_id", periodID))
			default:
				slog.Error("failed to fetch period", slog.String("error", err.Error()))
			}
			return
		}

		employees, err := repo.GetAllEmployees()
		if err != nil {
			slog.Error("failed to fetch employees", slog.String("error", err.Error()))
			return
		}

		entries := make([]domain.ShiftStatusEntry, 0, len(employees))
		for _, emp := range employees {
			entries = append(entries, domain.ShiftStatusEntry{
				EmployeeCode: emp.Code,
				Status:       utils.GenerateRandomShiftStatus(),
			})
		}

		if err := repo.UpsertShiftStatuses(periodID, entries); err != nil {
			slog.Error("failed to insert shift statuses", slog.String("error", err.Error()))
			return
		}

		slog.Info("shift statuses inserted", slog.Int("count", len(entries)))
	case 5:
		seed.ImportWorkbook(repo, periodID, cfg.Seed.WorkbookPath)
	default:
		slog.Error("unknown operation")
	}
}
