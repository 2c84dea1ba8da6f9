package seed

import (
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
	"github.com/melihkochan/personelplanlama/backend/internal/repository"
)

const (
	personnelSheet = "Personel"
	statusSheet    = "Vardiya"
)

// roleHeaderMap translates the workbook's Turkish role column into the role
// enum. Rows with an unmapped role are skipped, not guessed.
var roleHeaderMap = map[string]domain.EmployeeRole{
	"ŞOFÖR":            domain.RoleDriver,
	"SOFOR":            domain.RoleDriver,
	"SEVKİYAT ELEMANI": domain.RoleDeliveryStaff,
	"SEVKIYAT ELEMANI": domain.RoleDeliveryStaff,
}

// statusHeaderMap translates the workbook's Turkish status column. Anything
// not listed here falls through to ParseShiftStatus, which resolves to UNKNOWN.
var statusHeaderMap = map[string]domain.ShiftStatus{
	"GÜNDÜZ":       domain.ShiftStatusDay,
	"GUNDUZ":       domain.ShiftStatusDay,
	"GECE":         domain.ShiftStatusNight,
	"AKŞAM":        domain.ShiftStatusEvening,
	"AKSAM":        domain.ShiftStatusEvening,
	"GEÇİCİ GÖREV": domain.ShiftStatusTempAssignment,
	"GECICI GOREV": domain.ShiftStatusTempAssignment,
	"RAPORLU":      domain.ShiftStatusSick,
	"YILLIK İZİN":  domain.ShiftStatusAnnualLeave,
	"YILLIK IZIN":  domain.ShiftStatusAnnualLeave,
	"DİNLENME":     domain.ShiftStatusResting,
	"DINLENME":     domain.ShiftStatusResting,
}

// fleetSeed mirrors the canonical fleet the planner synthesizes, so a seeded
// database starts with editable rows for every plate.
var fleetSeed = []domain.Vehicle{
	{Plate: "34 NKT 101", Type: domain.VehicleTypeTruck, Region: "Anadolu"},
	{Plate: "34 NKT 102", Type: domain.VehicleTypeTruck, Region: "Anadolu"},
	{Plate: "34 NKT 103", Type: domain.VehicleTypeTruck, Region: "Avrupa"},
	{Plate: "34 PKA 201", Type: domain.VehicleTypePickup, Region: "Anadolu"},
	{Plate: "34 PKA 202", Type: domain.VehicleTypePickup, Region: "Avrupa"},
	{Plate: "34 PKA 203", Type: domain.VehicleTypePickup, Region: "Avrupa"},
	{Plate: "34 PNL 301", Type: domain.VehicleTypeVan, Region: "Anadolu"},
	{Plate: "34 PNL 302", Type: domain.VehicleTypeVan, Region: "Avrupa"},
}

func SeedFleet(r *repository.Repository) {
	cnt := 0
	for _, v := range fleetSeed {
		vehicle := v
		if err := r.CreateVehicle(&vehicle); err != nil {
			slog.Error("failed to insert vehicle", "plate", vehicle.Plate, "error", err)
			continue
		}
		cnt++
	}
	slog.Info("fleet seeded", "count", cnt)
}

// ImportWorkbook loads employees from the Personel sheet and, when periodID is
// set, the week's shift statuses from the Vardiya sheet. Existing employees are
// matched by code and left untouched.
func ImportWorkbook(r *repository.Repository, periodID int64, path string) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		slog.Error("failed to open workbook", "path", path, "error", err)
		return
	}
	defer func() {
		_ = f.Close()
	}()

	importPersonnel(r, f)

	if periodID > 0 {
		importStatuses(r, f, periodID)
	}
}

func importPersonnel(r *repository.Repository, f *excelize.File) {
	rows, err := f.GetRows(personnelSheet)
	if err != nil {
		slog.Error("failed to read sheet", "sheet", personnelSheet, "error", err)
		return
	}
	if len(rows) < 2 {
		slog.Error("sheet has no data rows", "sheet", personnelSheet)
		return
	}

	cnt := 0
	for _, row := range rows[1:] {
		if len(row) < 3 {
			continue
		}

		code := strings.TrimSpace(row[0])
		fullName := strings.TrimSpace(row[1])
		roleText := strings.ToUpper(strings.TrimSpace(row[2]))
		if code == "" || fullName == "" {
			continue
		}

		role, ok := roleHeaderMap[roleText]
		if !ok {
			slog.Error("unrecognized role, skipping row", "code", code, "role", roleText)
			continue
		}

		if _, err := r.GetEmployeeByCode(code); err == nil {
			// Already in the database
			continue
		} else if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to look up employee", "code", code, "error", err)
			continue
		}

		emp := &domain.Employee{
			Code:     code,
			FullName: fullName,
			Role:     role,
			IsActive: true,
		}
		if err := r.CreateEmployee(emp); err != nil {
			slog.Error("failed to insert employee", "code", code, "error", err)
			continue
		}
		cnt++
	}

	slog.Info("personnel imported", "count", cnt)
}

func importStatuses(r *repository.Repository, f *excelize.File, periodID int64) {
	rows, err := f.GetRows(statusSheet)
	if err != nil {
		slog.Error("failed to read sheet", "sheet", statusSheet, "error", err)
		return
	}
	if len(rows) < 2 {
		slog.Error("sheet has no data rows", "sheet", statusSheet)
		return
	}

	entries := make([]domain.ShiftStatusEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 2 {
			continue
		}

		code := strings.TrimSpace(row[0])
		statusText := strings.ToUpper(strings.TrimSpace(row[1]))
		if code == "" {
			continue
		}

		status, ok := statusHeaderMap[statusText]
		if !ok {
			status = domain.ParseShiftStatus(statusText)
		}

		entries = append(entries, domain.ShiftStatusEntry{
			EmployeeCode: code,
			Status:       status,
		})
	}

	if len(entries) == 0 {
		slog.Error("no usable status rows", "sheet", statusSheet)
		return
	}

	if err := r.UpsertShiftStatuses(periodID, entries); err != nil {
		slog.Error("failed to save shift statuses", "error", err)
		return
	}

	slog.Info("shift statuses imported", "count", len(entries), "period_id", periodID)
}
