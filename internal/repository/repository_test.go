package repository_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"berichtsheft-bot/internal/database"
	"berichtsheft-bot/internal/models"
	"berichtsheft-bot/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenInMemory(strings.ReplaceAll(t.Name(), "/", "_"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUserRepository(t *testing.T) {
	repo, err := repository.NewGormUserRepository(newTestDB(t))
	if err != nil {
		t.Fatalf("NewGormUserRepository: %v", err)
	}

	user := &models.User{ChatID: 100, FirstName: "Max", Role: models.RoleClient}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(&models.User{ChatID: 100, FirstName: "Dup"}); !errors.Is(err, repository.ErrUserExists) {
		t.Errorf("duplicate Create err = %v, want ErrUserExists", err)
	}

	got, err := repo.GetByChatID(100)
	if err != nil || got == nil || got.FirstName != "Max" {
		t.Fatalf("GetByChatID = %+v, %v", got, err)
	}
	if missing, err := repo.GetByChatID(999); missing != nil || err != nil {
		t.Errorf("GetByChatID(missing) = %+v, %v, want nil, nil", missing, err)
	}

	byID, err := repo.GetByID(got.ID)
	if err != nil || byID == nil || byID.ChatID != 100 {
		t.Errorf("GetByID = %+v, %v", byID, err)
	}

	start := day(2024, 8, 1)
	got.TrainingStartDate = &start
	got.Department = "IT"
	if err := repo.Update(got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ = repo.GetByChatID(100)
	if got.TrainingStartDate == nil || !got.TrainingStartDate.Equal(start) || got.Department != "IT" {
		t.Errorf("after Update = %+v", got)
	}

	if err := repo.UpdateRole(100, models.RoleAdmin); err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
	if err := repo.UpdateRole(999, models.RoleAdmin); !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("UpdateRole(missing) err = %v", err)
	}

	if err := repo.Create(&models.User{ChatID: 200, FirstName: "Erika", Role: models.RoleClient}); err != nil {
		t.Fatalf("Create second: %v", err)
	}
	total, admins, err := repo.GetStats()
	if err != nil || total != 2 || admins != 1 {
		t.Errorf("GetStats = %d, %d, %v", total, admins, err)
	}

	if err := repo.Delete(200); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(200); !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("second Delete err = %v", err)
	}
}

func TestWorkScheduleRepositorySaveUpserts(t *testing.T) {
	repo, err := repository.NewGormWorkScheduleRepository(newTestDB(t))
	if err != nil {
		t.Fatalf("NewGormWorkScheduleRepository: %v", err)
	}

	if got, err := repo.GetByUserID(1); got != nil || err != nil {
		t.Fatalf("GetByUserID before save = %+v, %v", got, err)
	}

	schedule := &models.WorkSchedule{UserID: 1, WeekdayConfig: models.DefaultWeekdayConfig()}
	if err := repo.Save(schedule); err != nil {
		t.Fatalf("Save: %v", err)
	}
	firstID := schedule.ID

	cfg := models.DefaultWeekdayConfig()
	cfg.Friday = models.DayConfig{Enabled: false, Hours: 0}
	cfg.Saturday = models.DayConfig{Enabled: true, Hours: 4.5}
	if err := repo.Save(&models.WorkSchedule{UserID: 1, WeekdayConfig: cfg}); err != nil {
		t.Fatalf("Save update: %v", err)
	}

	got, err := repo.GetByUserID(1)
	if err != nil || got == nil {
		t.Fatalf("GetByUserID = %+v, %v", got, err)
	}
	if got.ID != firstID {
		t.Errorf("ID = %d, want %d (update in place)", got.ID, firstID)
	}
	if got.WeekdayConfig != cfg {
		t.Errorf("WeekdayConfig = %+v, want %+v", got.WeekdayConfig, cfg)
	}

	bad := models.DefaultWeekdayConfig()
	bad.Monday.Hours = 30
	if err := repo.Save(&models.WorkSchedule{UserID: 1, WeekdayConfig: bad}); err == nil {
		t.Error("Save with invalid hours = nil")
	}

	if err := repo.DeleteByUserID(1); err != nil {
		t.Fatalf("DeleteByUserID: %v", err)
	}
	if got, _ := repo.GetByUserID(1); got != nil {
		t.Errorf("schedule still present: %+v", got)
	}
}

func TestVacationPeriodRepository(t *testing.T) {
	repo, err := repository.NewGormVacationPeriodRepository(newTestDB(t))
	if err != nil {
		t.Fatalf("NewGormVacationPeriodRepository: %v", err)
	}

	periods := []*models.VacationPeriod{
		{UserID: 1, StartDate: day(2025, 12, 22), EndDate: day(2026, 1, 2)},
		{UserID: 1, StartDate: time.Date(2025, 10, 13, 15, 30, 0, 0, time.UTC), EndDate: day(2025, 10, 17)},
		{UserID: 2, StartDate: day(2025, 10, 1), EndDate: day(2025, 10, 31)},
	}
	for _, p := range periods {
		if err := repo.Create(p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	list, err := repo.GetByUserID(1)
	if err != nil || len(list) != 2 {
		t.Fatalf("GetByUserID = %d periods, %v", len(list), err)
	}
	if !list[0].StartDate.Equal(day(2025, 10, 13)) {
		t.Errorf("first StartDate = %v, want normalised 2025-10-13", list[0].StartDate)
	}

	inRange, err := repo.GetInRange(1, day(2025, 10, 17), day(2025, 12, 21))
	if err != nil || len(inRange) != 1 || inRange[0].ID != periods[1].ID {
		t.Errorf("GetInRange = %+v, %v", inRange, err)
	}
	inRange, _ = repo.GetInRange(1, day(2025, 10, 1), day(2026, 1, 31))
	if len(inRange) != 2 {
		t.Errorf("GetInRange(wide) = %d periods, want 2", len(inRange))
	}

	got, err := repo.GetByID(periods[0].ID)
	if err != nil || got == nil || got.UserID != 1 {
		t.Errorf("GetByID = %+v, %v", got, err)
	}
	if missing, err := repo.GetByID(999); missing != nil || err != nil {
		t.Errorf("GetByID(missing) = %+v, %v", missing, err)
	}

	if err := repo.Delete(periods[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(periods[0].ID); err == nil {
		t.Error("second Delete = nil")
	}

	if err := repo.DeleteByUserID(2); err != nil {
		t.Fatalf("DeleteByUserID: %v", err)
	}
	if list, _ := repo.GetByUserID(2); len(list) != 0 {
		t.Errorf("user 2 still has %d periods", len(list))
	}
}
