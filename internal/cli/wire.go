package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"berichtsheft-bot/internal/config"
	"berichtsheft-bot/internal/database"
	"berichtsheft-bot/internal/repository"
	"berichtsheft-bot/internal/service"
)

// app репозитории и сервисы поверх одной базы
type app struct {
	db        *gorm.DB
	entryRepo *repository.GormEntryRepository

	users     *service.UserService
	schedules *service.WorkScheduleService
	vacations *service.VacationService
	entries   *service.EntryService
	reports   *service.ReportService
	stats     *service.MonthlyStatService
}

func newApp(cfg *config.BotConfig) (*app, error) {
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	a, err := wire(db, cfg)
	if err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return a, nil
}

func wire(db *gorm.DB, cfg *config.BotConfig) (*app, error) {
	userRepo, err := repository.NewGormUserRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	scheduleRepo, err := repository.NewGormWorkScheduleRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create work schedule repository: %w", err)
	}

	vacationRepo, err := repository.NewGormVacationPeriodRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create vacation repository: %w", err)
	}

	entryRepo, err := repository.NewGormEntryRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry repository: %w", err)
	}

	// Битый файл графика не мешает запуску, остается график по умолчанию
	defaultSchedule, err := config.LoadDefaultSchedule(cfg.DefaultScheduleFile)
	if err != nil {
		logrus.WithError(err).Warn("Using built-in default schedule")
	}

	schedules := service.NewWorkScheduleService(scheduleRepo, defaultSchedule)

	return &app{
		db:        db,
		entryRepo: entryRepo,
		users:     service.NewUserService(userRepo, scheduleRepo, vacationRepo, entryRepo, defaultSchedule),
		schedules: schedules,
		vacations: service.NewVacationService(vacationRepo),
		entries:   service.NewEntryService(entryRepo, schedules),
		reports:   service.NewReportService(userRepo, entryRepo, vacationRepo, schedules, cfg.CompanyName),
		stats:     service.NewMonthlyStatService(entryRepo, vacationRepo, schedules),
	}, nil
}

func (a *app) Close() {
	if err := database.Close(a.db); err != nil {
		logrus.WithError(err).Warn("Error closing database")
	}
}
