package service

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"berichtsheft-bot/internal/logging"
	"berichtsheft-bot/internal/models"
	"berichtsheft-bot/internal/report"
	"berichtsheft-bot/internal/repository"
	"berichtsheft-bot/internal/timecalc"
)

// Report готовый PDF отчет
type Report struct {
	FileName string
	Data     []byte
	Weeks    int
	From     time.Time
	To       time.Time
}

type ReportService struct {
	userRepo     repository.UserRepository
	entryRepo    repository.EntryRepository
	vacationRepo repository.VacationPeriodRepository
	schedule     *WorkScheduleService
	companyName  string
	now          func() time.Time
	logger       *logrus.Logger
}

func NewReportService(
	userRepo repository.UserRepository,
	entryRepo repository.EntryRepository,
	vacationRepo repository.VacationPeriodRepository,
	schedule *WorkScheduleService,
	companyName string,
) *ReportService {
	return &ReportService{
		userRepo:     userRepo,
		entryRepo:    entryRepo,
		vacationRepo: vacationRepo,
		schedule:     schedule,
		companyName:  companyName,
		now:          time.Now,
		logger:       logging.New(),
	}
}

// Generate собирает Berichtsheft пользователя от даты начала обучения до сегодня.
// Ошибки данных пользователя возвращаются как есть, сбои БД и PDF как *ReportError.
func (s *ReportService) Generate(chatID int64) (*Report, error) {
	user, err := s.userRepo.GetByChatID(chatID)
	if err != nil {
		return nil, s.fail("load user", chatID, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.TrainingStartDate == nil {
		return nil, ErrNoTrainingStart
	}

	now := s.now()
	from := timecalc.Day(*user.TrainingStartDate)
	to := timecalc.Day(now)

	entries, err := s.entryRepo.FindByUserAndRange(user.ID, from, to)
	if err != nil {
		return nil, s.fail("load entries", chatID, err)
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	// отпуск может закрывать дни последней недели после сегодняшнего
	vacations, err := s.vacationRepo.GetInRange(user.ID, timecalc.MondayOnOrBefore(from), to.AddDate(0, 0, 7))
	if err != nil {
		return nil, s.fail("load vacations", chatID, err)
	}

	cfg, err := s.schedule.GetConfig(user.ID)
	if err != nil {
		return nil, s.fail("load schedule", chatID, err)
	}

	days := make([]report.DayContent, 0, len(entries))
	for _, e := range entries {
		days = append(days, report.DayContent{Date: e.Date, Content: report.FormatContent(e.Activities)})
	}

	weeks := report.BuildWeeks(days, vacations, cfg, from)
	if len(weeks) == 0 {
		return nil, ErrNoEntries
	}

	// подпись и имя файла по первой и последней записи
	first, last := entries[0].Date, entries[len(entries)-1].Date
	in := report.Input{
		Month:     timecalc.GermanMonth(first.Month()),
		Year:      strconv.Itoa(first.Year()),
		DateRange: timecalc.FormatRange(first, last),
		Weeks:     weeks,
		User:      s.userInfo(user, now),
		Config:    cfg,
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, in); err != nil {
		return nil, s.fail("render pdf", chatID, err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"weeks":   len(weeks),
		"entries": len(entries),
		"bytes":   buf.Len(),
	}).Info("Report generated")

	return &Report{
		FileName: fmt.Sprintf("berichtsheft-%s-bis-%s.pdf", first.Format("2006-01-02"), last.Format("2006-01-02")),
		Data:     buf.Bytes(),
		Weeks:    len(weeks),
		From:     first,
		To:       last,
	}, nil
}

func (s *ReportService) userInfo(user *models.User, now time.Time) report.UserInfo {
	return report.UserInfo{
		Name:         user.FullName(),
		Company:      s.companyName,
		Department:   user.DepartmentOrDefault(),
		Profession:   user.ProfessionOrDefault(),
		TrainingYear: user.TrainingYear(now),
	}
}

func (s *ReportService) fail(op string, chatID int64, err error) error {
	reportErr := newReportError(op, err)
	s.logger.WithError(err).WithFields(logrus.Fields{
		"incident": reportErr.ID.String(),
		"op":       op,
		"chat_id":  chatID,
	}).Error("Report generation failed")
	return reportErr
}
