package service

import (
	"errors"

	"github.com/google/uuid"

	"berichtsheft-bot/internal/repository"
)

var (
	ErrUserNotFound    = repository.ErrUserNotFound
	ErrNoTrainingStart = errors.New("не указана дата начала обучения, используйте /setstart ДД.ММ.ГГГГ")
	ErrNoEntries       = errors.New("нет записей для отчета")
	ErrNoActivities    = errors.New("нужна хотя бы одна активность")
	ErrDayDisabled     = errors.New("этот день недели выключен в графике")
	ErrVacationRange   = errors.New("дата окончания не может быть раньше даты начала")
	ErrNotOwner        = errors.New("отпуск не найден")
)

// ReportError сбой окружения при сборке отчета (БД, PDF).
// Наружу уходит одно общее сообщение, причина и номер инцидента остаются в логе.
type ReportError struct {
	ID  uuid.UUID
	Op  string
	Err error
}

func newReportError(op string, err error) *ReportError {
	return &ReportError{ID: uuid.New(), Op: op, Err: err}
}

func (e *ReportError) Error() string {
	return "report generation failed"
}

func (e *ReportError) Unwrap() error {
	return e.Err
}
