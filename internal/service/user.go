package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"berichtsheft-bot/internal/logging"
	"berichtsheft-bot/internal/models"
	"berichtsheft-bot/internal/repository"
	"berichtsheft-bot/internal/timecalc"
)

type UserService struct {
	repo            repository.UserRepository
	scheduleRepo    repository.WorkScheduleRepository
	vacationRepo    repository.VacationPeriodRepository
	entryRepo       repository.EntryRepository
	defaultSchedule models.WeekdayConfig
	logger          *logrus.Logger
}

func NewUserService(
	repo repository.UserRepository,
	scheduleRepo repository.WorkScheduleRepository,
	vacationRepo repository.VacationPeriodRepository,
	entryRepo repository.EntryRepository,
	defaultSchedule models.WeekdayConfig,
) *UserService {
	return &UserService{
		repo:            repo,
		scheduleRepo:    scheduleRepo,
		vacationRepo:    vacationRepo,
		entryRepo:       entryRepo,
		defaultSchedule: defaultSchedule,
		logger:          logging.New(),
	}
}

// CreateUser создает пользователя с ролью client и графиком по умолчанию
func (s *UserService) CreateUser(chatID int64, username, firstName, lastName string) (*models.User, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, fmt.Errorf("имя не может быть пустым")
	}

	user := &models.User{
		ChatID:    chatID,
		Username:  username,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Role:      models.RoleClient,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("ошибка создания пользователя: %w", err)
	}

	schedule := &models.WorkSchedule{UserID: user.ID, WeekdayConfig: s.defaultSchedule}
	if err := s.scheduleRepo.Save(schedule); err != nil {
		s.logger.WithError(err).WithField("user_id", user.ID).Error("Failed to create default schedule")
		return nil, fmt.Errorf("ошибка создания графика: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"chat_id": chatID,
	}).Info("User registered")

	return user, nil
}

// GetUser возвращает пользователя по chatID
func (s *UserService) GetUser(chatID int64) (*models.User, error) {
	user, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения пользователя: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

// UpdateUser обновляет имя, фамилию и никнейм, пустые значения не трогает
func (s *UserService) UpdateUser(chatID int64, username, firstName, lastName string) (*models.User, error) {
	return s.update(chatID, func(user *models.User) error {
		if username != "" {
			user.Username = username
		}
		if firstName != "" {
			user.FirstName = firstName
		}
		if lastName != "" {
			user.LastName = lastName
		}
		return nil
	})
}

// SetTrainingStart задает дату начала обучения, от нее считаются недели отчета
func (s *UserService) SetTrainingStart(chatID int64, date time.Time) (*models.User, error) {
	return s.update(chatID, func(user *models.User) error {
		day := timecalc.Day(date)
		if day.After(timecalc.Today()) {
			return fmt.Errorf("дата начала обучения не может быть в будущем")
		}
		user.TrainingStartDate = &day
		return nil
	})
}

// SetProfession задает профессию, пустая строка возвращает значение по умолчанию
func (s *UserService) SetProfession(chatID int64, profession string) (*models.User, error) {
	return s.update(chatID, func(user *models.User) error {
		user.TrainingProfession = strings.TrimSpace(profession)
		return nil
	})
}

// SetDepartment задает отдел, пустая строка возвращает значение по умолчанию
func (s *UserService) SetDepartment(chatID int64, department string) (*models.User, error) {
	return s.update(chatID, func(user *models.User) error {
		user.Department = strings.TrimSpace(department)
		return nil
	})
}

func (s *UserService) update(chatID int64, apply func(user *models.User) error) (*models.User, error) {
	user, err := s.GetUser(chatID)
	if err != nil {
		return nil, err
	}

	if err := apply(user); err != nil {
		return nil, err
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("ошибка обновления пользователя: %w", err)
	}

	return user, nil
}

// UpdateRole обновляет роль пользователя (только для админов)
func (s *UserService) UpdateRole(adminChatID, targetChatID int64, role models.Role) error {
	admin, err := s.repo.GetByChatID(adminChatID)
	if err != nil {
		return fmt.Errorf("ошибка проверки админа: %w", err)
	}
	if admin == nil || !admin.IsAdmin() {
		return fmt.Errorf("доступ запрещен: только администраторы могут менять роли")
	}

	target, err := s.repo.GetByChatID(targetChatID)
	if err != nil {
		return fmt.Errorf("ошибка поиска пользователя: %w", err)
	}
	if target == nil {
		return ErrUserNotFound
	}

	return s.repo.UpdateRole(targetChatID, role)
}

// DeleteUser удаляет пользователя вместе с записями, отпусками и графиком
func (s *UserService) DeleteUser(chatID int64) error {
	user, err := s.GetUser(chatID)
	if err != nil {
		return err
	}

	if err := s.entryRepo.DeleteByUserID(user.ID); err != nil {
		return fmt.Errorf("ошибка удаления записей: %w", err)
	}
	if err := s.vacationRepo.DeleteByUserID(user.ID); err != nil {
		return fmt.Errorf("ошибка удаления отпусков: %w", err)
	}
	if err := s.scheduleRepo.DeleteByUserID(user.ID); err != nil {
		return fmt.Errorf("ошибка удаления графика: %w", err)
	}

	if err := s.repo.Delete(chatID); err != nil {
		return err
	}

	s.logger.WithField("user_id", user.ID).Info("User deleted with all data")
	return nil
}

// FormatUserInfo форматирует информацию о пользователе для вывода
func (s *UserService) FormatUserInfo(user *models.User) string {
	var lines []string

	lines = append(lines, "👤 Профиль пользователя:")
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("🆔 ID чата: %d", user.ChatID))

	if user.Username != "" {
		lines = append(lines, fmt.Sprintf("📛 Никнейм: @%s", user.Username))
	}

	lines = append(lines, fmt.Sprintf("👨‍💼 Имя: %s", user.FirstName))
	if user.LastName != "" {
		lines = append(lines, fmt.Sprintf("👨‍💼 Фамилия: %s", user.LastName))
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("🎓 Профессия: %s", user.ProfessionOrDefault()))
	lines = append(lines, fmt.Sprintf("🏢 Отдел: %s", user.DepartmentOrDefault()))
	if user.TrainingStartDate != nil {
		lines = append(lines, fmt.Sprintf("📅 Начало обучения: %s", timecalc.FormatDate(*user.TrainingStartDate)))
		lines = append(lines, fmt.Sprintf("📚 Год обучения: %d", user.TrainingYear(time.Now())))
	} else {
		lines = append(lines, "📅 Начало обучения: не указано (/setstart)")
	}

	roleEmoji := "👤"
	if user.IsAdmin() {
		roleEmoji = "👑"
	}
	lines = append(lines, fmt.Sprintf("%s Роль: %s", roleEmoji, string(user.Role)))

	return strings.Join(lines, "\n")
}

// GetAllUsers возвращает всех пользователей
func (s *UserService) GetAllUsers() ([]*models.User, error) {
	return s.repo.GetAll()
}

// GetAdmins возвращает всех администраторов
func (s *UserService) GetAdmins() ([]*models.User, error) {
	return s.repo.GetAdmins()
}

// GetStats возвращает число пользователей и администраторов
func (s *UserService) GetStats() (int, int, error) {
	return s.repo.GetStats()
}

// FormatAllUsers форматирует список всех пользователей
func (s *UserService) FormatAllUsers() (string, error) {
	users, err := s.GetAllUsers()
	if err != nil {
		return "", err
	}

	if len(users) == 0 {
		return "📭 Список пользователей пуст.", nil
	}

	var lines []string
	lines = append(lines, "📋 Все пользователи:")
	lines = append(lines, "")

	for i, user := range users {
		roleEmoji := "👤"
		if user.IsAdmin() {
			roleEmoji = "👑"
		}

		userInfo := fmt.Sprintf("%d. %s %s ", i+1, roleEmoji, user.FullName())
		if user.Username != "" {
			userInfo += fmt.Sprintf("(@%s) ", user.Username)
		}
		userInfo += fmt.Sprintf("- ID: %d", user.ChatID)
		lines = append(lines, userInfo)
	}

	total, admins, err := s.GetStats()
	if err == nil {
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("📊 Всего пользователей: %d", total))
		lines = append(lines, fmt.Sprintf("👑 Администраторов: %d", admins))
	}

	return strings.Join(lines, "\n"), nil
}

// IsAdmin проверяет, является ли пользователь администратором
func (s *UserService) IsAdmin(chatID int64) (bool, error) {
	user, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return false, err
	}

	return user != nil && user.IsAdmin(), nil
}

// InitializeAdmin назначает администратора из конфига, создавая профиль при необходимости
func (s *UserService) InitializeAdmin(adminChatID int64) error {
	if adminChatID == 0 {
		return nil // Админ не задан в конфиге
	}

	existing, err := s.repo.GetByChatID(adminChatID)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.repo.UpdateRole(adminChatID, models.RoleAdmin)
	}

	if _, err := s.CreateUser(adminChatID, "admin", "Администратор", ""); err != nil {
		return err
	}
	return s.repo.UpdateRole(adminChatID, models.RoleAdmin)
}

// IsNotFound сообщает, что пользователь еще не создал профиль
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}
