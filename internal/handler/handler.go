package handler

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"berichtsheft-bot/internal/config"
	"berichtsheft-bot/internal/models"
	"berichtsheft-bot/internal/service"
	"berichtsheft-bot/pkg/telegram"
)

type Handler struct {
	client             *telegram.Client
	userService        *service.UserService
	scheduleService    *service.WorkScheduleService
	vacationService    *service.VacationService
	entryService       *service.EntryService
	reportService      *service.ReportService
	monthlyStatService *service.MonthlyStatService
	userStates         map[int64]string
	config             *config.BotConfig
	now                func() time.Time
}

func NewHandler(
	client *telegram.Client,
	userService *service.UserService,
	scheduleService *service.WorkScheduleService,
	vacationService *service.VacationService,
	entryService *service.EntryService,
	reportService *service.ReportService,
	monthlyStatService *service.MonthlyStatService,
	cfg *config.BotConfig,
) *Handler {
	return &Handler{
		client:             client,
		userService:        userService,
		scheduleService:    scheduleService,
		vacationService:    vacationService,
		entryService:       entryService,
		reportService:      reportService,
		monthlyStatService: monthlyStatService,
		userStates:         make(map[int64]string),
		config:             cfg,
		now:                time.Now,
	}
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		// Обработка callback query (для inline кнопок)
		if update.CallbackQuery != nil {
			h.handleCallbackQuery(update.CallbackQuery)
			continue
		}

		if update.Message == nil {
			continue
		}

		h.handleMessage(update.Message)
	}
}

// handleCallbackQuery обрабатывает inline кнопки
func (h *Handler) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	// Удаляем клавиатуру
	editMsg := tgbotapi.NewEditMessageReplyMarkup(chatID, callback.Message.MessageID, tgbotapi.NewInlineKeyboardMarkup())
	h.send(editMsg)

	switch callback.Data {
	case "confirm_delete":
		if err := h.userService.DeleteUser(chatID); err != nil {
			h.reply(chatID, "❌ Ошибка удаления профиля: "+err.Error())
		} else {
			delete(h.userStates, chatID)
			h.reply(chatID, "✅ Ваш профиль и все записи удалены!")
		}

	case "cancel_delete":
		h.reply(chatID, "❌ Удаление профиля отменено.")
	}

	// Отвечаем на callback (убираем "часики" у кнопки)
	if _, err := h.client.Bot.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		logrus.WithError(err).Warn("Failed to answer callback")
	}
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	if message.From != nil {
		logrus.Infof("[%s] %s", message.From.UserName, message.Text)
	}

	chatID := message.Chat.ID

	// Пользователь в процессе создания/обновления профиля
	if state, exists := h.userStates[chatID]; exists && !message.IsCommand() {
		h.handleProfileState(message, state)
		return
	}
	delete(h.userStates, chatID)

	if message.IsCommand() {
		h.handleCommand(message)
		return
	}

	h.reply(chatID, "🤔 Я понимаю только команды. Используйте /help для списка команд.")
}

// requireUser возвращает профиль или сообщает, что его нужно создать
func (h *Handler) requireUser(chatID int64) (*models.User, bool) {
	user, err := h.userService.GetUser(chatID)
	if err != nil {
		if service.IsNotFound(err) {
			logrus.WithField("chat_id", chatID).Warn("User not found")
			h.reply(chatID, "❌ Профиль не найден.\nИспользуйте /createprofile чтобы создать профиль.")
		} else {
			logrus.WithError(err).WithField("chat_id", chatID).Error("Failed to get user")
			h.reply(chatID, "❌ Ошибка получения профиля: "+err.Error())
		}
		return nil, false
	}
	return user, true
}

// requireAdmin проверяет права администратора
func (h *Handler) requireAdmin(chatID int64) bool {
	isAdmin, err := h.userService.IsAdmin(chatID)
	if err != nil {
		logrus.WithError(err).Error("Error checking admin status")
		h.reply(chatID, "❌ Ошибка проверки прав доступа: "+err.Error())
		return false
	}
	if !isAdmin {
		logrus.WithField("chat_id", chatID).Warn("Unauthorized access to admin command")
		h.reply(chatID, "❌ Доступ запрещен. Эта команда только для администраторов.")
		return false
	}
	return true
}

func (h *Handler) reply(chatID int64, text string) {
	h.send(tgbotapi.NewMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.client.Bot.Send(c); err != nil {
		logrus.WithError(err).Warn("Failed to send telegram message")
	}
}
