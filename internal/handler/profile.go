package handler

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"berichtsheft-bot/internal/timecalc"
)

const (
	stateAwaitingFirstName = "awaiting_first_name"
	stateAwaitingLastName  = "awaiting_last_name:"
	stateAwaitingUpdate    = "awaiting_update"
)

// startProfileCreation начинает процесс создания профиля
func (h *Handler) startProfileCreation(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	// Проверяем, есть ли уже профиль
	if user, err := h.userService.GetUser(chatID); err == nil && user != nil {
		h.reply(chatID, "❌ У вас уже есть профиль!\nИспользуйте /myprofile чтобы посмотреть его или /updateprofile чтобы изменить.")
		return
	}

	h.userStates[chatID] = stateAwaitingFirstName

	h.reply(chatID, `👤 Создание профиля

Шаг 1 из 2:
✏️ Пожалуйста, отправьте ваше имя (как в Berichtsheft):`)
}

// handleProfileState обрабатывает состояния создания/обновления профиля
func (h *Handler) handleProfileState(message *tgbotapi.Message, state string) {
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	username := ""
	if message.From != nil {
		username = message.From.UserName
	}

	switch {
	case state == stateAwaitingFirstName:
		if text == "" {
			h.reply(chatID, "❌ Имя не может быть пустым. Отправьте ваше имя:")
			return
		}
		h.userStates[chatID] = stateAwaitingLastName + text

		h.reply(chatID, fmt.Sprintf(`Шаг 2 из 2:
✅ Имя сохранено: %s
✏️ Теперь отправьте вашу фамилию (если нет фамилии, отправьте "-"):`, text))

	case strings.HasPrefix(state, stateAwaitingLastName):
		firstName := strings.TrimPrefix(state, stateAwaitingLastName)
		lastName := text
		if lastName == "-" {
			lastName = ""
		}

		delete(h.userStates, chatID)

		user, err := h.userService.CreateUser(chatID, username, firstName, lastName)
		if err != nil {
			h.reply(chatID, "❌ Ошибка создания профиля: "+err.Error())
			return
		}

		h.reply(chatID, fmt.Sprintf(`🎉 Профиль успешно создан!

%s

Следующий шаг: укажите дату начала обучения командой /setstart ДД.ММ.ГГГГ`, h.userService.FormatUserInfo(user)))

	case state == stateAwaitingUpdate:
		delete(h.userStates, chatID)

		parts := strings.Fields(text)
		if len(parts) < 1 {
			h.reply(chatID, "❌ Неверный формат. Пожалуйста, отправьте имя и фамилию.")
			return
		}

		firstName := parts[0]
		lastName := strings.Join(parts[1:], " ")

		user, err := h.userService.UpdateUser(chatID, username, firstName, lastName)
		if err != nil {
			h.reply(chatID, "❌ Ошибка обновления профиля: "+err.Error())
			return
		}

		h.reply(chatID, "✅ Профиль успешно обновлен!\n\n"+h.userService.FormatUserInfo(user))

	default:
		logrus.WithField("state", state).Warn("Unknown profile state")
		delete(h.userStates, chatID)
	}
}

// showProfile показывает профиль пользователя
func (h *Handler) showProfile(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	user, ok := h.requireUser(chatID)
	if !ok {
		return
	}

	h.reply(chatID, h.userService.FormatUserInfo(user))
}

// startProfileUpdate начинает процесс обновления профиля
func (h *Handler) startProfileUpdate(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if _, ok := h.requireUser(chatID); !ok {
		return
	}

	h.reply(chatID, `✏️ Обновление профиля

Отправьте новые данные в формате:
Имя Фамилия

Например: Max Mustermann
Или просто: Max (если нужно обновить только имя)`)

	h.userStates[chatID] = stateAwaitingUpdate
}

// deleteProfile спрашивает подтверждение удаления
func (h *Handler) deleteProfile(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Да, удалить", "confirm_delete"),
			tgbotapi.NewInlineKeyboardButtonData("❌ Нет, отменить", "cancel_delete"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, "⚠️ Вы уверены, что хотите удалить профиль?\nВсе записи, отпуска и график будут удалены. Это действие нельзя отменить.")
	msg.ReplyMarkup = keyboard
	h.send(msg)
}

func (h *Handler) setTrainingStart(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if strings.TrimSpace(args) == "" {
		h.reply(chatID, "❌ Укажите дату: /setstart ДД.ММ.ГГГГ")
		return
	}

	date, err := parseDate(args, h.now())
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	user, err := h.userService.SetTrainingStart(chatID, date)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Начало обучения: %s\n📚 Год обучения: %d",
		timecalc.FormatDate(*user.TrainingStartDate), user.TrainingYear(h.now())))
}

func (h *Handler) setProfession(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, err := h.userService.SetProfession(chatID, args)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	h.reply(chatID, "✅ Профессия: "+user.ProfessionOrDefault())
}

func (h *Handler) setDepartment(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, err := h.userService.SetDepartment(chatID, args)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	h.reply(chatID, "✅ Отдел: "+user.DepartmentOrDefault())
}
