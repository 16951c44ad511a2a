package handler

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"berichtsheft-bot/internal/timecalc"
)

// addVacation /vacation начало конец [описание]
func (h *Handler) addVacation(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.requireUser(chatID)
	if !ok {
		return
	}

	parts := strings.Fields(args)
	if len(parts) < 2 {
		h.reply(chatID, `🏖️ Добавление отпуска

Формат команды:
/vacation дата_начала дата_окончания [описание]

Примеры:
/vacation 20.10.2025 24.10.2025 Herbstferien
/vacation 15.08 15.08

В отчете дни отпуска помечаются как "Ferien (0h)".`)
		return
	}

	now := h.now()
	startDate, err := parseDate(parts[0], now)
	if err != nil {
		h.reply(chatID, "❌ Ошибка парсинга даты начала: "+err.Error())
		return
	}

	endDate, err := parseDate(parts[1], now)
	if err != nil {
		h.reply(chatID, "❌ Ошибка парсинга даты окончания: "+err.Error())
		return
	}

	period, err := h.vacationService.AddVacation(user.ID, startDate, endDate, strings.Join(parts[2:], " "))
	if err != nil {
		logrus.WithError(err).Warn("Failed to add vacation")
		h.reply(chatID, "❌ Ошибка добавления отпуска: "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf(`✅ Отпуск добавлен!

🏖️ Период: %s
📅 Количество дней: %d
🆔 Номер: %d`,
		timecalc.FormatRange(period.StartDate, period.EndDate), period.Days(), period.ID))
}

// showMyVacations /myvacations
func (h *Handler) showMyVacations(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	user, ok := h.requireUser(chatID)
	if !ok {
		return
	}

	periods, err := h.vacationService.GetUserVacations(user.ID)
	if err != nil {
		h.reply(chatID, "❌ Ошибка получения отпусков: "+err.Error())
		return
	}

	h.reply(chatID, h.vacationService.FormatVacations(periods))
}

// deleteVacation /delvacation <id>
func (h *Handler) deleteVacation(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.requireUser(chatID)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(strings.TrimSpace(args), 10, 64)
	if err != nil {
		h.reply(chatID, "❌ Укажите номер отпуска.\nПример: /delvacation 3\nНомера: /myvacations")
		return
	}

	if err := h.vacationService.DeleteVacation(user.ID, uint(id)); err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Отпуск #%d удален.", id))
}
