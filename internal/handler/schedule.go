package handler

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// showSchedule показывает рабочий график пользователя
func (h *Handler) showSchedule(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	user, ok := h.requireUser(chatID)
	if !ok {
		return
	}

	cfg, err := h.scheduleService.GetConfig(user.ID)
	if err != nil {
		logrus.WithError(err).Error("Failed to get schedule")
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	h.reply(chatID, h.scheduleService.FormatConfig(cfg)+"\n\nИзменить: /setday день on|off [часы]")
}

// setScheduleDay /setday <день> <on|off> [часы]
func (h *Handler) setScheduleDay(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.requireUser(chatID)
	if !ok {
		return
	}

	parts := strings.Fields(args)
	if len(parts) < 2 || len(parts) > 3 {
		h.reply(chatID, "❌ Неверный формат. Используйте: /setday день on|off [часы]\nПример: /setday sa on 4")
		return
	}

	weekday, err := parseWeekday(parts[0])
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	enabled, err := parseOnOff(parts[1])
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	cfg, err := h.scheduleService.GetConfig(user.ID)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	hours := cfg.ForWeekday(weekday).Hours
	if len(parts) == 3 {
		if hours, err = parseHours(parts[2]); err != nil {
			h.reply(chatID, "❌ "+err.Error())
			return
		}
	} else if enabled && hours == 0 {
		hours = 8
	}

	cfg, err = h.scheduleService.SetDay(user.ID, weekday, enabled, hours)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	h.reply(chatID, "✅ График обновлен!\n\n"+h.scheduleService.FormatConfig(cfg))
}
