package handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// showMonthStat показывает план и факт за месяц
func (h *Handler) showMonthStat(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.requireUser(chatID)
	if !ok {
		return
	}

	year, month, err := parseMonthArgs(args, h.now())
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	stat, err := h.monthlyStatService.GetMonthStat(user.ID, year, month)
	if err != nil {
		logrus.WithError(err).Error("Failed to get monthly stat")
		h.reply(chatID, "❌ Ошибка получения статистики: "+err.Error())
		return
	}

	h.reply(chatID, h.monthlyStatService.FormatStat(stat))
}
