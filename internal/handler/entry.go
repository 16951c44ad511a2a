package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"berichtsheft-bot/internal/report"
	"berichtsheft-bot/internal/repository"
	"berichtsheft-bot/internal/timecalc"
)

// saveEntry /entry [дата] активность; активность (2h)
func (h *Handler) saveEntry(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.requireUser(chatID)
	if !ok {
		return
	}

	date, text := splitDateArg(args, h.now())
	if text == "" {
		h.reply(chatID, `📝 Запись дня

Формат команды:
/entry [дата] активность; активность (2h); ...

Примеры:
/entry Datenbank-Schulung; Code Review (2h)
/entry 06.10.2025 Projektarbeit (6h); Meeting

Активности с (Xh) получают указанное время, остальные делят оставшиеся часы дня.`)
		return
	}

	activities := h.entryService.ParseActivities(text)
	entry, err := h.entryService.SaveEntry(user.ID, date, activities)
	if err != nil {
		logrus.WithError(err).WithField("chat_id", chatID).Warn("Failed to save entry")
		h.reply(chatID, "❌ Ошибка сохранения записи: "+err.Error())
		return
	}

	h.reply(chatID, "✅ Запись сохранена!\n\n"+h.entryService.FormatEntry(entry))
}

// markDone /done [дата]
func (h *Handler) markDone(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.requireUser(chatID)
	if !ok {
		return
	}

	date, _ := splitDateArg(args, h.now())
	if err := h.entryService.SetCompleted(user.ID, date, true); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			h.reply(chatID, fmt.Sprintf("📭 Записи за %s нет.", timecalc.FormatDate(date)))
			return
		}
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ %s отмечен как проверенный.", timecalc.FormatDate(date)))
}

// showDay /day [дата]
func (h *Handler) showDay(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.requireUser(chatID)
	if !ok {
		return
	}

	date, _ := splitDateArg(args, h.now())
	entry, err := h.entryService.GetEntry(user.ID, date)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			h.reply(chatID, fmt.Sprintf("📭 Записи за %s нет.\nДобавить: /entry %s активность; ...",
				timecalc.FormatDate(date), timecalc.FormatDate(date)))
			return
		}
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	h.reply(chatID, h.entryService.FormatEntry(entry))
}

// showMonth /month [месяц] или [год месяц]
func (h *Handler) showMonth(message *tgbotapi.Message, args string) {
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

	entries, err := h.entryService.GetMonthEntries(user.ID, year, month)
	if err != nil {
		logrus.WithError(err).Error("Failed to get month entries")
		h.reply(chatID, "❌ Ошибка получения записей: "+err.Error())
		return
	}

	h.reply(chatID, h.entryService.FormatMonth(year, month, entries))
}

// suggestSplit /split [дата] N
func (h *Handler) suggestSplit(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user, ok := h.requireUser(chatID)
	if !ok {
		return
	}

	date, rest := splitDateArg(args, h.now())
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		h.reply(chatID, "❌ Укажите количество частей.\nПример: /split 3")
		return
	}

	parts, err := h.entryService.SuggestSplit(user.ID, date, n)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	hours := make([]string, len(parts))
	for i, p := range parts {
		hours[i] = report.FormatHours(p) + "h"
	}

	h.reply(chatID, fmt.Sprintf("🧮 Разбивка %s на %d частей: %s", timecalc.FormatDate(date), n, strings.Join(hours, " / ")))
}
