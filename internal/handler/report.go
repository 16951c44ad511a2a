package handler

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"berichtsheft-bot/internal/service"
	"berichtsheft-bot/internal/timecalc"
	"berichtsheft-bot/pkg/telegram"
)

// sendReport собирает Berichtsheft и отправляет его документом
func (h *Handler) sendReport(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if _, err := h.client.Bot.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatUploadDocument)); err != nil {
		logrus.WithError(err).Debug("Failed to send chat action")
	}

	rep, err := h.reportService.Generate(chatID)
	if err != nil {
		var reportErr *service.ReportError
		if errors.As(err, &reportErr) {
			h.reply(chatID, fmt.Sprintf("❌ Не удалось сформировать отчет. Попробуйте позже.\nНомер инцидента: %s", reportErr.ID))
			return
		}
		if service.IsNotFound(err) {
			h.reply(chatID, "❌ Профиль не найден.\nИспользуйте /createprofile чтобы создать профиль.")
			return
		}
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	caption := fmt.Sprintf("📄 Berichtsheft %s\n📅 Недель: %d", timecalc.FormatRange(rep.From, rep.To), rep.Weeks)
	h.send(telegram.NewPDFDocument(chatID, rep.FileName, rep.Data, caption))
}
