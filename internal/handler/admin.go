package handler

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"berichtsheft-bot/internal/models"
)

// showAllUsers показывает всех пользователей
func (h *Handler) showAllUsers(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !h.requireAdmin(chatID) {
		return
	}

	allUsers, err := h.userService.FormatAllUsers()
	if err != nil {
		h.reply(chatID, "❌ Ошибка получения списка пользователей: "+err.Error())
		return
	}

	h.reply(chatID, allUsers)
}

// showStats показывает статистику (только для админов)
func (h *Handler) showStats(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !h.requireAdmin(chatID) {
		return
	}

	total, admins, err := h.userService.GetStats()
	if err != nil {
		h.reply(chatID, "❌ Ошибка получения статистики: "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf(`📊 Статистика бота:

👥 Всего пользователей: %d
👑 Администраторов: %d
👤 Учеников: %d
💾 Хранилище: %s`,
		total, admins, total-admins, h.config.DatabaseURL))
}

// showAdmins показывает всех администраторов
func (h *Handler) showAdmins(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !h.requireAdmin(chatID) {
		return
	}

	admins, err := h.userService.GetAdmins()
	if err != nil {
		h.reply(chatID, "❌ Ошибка получения списка администраторов: "+err.Error())
		return
	}

	if len(admins) == 0 {
		h.reply(chatID, "👑 Список администраторов пуст.")
		return
	}

	var lines []string
	lines = append(lines, "👑 Администраторы:")
	lines = append(lines, "")

	for i, admin := range admins {
		adminInfo := fmt.Sprintf("%d. %s ", i+1, admin.FullName())
		if admin.Username != "" {
			adminInfo += fmt.Sprintf("(@%s) ", admin.Username)
		}
		adminInfo += fmt.Sprintf("- ID: %d", admin.ChatID)
		lines = append(lines, adminInfo)
	}

	h.reply(chatID, strings.Join(lines, "\n"))
}

// promoteToAdmin назначает пользователя администратором
func (h *Handler) promoteToAdmin(message *tgbotapi.Message, args string) {
	h.changeRole(message, args, models.RoleAdmin)
}

// demoteToClient снимает права администратора
func (h *Handler) demoteToClient(message *tgbotapi.Message, args string) {
	h.changeRole(message, args, models.RoleClient)
}

func (h *Handler) changeRole(message *tgbotapi.Message, args string, role models.Role) {
	chatID := message.Chat.ID
	if !h.requireAdmin(chatID) {
		return
	}

	if strings.TrimSpace(args) == "" {
		h.reply(chatID, fmt.Sprintf("❌ Укажите ID пользователя.\nПример: /%s 123456789", message.Command()))
		return
	}

	targetChatID, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil {
		h.reply(chatID, "❌ Неверный формат ID.\nID должен быть числом.")
		return
	}

	// Не позволяем снять главного администратора из конфига
	if role != models.RoleAdmin && h.config.BaseAdminChatID != 0 && targetChatID == h.config.BaseAdminChatID {
		h.reply(chatID, "❌ Нельзя снять главного администратора, заданного в конфигурации!")
		return
	}

	if err := h.userService.UpdateRole(chatID, targetChatID, role); err != nil {
		h.reply(chatID, "❌ Ошибка изменения роли: "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Роль пользователя с ID %d изменена на '%s'!", targetChatID, role))
}
