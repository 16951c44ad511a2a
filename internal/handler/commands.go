package handler

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start":
		h.sendStartMessage(message)
	case "help":
		h.sendHelpMessage(message)
	case "helpadmin":
		h.sendAdminHelpMessage(message)

	// Профиль
	case "createprofile":
		h.startProfileCreation(message)
	case "myprofile":
		h.showProfile(message)
	case "updateprofile":
		h.startProfileUpdate(message)
	case "deleteprofile":
		h.deleteProfile(message)
	case "setstart":
		h.setTrainingStart(message, args)
	case "setprofession":
		h.setProfession(message, args)
	case "setdepartment":
		h.setDepartment(message, args)

	// График
	case "schedule":
		h.showSchedule(message)
	case "setday":
		h.setScheduleDay(message, args)

	// Записи
	case "entry", "e":
		h.saveEntry(message, args)
	case "done":
		h.markDone(message, args)
	case "day":
		h.showDay(message, args)
	case "month":
		h.showMonth(message, args)
	case "split":
		h.suggestSplit(message, args)

	// Отпуска
	case "vacation":
		h.addVacation(message, args)
	case "myvacations":
		h.showMyVacations(message)
	case "delvacation":
		h.deleteVacation(message, args)

	// Статистика и отчет
	case "stat":
		h.showMonthStat(message, args)
	case "report":
		h.sendReport(message)

	// Администрирование
	case "allusers":
		h.showAllUsers(message)
	case "stats":
		h.showStats(message)
	case "promote":
		h.promoteToAdmin(message, args)
	case "demote":
		h.demoteToClient(message, args)
	case "admins":
		h.showAdmins(message)

	default:
		h.sendUnknownCommand(message)
	}
}

func (h *Handler) sendUnknownCommand(message *tgbotapi.Message) {
	h.reply(message.Chat.ID, "❌ Неизвестная команда. Используйте /help для списка команд.")
}

func (h *Handler) sendStartMessage(message *tgbotapi.Message) {
	text := `👋 Привет! Я веду твой Berichtsheft.

Каждый день записывай, чем занимался, а в конце месяца получай готовый PDF для подписи.

💡 Как начать:
1. Создайте профиль командой /createprofile
2. Укажите дату начала обучения: /setstart 01.09.2025
3. Записывайте день: /entry Coding; Code Review (2h)
4. Получите отчет: /report

Все команды: /help`

	h.reply(message.Chat.ID, text)
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	text := `📋 Доступные команды:

👤 Профиль:
/createprofile - Создать профиль
/myprofile - Показать мой профиль
/updateprofile - Обновить имя
/deleteprofile - Удалить профиль и все записи
/setstart ДД.ММ.ГГГГ - Дата начала обучения
/setprofession [текст] - Профессия (пусто = Fachinformatiker)
/setdepartment [текст] - Отдел (пусто = EDV)

📅 Рабочий график:
/schedule - Показать график
/setday день on|off [часы] - Настроить день
    Пример: /setday sa on 4

📝 Записи:
/entry [дата] активность; активность (2h) - Записать день
    Активности без времени делят оставшиеся часы дня поровну
/done [дата] - Отметить день проверенным
/day [дата] - Показать запись за день
/month [месяц] или [год месяц] - Записи за месяц
/split [дата] N - Предложить разбивку дня на N частей

🏖️ Отпуска:
/vacation начало конец [описание] - Добавить отпуск
/myvacations - Мои отпуска
/delvacation ID - Удалить отпуск

📊 Отчеты:
/stat [месяц] или [год месяц] - План и факт за месяц
/report - Berichtsheft в PDF

Дата: ДД.ММ.ГГГГ, ДД.ММ, today/heute/сегодня или gestern/вчера`

	h.reply(message.Chat.ID, text)
}

func (h *Handler) sendAdminHelpMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !h.requireAdmin(chatID) {
		return
	}

	text := `👑 Администрирование:
/allusers - Показать всех пользователей
/stats - Статистика бота
/admins - Показать администраторов
/promote ID - Назначить администратора
/demote ID - Снять администратора`

	if h.config.BaseAdminChatID != 0 {
		text += fmt.Sprintf("\n\n🔧 ID главного администратора: %d", h.config.BaseAdminChatID)
	}

	h.reply(chatID, text)
}
