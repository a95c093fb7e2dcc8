package bot

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"img_tg_bot/internal/pkg/session/domain"
)

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}

	if len(msg.Photo) > 0 || msg.Document != nil {
		b.handleImageMessage(msg)
		return
	}

	if msg.Text != "" {
		b.handleDialogueText(msg)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.handleStart(msg)
	case "login":
		b.handleLogin(msg)
	case "me":
		b.handleMe(msg)
	case "set_storage":
		b.handleSetStorage(msg)
	case "logout":
		b.handleLogout(msg)
	default:
		b.sendText(msg.Chat.ID, "Неизвестная команда 🤔")
	}
}

func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	if query.From == nil {
		return
	}

	// Сначала подтверждаем нажатие, чтобы у кнопки пропали «часики».
	if _, err := b.Api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Printf("Error answering callback: %v", err)
	}

	switch {
	case strings.HasPrefix(query.Data, storageCallbackPrefix):
		b.handleStorageSelection(query)
	case strings.HasPrefix(query.Data, tempStorageCallbackPrefix):
		b.handleTempStorageSelection(query)
	}
}

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	text := fmt.Sprintf(`📌 Добро пожаловать в %s
🤖 Отправьте картинку — после входа она сразу загрузится

/login — вход в фотохостинг
/me — информация об аккаунте
/set_storage — хранилище по умолчанию
/logout — выход (настройки не сохраняются)`, b.name)

	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.DisableWebPagePreview = true
	if _, err := b.Api.Send(reply); err != nil {
		log.Printf("Error sending start message: %v", err)
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	reply := tgbotapi.NewMessage(chatID, text)
	if _, err := b.Api.Send(reply); err != nil {
		log.Printf("Error sending message to chat %d: %v", chatID, err)
	}
}

// sendTyping сигналит «бот печатает» перед обращением к фотохостингу.
// Сбой не влияет на дальнейший поток.
func (b *Bot) sendTyping(chatID int64) {
	if _, err := b.Api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		log.Printf("Error sending chat action: %v", err)
	}
}

// editMessage заменяет текст сообщения с кнопками.
func (b *Bot) editMessage(query *tgbotapi.CallbackQuery, text string) {
	if query.Message == nil {
		log.Printf("No message to edit for callback %s", query.ID)
		return
	}
	edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, text)
	if _, err := b.Api.Send(edit); err != nil {
		log.Printf("Error editing message: %v", err)
	}
}

// userSession возвращает кэш сессии пользователя, лениво подтягивая
// токен и хранилище из долговременной записи, если токена в кэше нет.
func (b *Bot) userSession(userID int64) *domain.UserSession {
	session, _ := b.sessions.GetSession(userID)
	if session == nil {
		session = &domain.UserSession{UserID: userID}
		b.sessions.SaveSession(userID, session)
	}

	if session.Token == "" {
		record, err := b.users.Load(userID)
		if err != nil {
			log.Printf("Error loading user %d: %v", userID, err)
			return session
		}
		if record.Token != nil {
			session.Token = *record.Token
		}
		if session.StorageID == nil {
			session.StorageID = record.StorageID
		}
	}

	return session
}
