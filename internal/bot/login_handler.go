package bot

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"img_tg_bot/internal/pkg/session/domain"
)

// handleLogin запускает диалог входа: почта, затем пароль.
func (b *Bot) handleLogin(msg *tgbotapi.Message) {
	session := b.userSession(msg.From.ID)

	if !startLogin(session) {
		b.sendText(msg.Chat.ID, "🔒 Вы уже вошли. /me — информация об аккаунте, /logout — выход.")
		return
	}

	b.sendText(msg.Chat.ID, "📧 Введите адрес электронной почты:")
}

// handleDialogueText направляет свободный текст в текущий шаг диалога.
func (b *Bot) handleDialogueText(msg *tgbotapi.Message) {
	session := b.userSession(msg.From.ID)

	switch session.AuthState {
	case domain.StateAwaitingEmail:
		b.receiveEmail(msg, session)
	case domain.StateAwaitingPassword:
		b.receivePassword(msg, session)
	}
}

func (b *Bot) receiveEmail(msg *tgbotapi.Message, session *domain.UserSession) {
	b.sendText(msg.Chat.ID, loginEmailStep(session, msg.Text))
}

func (b *Bot) receivePassword(msg *tgbotapi.Message, session *domain.UserSession) {
	password := msg.Text

	// Сообщение с паролем удаляется из переписки сразу после приёма.
	if _, err := b.Api.Request(tgbotapi.NewDeleteMessage(msg.Chat.ID, msg.MessageID)); err != nil {
		log.Printf("Error deleting password message: %v", err)
	}

	statusMsg, err := b.Api.Send(tgbotapi.NewMessage(msg.Chat.ID, "⚠️ Выполняется вход..."))
	if err != nil {
		log.Printf("Error sending status message: %v", err)
	}

	email := finishLogin(session)

	b.sendTyping(msg.Chat.ID)
	token, loginErr := b.lsky.Login(email, password)

	if statusMsg.MessageID != 0 {
		if _, err := b.Api.Request(tgbotapi.NewDeleteMessage(msg.Chat.ID, statusMsg.MessageID)); err != nil {
			log.Printf("Error deleting status message: %v", err)
		}
	}

	if loginErr != nil {
		b.sendText(msg.Chat.ID, fmt.Sprintf("❌ Не удалось войти: %s\n\nПопробуйте снова: /login", loginErr))
		return
	}

	session.Token = token
	if err := b.users.UpsertToken(msg.From.ID, token); err != nil {
		log.Printf("Error saving token for user %d: %v", msg.From.ID, err)
	}

	b.sendText(msg.Chat.ID, "✅ Вход выполнен!\n\nТеперь просто отправьте картинку для загрузки.")
}

// handleLogout очищает сессию и долговременную запись.
func (b *Bot) handleLogout(msg *tgbotapi.Message) {
	session := b.userSession(msg.From.ID)
	if session.Token == "" {
		b.sendText(msg.Chat.ID, "ℹ️ Вы не вошли, выходить не из чего. /login — вход.")
		return
	}

	b.sessions.DeleteSession(msg.From.ID)

	// Сбой записи не блокирует выход: сессия в памяти уже очищена.
	if err := b.users.ClearSession(msg.From.ID); err != nil {
		log.Printf("Error clearing user %d in store: %v", msg.From.ID, err)
	}

	b.sendText(msg.Chat.ID, "🔓 Вы вышли из аккаунта")
}

// startLogin переводит диалог на шаг ввода почты.
// При живом токене вход повторно не запускается.
func startLogin(session *domain.UserSession) bool {
	if session.Token != "" {
		return false
	}

	session.PendingEmail = ""
	session.AuthState = domain.StateAwaitingEmail
	return true
}

// loginEmailStep обрабатывает введённую почту и возвращает ответ
// пользователю. Неверный формат оставляет диалог на том же шаге.
func loginEmailStep(session *domain.UserSession, text string) string {
	email := strings.TrimSpace(text)
	if !validEmail(email) {
		return "⚠️ Неверный формат почты, попробуйте ещё раз:"
	}

	session.PendingEmail = email
	session.AuthState = domain.StateAwaitingPassword
	return "🔑 Введите пароль:"
}

// finishLogin завершает диалог и возвращает отложенную почту.
// Состояние сбрасывается независимо от исхода обмена: повторная
// попытка — только через новый /login.
func finishLogin(session *domain.UserSession) string {
	email := session.PendingEmail
	session.PendingEmail = ""
	session.AuthState = domain.StateIdle
	return email
}

func validEmail(email string) bool {
	return strings.Contains(email, "@")
}
