package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	storageCallbackPrefix     = "set_storage:"
	storageCallbackAsk        = "set_storage:ask"
	tempStorageCallbackPrefix = "temp_upload:"
)

// handleSetStorage показывает список хранилищ для выбора по умолчанию.
func (b *Bot) handleSetStorage(msg *tgbotapi.Message) {
	session := b.userSession(msg.From.ID)
	if session.Token == "" {
		b.sendText(msg.Chat.ID, "🔒 Сначала выполните вход: /login")
		return
	}

	b.sendTyping(msg.Chat.ID)
	strategies, err := b.lsky.Strategies(session.Token)
	if err != nil {
		b.sendText(msg.Chat.ID, "❌ Не удалось получить список хранилищ, попробуйте позже.")
		return
	}
	if len(strategies) == 0 {
		b.sendText(msg.Chat.ID, "📭 Нет доступных хранилищ.")
		return
	}

	var parts []string
	if session.StorageID != nil {
		for _, s := range strategies {
			if s.ID == *session.StorageID {
				parts = append(parts, fmt.Sprintf("✅ Текущее хранилище: %s\n", s.Name))
				break
			}
		}
	}
	parts = append(parts, "Выберите хранилище по умолчанию:")

	// Порядок кнопок — порядок ответа API, без пересортировки.
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, s := range strategies {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(s.Name, fmt.Sprintf("%s%d", storageCallbackPrefix, s.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Спрашивать каждый раз", storageCallbackAsk),
	))

	reply := tgbotapi.NewMessage(msg.Chat.ID, strings.Join(parts, "\n"))
	reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.Api.Send(reply); err != nil {
		log.Printf("Error sending storage list: %v", err)
	}
}

// handleStorageSelection сохраняет выбор хранилища по умолчанию
// в сессии и в долговременной записи.
func (b *Bot) handleStorageSelection(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	session := b.userSession(userID)

	if query.Data == storageCallbackAsk {
		session.StorageID = nil
		if err := b.users.UpsertStorage(userID, nil); err != nil {
			log.Printf("Error clearing storage for user %d: %v", userID, err)
		}
		b.editMessage(query, "👌 Хорошо! Буду спрашивать при каждой загрузке.")
		return
	}

	storageID, err := strconv.ParseInt(strings.TrimPrefix(query.Data, storageCallbackPrefix), 10, 64)
	if err != nil {
		b.editMessage(query, "⚠️ Некорректный идентификатор хранилища.")
		return
	}

	session.StorageID = &storageID
	if err := b.users.UpsertStorage(userID, &storageID); err != nil {
		log.Printf("Error saving storage for user %d: %v", userID, err)
	}

	// Имя запрашивается заново: подтверждение и показ списка —
	// отдельные взаимодействия, список мог измениться.
	name := fmt.Sprintf("ID %d", storageID)
	if session.Token != "" {
		if target, ok := targetFromCallback(query); ok {
			b.sendTyping(target.ChatID)
		}
		if strategies, err := b.lsky.Strategies(session.Token); err == nil {
			for _, s := range strategies {
				if s.ID == storageID {
					name = s.Name
					break
				}
			}
		}
	}

	b.editMessage(query, fmt.Sprintf("✅ Хранилище по умолчанию: %s", name))
}
