package bot

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"img_tg_bot/internal/pkg/session/domain"
)

// replyTarget — явный адрес для ответа, разрешается один раз на
// взаимодействие: у исходного сообщения и у нажатия кнопки разная
// адресная информация.
type replyTarget struct {
	ChatID int64
}

func targetFromMessage(msg *tgbotapi.Message) (replyTarget, bool) {
	if msg == nil || msg.Chat == nil {
		return replyTarget{}, false
	}
	return replyTarget{ChatID: msg.Chat.ID}, true
}

func targetFromCallback(query *tgbotapi.CallbackQuery) (replyTarget, bool) {
	if query.Message != nil && query.Message.Chat != nil {
		return replyTarget{ChatID: query.Message.Chat.ID}, true
	}
	if query.From != nil {
		// В личном чате можно ответить напрямую пользователю.
		return replyTarget{ChatID: query.From.ID}, true
	}
	return replyTarget{}, false
}

// handleImageMessage принимает фото или документ-картинку.
func (b *Bot) handleImageMessage(msg *tgbotapi.Message) {
	session := b.userSession(msg.From.ID)
	if session.Token == "" {
		b.sendText(msg.Chat.ID, "🔒 Сначала выполните вход: /login")
		return
	}

	var fileID, fileName string
	switch {
	case len(msg.Photo) > 0:
		// Последний элемент — самое большое разрешение.
		photo := msg.Photo[len(msg.Photo)-1]
		fileID = photo.FileID
		fileName = fmt.Sprintf("photo_%d.jpg", time.Now().Unix())
	case msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/"):
		fileID = msg.Document.FileID
		fileName = msg.Document.FileName
		if fileName == "" {
			fileName = fmt.Sprintf("image_%d", time.Now().Unix())
		}
	default:
		return
	}

	// Картинка скачивается сразу: из callback-а исходное сообщение
	// уже недоступно.
	fileBytes, err := b.downloadFile(fileID)
	if err != nil {
		log.Printf("Error downloading file %s: %v", fileID, err)
		b.sendText(msg.Chat.ID, "❌ Не удалось получить файл, отправьте картинку ещё раз.")
		return
	}

	if session.StorageID != nil {
		target, _ := targetFromMessage(msg)
		b.doUpload(target, session.Token, fileName, fileBytes, *session.StorageID)
		return
	}

	b.promptTempStorage(msg, session, fileName, fileBytes)
}

// promptTempStorage предлагает выбрать хранилище для одной загрузки.
// Картинка и токен откладываются до нажатия кнопки; такой выбор
// никогда не сохраняется как хранилище по умолчанию.
func (b *Bot) promptTempStorage(msg *tgbotapi.Message, session *domain.UserSession, fileName string, fileBytes []byte) {
	b.sendTyping(msg.Chat.ID)
	strategies, err := b.lsky.Strategies(session.Token)
	if err != nil {
		b.sendText(msg.Chat.ID, "❌ Не удалось получить список хранилищ, загрузка не выполнена.")
		return
	}
	if len(strategies) == 0 {
		b.sendText(msg.Chat.ID, "📭 Нет доступных хранилищ, загрузка не выполнена.")
		return
	}

	b.sessions.StageUpload(msg.From.ID, &domain.StagedUpload{
		FileName:  fileName,
		FileBytes: fileBytes,
		Token:     session.Token,
	})

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, s := range strategies {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(s.Name, fmt.Sprintf("%s%d", tempStorageCallbackPrefix, s.ID)),
		))
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, "Выберите хранилище для этой загрузки:")
	reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.Api.Send(reply); err != nil {
		log.Printf("Error sending storage prompt: %v", err)
	}
}

// handleTempStorageSelection выполняет отложенную загрузку.
func (b *Bot) handleTempStorageSelection(query *tgbotapi.CallbackQuery) {
	storageID, err := strconv.ParseInt(strings.TrimPrefix(query.Data, tempStorageCallbackPrefix), 10, 64)
	if err != nil {
		b.editMessage(query, "⚠️ Некорректный идентификатор хранилища.")
		return
	}

	// Отложенная загрузка забирается ровно один раз: повторное нажатие
	// и кнопка, пережившая рестарт, получают сообщение об истечении.
	staged := b.sessions.PopStagedUpload(query.From.ID)
	if staged == nil {
		b.editMessage(query, "⚠️ Контекст загрузки истёк, отправьте картинку заново.")
		return
	}

	b.editMessage(query, "📤 Загружается...")

	target, ok := targetFromCallback(query)
	if !ok {
		log.Printf("No reply target for callback %s, upload result dropped", query.ID)
		return
	}

	// Загрузка идёт с токеном, зафиксированным при приёме картинки.
	b.doUpload(target, staged.Token, staged.FileName, staged.FileBytes, storageID)
}

// doUpload загружает картинку и отвечает ссылкой в трёх форматах.
func (b *Bot) doUpload(target replyTarget, token, fileName string, fileBytes []byte, storageID int64) {
	b.sendTyping(target.ChatID)
	url, err := b.lsky.Upload(token, fileName, fileBytes, storageID)
	if err != nil {
		b.sendText(target.ChatID, fmt.Sprintf("❌ Не удалось загрузить: %s", err))
		return
	}

	text := fmt.Sprintf("✅ Загружено!\n\n🔗 URL:\n`%s`\n\n📝 Markdown:\n`![](%s)`\n\n💬 BBCode:\n`[img]%s[/img]`",
		url, url, url)

	reply := tgbotapi.NewMessage(target.ChatID, text)
	reply.ParseMode = tgbotapi.ModeMarkdown
	reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🔗 Открыть ссылку", url),
		),
	)
	if _, err := b.Api.Send(reply); err != nil {
		log.Printf("Error sending upload result: %v", err)
	}
}

// downloadFile скачивает файл с серверов Telegram.
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.Api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", b.Api.Token, file.FilePath)
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download failed: HTTP %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
