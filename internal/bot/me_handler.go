package bot

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleMe(msg *tgbotapi.Message) {
	session := b.userSession(msg.From.ID)
	if session.Token == "" {
		b.sendText(msg.Chat.ID, "🔒 Сначала выполните вход: /login")
		return
	}

	b.sendTyping(msg.Chat.ID)
	profile, err := b.lsky.Profile(session.Token)
	if err != nil {
		b.sendText(msg.Chat.ID, "❌ Не удалось получить информацию об аккаунте, попробуйте позже.")
		return
	}

	text := fmt.Sprintf("👤 **%s**, здравствуйте!\n📧 Почта: %s\n\n💾 Хранилище: %s / %s",
		profile.Name, profile.Email,
		formatCapacity(profile.UsedCapacity), formatCapacity(profile.Capacity))

	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.Api.Send(reply); err != nil {
		log.Printf("Error sending profile message: %v", err)
	}
}

// formatCapacity переводит килобайты в читаемые единицы (базис 1024):
// до двух знаков после запятой, минимум один ("1.0 MB", "1.5 MB").
func formatCapacity(kb float64) string {
	if kb == 0 {
		return "0 KB"
	}

	units := []string{"KB", "MB", "GB", "TB"}
	i := int(math.Floor(math.Log(kb) / math.Log(1024)))
	if i < 0 {
		i = 0
	}
	if i >= len(units) {
		i = len(units) - 1
	}

	value := math.Round(kb/math.Pow(1024, float64(i))*100) / 100
	rendered := strings.TrimSuffix(strconv.FormatFloat(value, 'f', 2, 64), "0")
	return rendered + " " + units[i]
}
