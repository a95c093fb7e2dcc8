package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"img_tg_bot/internal/pkg/lsky"
	"img_tg_bot/internal/pkg/session/usecase"
	"img_tg_bot/internal/pkg/user/repository"
)

type Bot struct {
	Api      *tgbotapi.BotAPI
	name     string
	lsky     *lsky.Client
	users    repository.UserRepository
	sessions *usecase.MemoryStorage
}

func New(token, name string, client *lsky.Client, users repository.UserRepository) *Bot {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	return &Bot{
		Api:      api,
		name:     name,
		lsky:     client,
		users:    users,
		sessions: usecase.NewMemoryStorage(),
	}
}

func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.Api.GetUpdatesChan(u)

	log.Printf("Authorized on account %s", b.Api.Self.UserName)

	for update := range updates {
		// Каждое взаимодействие обрабатывается независимо, чтобы
		// долгий запрос к фотохостингу не блокировал остальных.
		go b.handleUpdate(update)
	}
}
