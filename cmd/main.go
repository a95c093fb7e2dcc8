package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"img_tg_bot/internal/bot"
	"img_tg_bot/internal/pkg/lsky"
	"img_tg_bot/internal/pkg/user/sqlite_storage"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_TOKEN is not set")
	}

	apiBase := os.Getenv("LSKY_API_BASE")
	if apiBase == "" {
		log.Fatal("LSKY_API_BASE must be set")
	}

	botName := os.Getenv("BOT_NAME")
	if botName == "" {
		botName = "ImgTGBot"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "users.db"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	users := sqlite_storage.NewSqliteStorage(db)
	if err := users.InitSchema(); err != nil {
		log.Fatalf("Failed to init database schema: %v", err)
	}

	b := bot.New(token, botName, lsky.NewClient(apiBase), users)
	b.Start()
}
