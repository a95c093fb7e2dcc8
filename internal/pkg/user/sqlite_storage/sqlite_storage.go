package sqlite_storage

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"img_tg_bot/internal/pkg/user/domain"
)

type SqliteStorage struct {
	db *sql.DB
}

func NewSqliteStorage(db *sql.DB) *SqliteStorage {
	return &SqliteStorage{db: db}
}

// InitSchema создаёт таблицу пользователей, если её ещё нет.
func (s *SqliteStorage) InitSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			user_id INTEGER PRIMARY KEY,
			token TEXT,
			storage_id INTEGER
		)
	`)
	return err
}

func (s *SqliteStorage) UpsertToken(userID int64, token string) error {
	_, err := s.db.Exec(`
		INSERT INTO users (user_id, token) VALUES (?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET token = excluded.token
	`, userID, token)
	return err
}

func (s *SqliteStorage) UpsertStorage(userID int64, storageID *int64) error {
	if storageID == nil {
		_, err := s.db.Exec(`UPDATE users SET storage_id = NULL WHERE user_id = ?`, userID)
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO users (user_id, storage_id) VALUES (?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET storage_id = excluded.storage_id
	`, userID, *storageID)
	return err
}

// Load возвращает запись пользователя; для неизвестного пользователя —
// пустую запись, а не ошибку.
func (s *SqliteStorage) Load(userID int64) (*domain.UserRecord, error) {
	row := s.db.QueryRow(`
		SELECT token, storage_id
		FROM users
		WHERE user_id = ?
	`, userID)

	var token sql.NullString
	var storageID sql.NullInt64
	err := row.Scan(&token, &storageID)
	if err == sql.ErrNoRows {
		return &domain.UserRecord{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}

	record := &domain.UserRecord{UserID: userID}
	if token.Valid && token.String != "" {
		record.Token = &token.String
	}
	if storageID.Valid {
		record.StorageID = &storageID.Int64
	}
	return record, nil
}

// ClearSession сбрасывает поля в NULL, не удаляя строку.
func (s *SqliteStorage) ClearSession(userID int64) error {
	_, err := s.db.Exec(`
		UPDATE users SET token = NULL, storage_id = NULL WHERE user_id = ?
	`, userID)
	return err
}
