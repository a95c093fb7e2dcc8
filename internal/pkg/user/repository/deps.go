package repository

import (
	"img_tg_bot/internal/pkg/user/domain"
)

type UserRepository interface {
	UpsertToken(userID int64, token string) error
	UpsertStorage(userID int64, storageID *int64) error
	Load(userID int64) (*domain.UserRecord, error)
	ClearSession(userID int64) error
}
