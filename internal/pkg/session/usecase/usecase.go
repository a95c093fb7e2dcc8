package usecase

import (
	"sync"

	"img_tg_bot/internal/pkg/session/domain"
)

type MemoryStorage struct {
	sessions map[int64]*domain.UserSession
	staged   map[int64]*domain.StagedUpload
	mu       sync.RWMutex
}

func NewMemoryStorage() *MemoryStorage {
	storage := &MemoryStorage{
		sessions: make(map[int64]*domain.UserSession),
		staged:   make(map[int64]*domain.StagedUpload),
	}

	return storage
}
