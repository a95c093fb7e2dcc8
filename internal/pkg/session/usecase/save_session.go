package usecase

import "img_tg_bot/internal/pkg/session/domain"

func (m *MemoryStorage) SaveSession(userID int64, session *domain.UserSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = session
	return nil
}
