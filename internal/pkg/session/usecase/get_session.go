package usecase

import "img_tg_bot/internal/pkg/session/domain"

func (m *MemoryStorage) GetSession(userID int64) (*domain.UserSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, exists := m.sessions[userID]
	if !exists {
		return nil, nil
	}
	return session, nil
}
