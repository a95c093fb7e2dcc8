package usecase

import "img_tg_bot/internal/pkg/session/domain"

func (m *MemoryStorage) StageUpload(userID int64, staged *domain.StagedUpload) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.staged[userID] = staged
}

// PopStagedUpload атомарно забирает отложенную загрузку.
// Повторный вызов вернёт nil: картинка потребляется ровно один раз.
func (m *MemoryStorage) PopStagedUpload(userID int64) *domain.StagedUpload {
	m.mu.Lock()
	defer m.mu.Unlock()

	staged, exists := m.staged[userID]
	if !exists {
		return nil
	}
	delete(m.staged, userID)
	return staged
}
