package usecase

func (m *MemoryStorage) DeleteSession(userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
	delete(m.staged, userID)
	return nil
}
