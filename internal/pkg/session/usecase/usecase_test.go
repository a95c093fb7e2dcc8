package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"img_tg_bot/internal/pkg/session/domain"
)

func TestGetSessionUnknown(t *testing.T) {
	storage := NewMemoryStorage()

	session, err := storage.GetSession(1)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSaveAndGetSession(t *testing.T) {
	storage := NewMemoryStorage()

	session := &domain.UserSession{UserID: 1, Token: "T1"}
	require.NoError(t, storage.SaveSession(1, session))

	got, err := storage.GetSession(1)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestPopStagedUploadExactlyOnce(t *testing.T) {
	storage := NewMemoryStorage()

	staged := &domain.StagedUpload{
		FileName:  "photo.jpg",
		FileBytes: []byte{1, 2, 3},
		Token:     "T1",
	}
	storage.StageUpload(1, staged)

	got := storage.PopStagedUpload(1)
	require.NotNil(t, got)
	assert.Equal(t, staged.FileBytes, got.FileBytes)
	assert.Equal(t, "T1", got.Token)

	// Повторное нажатие кнопки: контекст уже истёк.
	assert.Nil(t, storage.PopStagedUpload(1))
}

func TestPopStagedUploadEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	assert.Nil(t, storage.PopStagedUpload(99))
}

func TestStagedTokenSurvivesSessionChange(t *testing.T) {
	storage := NewMemoryStorage()

	session := &domain.UserSession{UserID: 1, Token: "T1"}
	require.NoError(t, storage.SaveSession(1, session))
	storage.StageUpload(1, &domain.StagedUpload{FileBytes: []byte{1}, Token: "T1"})

	// Токен в сессии сменился после приёма картинки.
	session.Token = "T2"

	got := storage.PopStagedUpload(1)
	require.NotNil(t, got)
	assert.Equal(t, "T1", got.Token)
}

func TestDeleteSessionDropsStaged(t *testing.T) {
	storage := NewMemoryStorage()

	require.NoError(t, storage.SaveSession(1, &domain.UserSession{UserID: 1, Token: "T1"}))
	storage.StageUpload(1, &domain.StagedUpload{FileBytes: []byte{1}, Token: "T1"})

	require.NoError(t, storage.DeleteSession(1))

	session, err := storage.GetSession(1)
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.Nil(t, storage.PopStagedUpload(1))
}
