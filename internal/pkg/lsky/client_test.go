package lsky

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"img_tg_bot/internal/pkg/mock-api/handlers"
)

func newMockServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/tokens", handlers.TokensHandler)
	mux.HandleFunc("/api/v1/profile", handlers.ProfileHandler)
	mux.HandleFunc("/api/v1/strategies", handlers.StrategiesHandler)
	mux.HandleFunc("/api/v1/upload", handlers.UploadHandler)
	return httptest.NewServer(mux)
}

func TestLoginProfileStrategies(t *testing.T) {
	server := newMockServer()
	defer server.Close()

	client := NewClient(server.URL + "/api/v1")

	token, err := client.Login(handlers.DemoEmail, handlers.DemoPassword)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	profile, err := client.Profile(token)
	require.NoError(t, err)
	assert.Equal(t, handlers.DemoEmail, profile.Email)
	assert.Equal(t, float64(1536), profile.UsedCapacity)

	strategies, err := client.Strategies(token)
	require.NoError(t, err)
	require.Len(t, strategies, 2)
	assert.Equal(t, int64(1), strategies[0].ID)
	assert.Equal(t, int64(2), strategies[1].ID)
}

func TestLoginFieldErrors(t *testing.T) {
	server := newMockServer()
	defer server.Close()

	client := NewClient(server.URL + "/api/v1")

	_, err := client.Login(handlers.DemoEmail, "123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password: слишком короткий пароль")
}

func TestLoginWrongCredentials(t *testing.T) {
	server := newMockServer()
	defer server.Close()

	client := NewClient(server.URL + "/api/v1")

	_, err := client.Login("other@example.com", "wrongpassword")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email:")
}

func TestStrategiesUnauthorized(t *testing.T) {
	server := newMockServer()
	defer server.Close()

	client := NewClient(server.URL + "/api/v1")

	_, err := client.Strategies("bad_token")
	require.Error(t, err)
	assert.Equal(t, "HTTP 401", err.Error())
}

func TestHTTPStatusNormalization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Login("a@b.com", "password")
	require.Error(t, err)
	assert.Equal(t, "HTTP 500", err.Error())
}

func TestTransportFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)

	_, err := client.Login("a@b.com", "password")
	require.Error(t, err)
}

func TestUploadMultipart(t *testing.T) {
	fileBytes := []byte{0xff, 0xd8, 0xff, 0x01, 0x02}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "2", r.FormValue("strategy_id"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.jpg", header.Filename)

		got, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, fileBytes, got)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": true,
			"data": map[string]interface{}{
				"links": map[string]string{"url": "https://img.example.com/i/1.jpg"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	url, err := client.Upload("T1", "photo.jpg", fileBytes, 2)
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/i/1.jpg", url)
}

func TestUploadErrorFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"status":false}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Upload("T1", "photo.jpg", []byte{1}, 5)
	require.Error(t, err)
	assert.Equal(t, "неизвестная ошибка", err.Error())
}

func TestErrorTextPrefersFieldErrors(t *testing.T) {
	resp := &Response{
		Message: "Ошибка валидации",
		Data:    json.RawMessage(`{"errors":{"password":["too short","required"]}}`),
	}
	assert.Equal(t, "password: too short; required", resp.ErrorText())

	resp = &Response{Message: "flat message"}
	assert.Equal(t, "flat message", resp.ErrorText())

	resp = &Response{}
	assert.Equal(t, "неизвестная ошибка", resp.ErrorText())
}
