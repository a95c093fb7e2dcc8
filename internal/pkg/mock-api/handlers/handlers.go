package handlers

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"img_tg_bot/internal/pkg/mock-api/models"
)

// Учётные данные тестового аккаунта.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "secret123"
)

var (
	mu     sync.Mutex
	tokens = make(map[string]bool)
)

var strategies = []models.Strategy{
	{ID: 1, Name: "Локальное хранилище"},
	{ID: 2, Name: "S3"},
}

// TokensHandler выдаёт токен за почту и пароль.
func TokensHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		sendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация в стиле Laravel: пофилдовые списки сообщений.
	fieldErrors := map[string][]string{}
	if !strings.Contains(request.Email, "@") {
		fieldErrors["email"] = append(fieldErrors["email"], "некорректный адрес почты")
	}
	if len(request.Password) < 6 {
		fieldErrors["password"] = append(fieldErrors["password"], "слишком короткий пароль")
	}
	if len(fieldErrors) > 0 {
		sendJSON(w, http.StatusUnprocessableEntity, models.Response{
			Message: "Ошибка валидации",
			Data:    models.ErrorData{Errors: fieldErrors},
		})
		return
	}

	if request.Email != DemoEmail || request.Password != DemoPassword {
		sendJSON(w, http.StatusUnprocessableEntity, models.Response{
			Message: "Неверные учётные данные",
			Data: models.ErrorData{Errors: map[string][]string{
				"email": {"пользователь не найден или пароль не подходит"},
			}},
		})
		return
	}

	token := generateToken()
	mu.Lock()
	tokens[token] = true
	mu.Unlock()

	sendJSON(w, http.StatusOK, models.Response{
		Status: true,
		Data:   models.TokenData{Token: token},
	})
}

// ProfileHandler возвращает профиль тестового аккаунта.
func ProfileHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !authorized(r) {
		sendError(w, "Unauthenticated", http.StatusUnauthorized)
		return
	}

	sendJSON(w, http.StatusOK, models.Response{
		Status: true,
		Data: models.ProfileData{
			Name:         "Demo",
			Email:        DemoEmail,
			UsedCapacity: 1536,
			Capacity:     1048576,
		},
	})
}

// StrategiesHandler возвращает список хранилищ.
func StrategiesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !authorized(r) {
		sendError(w, "Unauthenticated", http.StatusUnauthorized)
		return
	}

	sendJSON(w, http.StatusOK, models.Response{
		Status: true,
		Data:   models.StrategiesData{Strategies: strategies},
	})
}

// UploadHandler принимает multipart-загрузку и возвращает ссылку.
func UploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !authorized(r) {
		sendError(w, "Unauthenticated", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		sendError(w, "Invalid multipart body", http.StatusBadRequest)
		return
	}

	strategyID, err := strconv.ParseInt(r.FormValue("strategy_id"), 10, 64)
	if err != nil || !knownStrategy(strategyID) {
		sendJSON(w, http.StatusUnprocessableEntity, models.Response{
			Message: "Неизвестное хранилище",
		})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		sendJSON(w, http.StatusUnprocessableEntity, models.Response{
			Message: "Файл не передан",
		})
		return
	}
	defer file.Close()

	response := models.UploadData{}
	response.Links.URL = fmt.Sprintf("https://mock-img.example.com/i/%s/%s", generateID(), header.Filename)

	sendJSON(w, http.StatusOK, models.Response{
		Status: true,
		Data:   response,
	})
}

// Вспомогательные функции
func authorized(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return false
	}

	mu.Lock()
	defer mu.Unlock()
	return tokens[strings.TrimPrefix(auth, "Bearer ")]
}

func knownStrategy(id int64) bool {
	for _, s := range strategies {
		if s.ID == id {
			return true
		}
	}
	return false
}

func generateID() string {
	return fmt.Sprintf("%d%d", time.Now().Unix(), rand.Intn(10000))
}

func generateToken() string {
	return "tok_" + generateID()
}

func sendJSON(w http.ResponseWriter, status int, data models.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, models.Response{Message: message})
}
