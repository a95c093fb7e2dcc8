package lsky

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"img_tg_bot/internal/pkg/http_client"
)

const requestTimeout = 15 * time.Second

// Client — шлюз к API фотохостинга (Lsky Pro v1).
type Client struct {
	baseURL string
	http    *http_client.LoggedClient
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http_client.NewLoggedClient(requestTimeout),
	}
}

// request выполняет запрос и нормализует ответ: тело парсится при
// 200/201/422, любой другой статус и ошибка транспорта превращаются
// в {status:false, message:"HTTP <код>"|текст ошибки}.
func (c *Client) request(method, endpoint, token, contentType string, body io.Reader) *Response {
	req, err := http.NewRequest(method, c.baseURL+endpoint, body)
	if err != nil {
		return &Response{Message: err.Error()}
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Response{Message: err.Error()}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusUnprocessableEntity:
	default:
		return &Response{Message: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}

	parsed := &Response{}
	if err := json.NewDecoder(resp.Body).Decode(parsed); err != nil {
		return &Response{Message: err.Error()}
	}
	return parsed
}

// Login обменивает почту и пароль на токен.
func (c *Client) Login(email, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	resp := c.request(http.MethodPost, "/tokens", "", "application/json", bytes.NewReader(payload))
	if !resp.Status {
		return "", errors.New(resp.ErrorText())
	}

	var data tokenData
	if err := json.Unmarshal(resp.Data, &data); err != nil || data.Token == "" {
		return "", errors.New(resp.ErrorText())
	}
	return data.Token, nil
}

// Profile возвращает информацию об аккаунте.
func (c *Client) Profile(token string) (*Profile, error) {
	resp := c.request(http.MethodGet, "/profile", token, "", nil)
	if !resp.Status {
		return nil, errors.New(resp.ErrorText())
	}

	profile := &Profile{}
	if err := json.Unmarshal(resp.Data, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Strategies возвращает доступные хранилища в порядке, выданном API.
func (c *Client) Strategies(token string) ([]Strategy, error) {
	resp := c.request(http.MethodGet, "/strategies", token, "", nil)
	if !resp.Status {
		return nil, errors.New(resp.ErrorText())
	}

	var data strategiesData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, err
	}
	return data.Strategies, nil
}

// Upload загружает картинку в выбранное хранилище и возвращает URL.
func (c *Client) Upload(token, fileName string, fileBytes []byte, strategyID int64) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("strategy_id", strconv.FormatInt(strategyID, 10)); err != nil {
		return "", err
	}
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(fileBytes); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	resp := c.request(http.MethodPost, "/upload", token, writer.FormDataContentType(), &buf)
	if !resp.Status {
		return "", errors.New(resp.ErrorText())
	}

	var data uploadData
	if err := json.Unmarshal(resp.Data, &data); err != nil || data.Links.URL == "" {
		return "", errors.New(resp.ErrorText())
	}
	return data.Links.URL, nil
}
