package lsky

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Response — общий конверт ответа фотохостинга.
type Response struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Profile struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	UsedCapacity float64 `json:"used_capacity"`
	Capacity     float64 `json:"capacity"`
}

type Strategy struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type tokenData struct {
	Token string `json:"token"`
}

type strategiesData struct {
	Strategies []Strategy `json:"strategies"`
}

type uploadData struct {
	Links struct {
		URL string `json:"url"`
	} `json:"links"`
}

type errorData struct {
	Errors map[string][]string `json:"errors"`
}

// ErrorText извлекает человекочитаемое сообщение об ошибке.
// Пофилдовые ошибки из data.errors приоритетнее плоского message.
func (r *Response) ErrorText() string {
	if len(r.Data) > 0 {
		var ed errorData
		if err := json.Unmarshal(r.Data, &ed); err == nil && len(ed.Errors) > 0 {
			parts := make([]string, 0, len(ed.Errors))
			for field, messages := range ed.Errors {
				parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(messages, "; ")))
			}
			return strings.Join(parts, "; ")
		}
	}

	if r.Message != "" {
		return r.Message
	}
	return "неизвестная ошибка"
}
