package models

// Response — конверт ответа API фотохостинга.
type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// TokenRequest структура запроса для tokens
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenData структура данных успешного ответа tokens
type TokenData struct {
	Token string `json:"token"`
}

// ErrorData структура данных ответа с пофилдовыми ошибками
type ErrorData struct {
	Errors map[string][]string `json:"errors"`
}

// ProfileData структура данных ответа profile
type ProfileData struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	UsedCapacity float64 `json:"used_capacity"`
	Capacity     float64 `json:"capacity"`
}

// Strategy описание одного хранилища
type Strategy struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StrategiesData структура данных ответа strategies
type StrategiesData struct {
	Strategies []Strategy `json:"strategies"`
}

// UploadData структура данных успешного ответа upload
type UploadData struct {
	Links struct {
		URL string `json:"url"`
	} `json:"links"`
}
