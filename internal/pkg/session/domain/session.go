package domain

// Шаги диалога входа.
const (
	StateIdle             = ""
	StateAwaitingEmail    = "awaiting_email"
	StateAwaitingPassword = "awaiting_password"
)

// UserSession — состояние пользователя в памяти процесса.
// Токен и хранилище лениво подтягиваются из долговременной записи.
type UserSession struct {
	UserID       int64
	Token        string
	StorageID    *int64
	PendingEmail string
	AuthState    string
}

// StagedUpload — принятая картинка, ожидающая выбора хранилища.
// Токен фиксируется в момент приёма: загрузка пойдёт именно с ним,
// даже если сессия к моменту нажатия кнопки изменится.
type StagedUpload struct {
	FileName  string
	FileBytes []byte
	Token     string
}
