package domain

// UserRecord — долговременная запись пользователя.
// nil-токен означает «не залогинен», даже если хранилище задано.
type UserRecord struct {
	UserID    int64
	Token     *string
	StorageID *int64
}
