// Package session связывает непрозрачный токен из cookie с id пользователя.
package session

import (
	"context"
	"errors"
)

// ErrInvalidToken токен не распознан, истёк или уже уничтожен.
var ErrInvalidToken = errors.New("invalid session token")

// Store хранилище сессий.
type Store interface {
	// Create открывает сессию для пользователя и возвращает токен для cookie.
	Create(ctx context.Context, userID int64) (string, error)
	// Resolve возвращает id пользователя по токену или ErrInvalidToken.
	Resolve(ctx context.Context, token string) (int64, error)
	// Destroy закрывает сессию. Для неизвестного токена ошибки нет.
	Destroy(ctx context.Context, token string) error
}
