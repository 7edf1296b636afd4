package middleware

import (
	"context"

	"github.com/google/uuid"
)

// TokenParser проверяет токен администратора
type TokenParser interface {
	ParseToken(token string) (uuid.UUID, error)
}

// Limiter решает, можно ли пропустить очередной запрос с ключом key
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
