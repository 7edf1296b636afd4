package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// IsUniqueViolation сообщает, что запрос нарушил уникальный индекс
// constraint пустой - любой индекс
func IsUniqueViolation(err error, constraint string) bool {
	return hasCode(err, codeUniqueViolation, constraint)
}

// IsForeignKeyViolation сообщает, что запрос нарушил внешний ключ
func IsForeignKeyViolation(err error, constraint string) bool {
	return hasCode(err, codeForeignKeyViolation, constraint)
}

func hasCode(err error, code pq.ErrorCode, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != code {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
