package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims содержимое токена администратора
type Claims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

func (s *Service) generateToken(adminID uuid.UUID, email string) (string, time.Time, error) {
	now := s.timeProvider.Now()
	expiresAt := now.Add(s.tokenTTL)

	claims := Claims{
		AdminID: adminID.String(),
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: sign token: %v", ErrInternal, err)
	}

	return signed, expiresAt, nil
}

// ParseToken проверяет подпись и срок действия токена, возвращает ID администратора
func (s *Service) ParseToken(tokenString string) (uuid.UUID, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.timeProvider.Now),
	)

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad admin id: %v", ErrInvalidToken, err)
	}

	return id, nil
}
