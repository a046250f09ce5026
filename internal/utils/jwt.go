package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken выпускает токен в формате LMS (user_id, role). Сервис токены
// только проверяет; генерация нужна для локальной отладки и тестов.
func GenerateToken(secret string, userID int, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(duration).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
