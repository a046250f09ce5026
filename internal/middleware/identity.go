package middleware

import (
	"net/http"
	"strings"

	"turforlag/internal/logger"
	"turforlag/internal/reqctx"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Identity берёт пользователя из токена, выданного LMS: заголовок
// "Authorization: Bearer" или cookie cookieName. Логина в сервисе нет.
func Identity(secret, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			log := logger.WithCtx(r.Context())

			tokenString := bearerToken(r)
			if tokenString == "" && cookieName != "" {
				if c, err := r.Cookie(cookieName); err == nil {
					tokenString = c.Value
				}
			}
			if tokenString == "" {
				log.Warn("Identity: отсутствует токен")
				http.Error(w, "Отсутствует токен", http.StatusUnauthorized)
				return
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				log.Warn("Identity: неверный или просроченный токен", zap.Error(err))
				http.Error(w, "Неверный или просроченный токен", http.StatusUnauthorized)
				return
			}

			userID, ok1 := claims["user_id"].(float64)
			role, ok2 := claims["role"].(string)
			if !ok1 || !ok2 || userID <= 0 {
				log.Warn("Identity: недопустимый payload", zap.Any("claims", claims))
				http.Error(w, "Недопустимый payload", http.StatusUnauthorized)
				return
			}

			ctx := reqctx.WithUserID(r.Context(), int(userID))
			ctx = reqctx.WithRole(ctx, role)
			rememberIdentity(w, int(userID), role)

			logger.WithCtx(ctx).Debug("Identity: токен валиден", zap.String("role", role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
