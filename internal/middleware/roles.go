package middleware

import (
	"net/http"

	"turforlag/internal/reqctx"
)

// Роли LMS, которым разрешено редактировать курс.
var EditingRoles = []string{"editingteacher", "manager"}

func AnyRole(allowedRoles ...string) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{})
	for _, r := range allowedRoles {
		roleSet[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if SkipGuards(r.Context()) {
				next.ServeHTTP(w, r)
				return
			}

			userRole, ok := reqctx.GetRole(r.Context())
			if !ok {
				http.Error(w, "Не удалось определить роль", http.StatusForbidden)
				return
			}
			if _, found := roleSet[userRole]; !found {
				http.Error(w, "Доступ запрещён", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CanEdit: пользователь может включать режим редактирования курса.
func CanEdit(r *http.Request) bool {
	if SkipGuards(r.Context()) {
		return true
	}
	role, _ := reqctx.GetRole(r.Context())
	for _, allowed := range EditingRoles {
		if role == allowed {
			return true
		}
	}
	return false
}
