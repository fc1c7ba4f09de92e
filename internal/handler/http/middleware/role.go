package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hris-system/hris-backend-go/internal/domain/user"
	"github.com/hris-system/hris-backend-go/internal/handler/http/response"
)

func roleFromContext(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}

	return user.Role(roleStr), true
}

// RequireAdmin requires the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireHR requires the hr role. Admins pass too.
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || (role != user.RoleHR && role != user.RoleAdmin) {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireFinance requires the finance role. Admins pass too.
func RequireFinance(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || (role != user.RoleFinance && role != user.RoleAdmin) {
			response.HandleError(w, user.ErrFinanceAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
