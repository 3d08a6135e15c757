package middleware

import (
	"net/http"

	"github.com/digitopia/membership-backend-go/internal/domain/user"
	"github.com/digitopia/membership-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequirePermission gates a route on the caller's role granting the
// given permission. The role claim comes from the verified token; the
// role-to-permission table lives in the user domain.
func RequirePermission(perm user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrPermissionDenied)
				return
			}

			role, ok := claims["role"].(string)
			if !ok || !user.HasPermission(user.Role(role), perm) {
				response.HandleError(w, user.ErrPermissionDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
