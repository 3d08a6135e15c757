package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitopia/membership-backend-go/internal/domain/user"
)

func requestWithRole(t *testing.T, role string) *http.Request {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": "11111111-1111-1111-1111-111111111111",
		"role":    role,
		"type":    "access",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func TestRequirePermission(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	guarded := RequirePermission(user.PermissionInvitationSend)(next)

	t.Run("role with permission passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, requestWithRole(t, "MANAGER"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("role without permission is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, requestWithRole(t, "USER"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing token context is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
