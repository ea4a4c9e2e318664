package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketx/internal/core/auth"
	"marketx/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret-key-32ch!"

func protected(t *testing.T, tm *auth.TokenManager) (http.Handler, *[]*domain.TokenClaims) {
	t.Helper()

	var seen []*domain.TokenClaims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetUser(r.Context())
		require.True(t, ok)
		seen = append(seen, claims)
		w.WriteHeader(http.StatusOK)
	})

	return JWT(tm)(next), &seen
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["message"]
}

func TestJWTMissingHeader(t *testing.T) {
	handler, _ := protected(t, auth.NewTokenManager(testSecret, time.Hour))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authorization header missing", decodeMessage(t, rec))
}

func TestJWTMissingTokenSegment(t *testing.T) {
	handler, _ := protected(t, auth.NewTokenManager(testSecret, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Authorization", "Bearer")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token missing", decodeMessage(t, rec))
}

func TestJWTInvalidToken(t *testing.T) {
	handler, _ := protected(t, auth.NewTokenManager(testSecret, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Invalid token", decodeMessage(t, rec))
}

func TestJWTExpiredToken(t *testing.T) {
	expired := auth.NewTokenManager(testSecret, -time.Minute)
	token, err := expired.Issue(1, "a@x.com")
	require.NoError(t, err)

	handler, _ := protected(t, auth.NewTokenManager(testSecret, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token expired", decodeMessage(t, rec))
}

func TestJWTValidTokenReachesHandler(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, time.Hour)
	token, err := tm.Issue(42, "ada@x.com")
	require.NoError(t, err)

	handler, seen := protected(t, tm)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, *seen, 1)
	assert.Equal(t, int64(42), (*seen)[0].UserID)
	assert.Equal(t, "ada@x.com", (*seen)[0].Email)
}
