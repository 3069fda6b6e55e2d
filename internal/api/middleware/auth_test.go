package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strategiq/scoreboard/internal/api/middleware"
)

type mockAuthenticator struct {
	enabled bool
	key     string
}

func (m *mockAuthenticator) Enabled() bool { return m.enabled }

func (m *mockAuthenticator) Authenticate(rawKey string) error {
	if rawKey != m.key {
		return errors.New("invalid admin key")
	}
	return nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminKey_Disabled(t *testing.T) {
	handler := middleware.AdminKey(&mockAuthenticator{enabled: false})(okHandler())
	req := httptest.NewRequest(http.MethodPost, "/resetTournament", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminKey_NilAuthenticator(t *testing.T) {
	handler := middleware.AdminKey(nil)(okHandler())
	req := httptest.NewRequest(http.MethodPost, "/resetTournament", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminKey_MissingHeader(t *testing.T) {
	handler := middleware.AdminKey(&mockAuthenticator{enabled: true, key: "secret"})(okHandler())
	req := httptest.NewRequest(http.MethodPost, "/resetTournament", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestAdminKey_WrongKey(t *testing.T) {
	handler := middleware.AdminKey(&mockAuthenticator{enabled: true, key: "secret"})(okHandler())
	req := httptest.NewRequest(http.MethodPost, "/resetTournament", nil)
	req.Header.Set("X-API-Key", "guess")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminKey_ValidKey(t *testing.T) {
	handler := middleware.AdminKey(&mockAuthenticator{enabled: true, key: "secret"})(okHandler())
	req := httptest.NewRequest(http.MethodPost, "/resetTournament", nil)
	req.Header.Set("X-API-Key", "secret")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
