package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sullivan-trading/sullivan-api/internal/apperrors"
	"github.com/sullivan-trading/sullivan-api/internal/auth"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newManager(t *testing.T, password string) *auth.Manager {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewManager(string(hash), "test-session-secret", zap.NewNop())
}

func TestLoginAndValidate(t *testing.T) {
	m := newManager(t, "correct horse")

	token, err := m.Login("correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, m.Validate(token))
}

func TestLoginWrongPassword(t *testing.T) {
	m := newManager(t, "correct horse")

	_, err := m.Login("battery staple")
	require.Error(t, err)
	assert.True(t, apperrors.IsAuthentication(err))
}

func TestLoginWithoutConfiguredHash(t *testing.T) {
	m := auth.NewManager("", "secret", zap.NewNop())

	_, err := m.Login("anything")
	require.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	m := newManager(t, "pw")
	other := auth.NewManager("", "different-secret", zap.NewNop())

	token, err := m.Login("pw")
	require.NoError(t, err)

	err = other.Validate(token)
	require.Error(t, err)
	assert.True(t, apperrors.IsAuthentication(err))

	err = m.Validate(token + "x")
	assert.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newManager(t, "pw")

	router := gin.New()
	router.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// No cookie.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage cookie.
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "not-a-token"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid session.
	token, err := m.Login("pw")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
