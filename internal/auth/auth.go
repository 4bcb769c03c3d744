// Package auth implements the admin session boundary: a bcrypt-checked
// shared admin credential exchanged for a signed session token carried
// in a cookie. There is a single operator role; no identity provider.
package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sullivan-trading/sullivan-api/internal/apperrors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	// SessionCookieName carries the admin session token.
	SessionCookieName = "sullivan_session"

	// SessionTTL matches the original deployment's 7 day session cookie.
	SessionTTL = 7 * 24 * time.Hour

	sessionSubject = "admin"
)

// Manager issues and validates admin session tokens.
type Manager struct {
	passwordHash string
	secret       []byte
	logger       *zap.Logger
}

// NewManager creates a Manager. passwordHash is the bcrypt hash of the
// admin password; an empty hash disables login entirely.
func NewManager(passwordHash, sessionSecret string, logger *zap.Logger) *Manager {
	return &Manager{
		passwordHash: passwordHash,
		secret:       []byte(sessionSecret),
		logger:       logger,
	}
}

// Login checks the password against the configured hash and returns a
// signed session token.
func (m *Manager) Login(password string) (string, error) {
	if m.passwordHash == "" {
		return "", apperrors.NewConfiguration("admin password not configured")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(m.passwordHash), []byte(password)); err != nil {
		return "", apperrors.NewAuthentication("invalid password", nil)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Validate checks a session token's signature, expiry, and subject.
func (m *Manager) Validate(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return apperrors.NewAuthentication("invalid session", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != sessionSubject {
		return apperrors.NewAuthentication("invalid session", nil)
	}
	return nil
}

// RequireAuth is the gin middleware guarding the admin routes.
func (m *Manager) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		if err := m.Validate(tokenString); err != nil {
			m.logger.Warn("Rejected admin session", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		c.Next()
	}
}
