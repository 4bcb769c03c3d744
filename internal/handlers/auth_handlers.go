package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sullivan-trading/sullivan-api/internal/auth"
	"go.uber.org/zap"
)

// AuthHandler serves the admin login and logout endpoints.
type AuthHandler struct {
	auth         *auth.Manager
	secureCookie bool
	logger       *zap.Logger
}

// NewAuthHandler creates an AuthHandler. secureCookie should be false
// only in local development over plain HTTP.
func NewAuthHandler(manager *auth.Manager, secureCookie bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: manager, secureCookie: secureCookie, logger: logger}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login handles POST /admin/login. On success a session cookie is set.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "password is required", err)
		return
	}

	token, err := h.auth.Login(req.Password)
	if err != nil {
		h.logger.Warn("Admin login failed", zap.String("client_ip", c.ClientIP()))
		handleServiceError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, token, int(auth.SessionTTL.Seconds()), "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, SuccessResponse{Message: "logged in"})
}

// Logout handles POST /admin/logout by expiring the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, SuccessResponse{Message: "logged out"})
}
