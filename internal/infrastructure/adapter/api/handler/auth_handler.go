package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// CookieConfig controls how the session cookie is written
type CookieConfig struct {
	Name   string
	Secure bool // Only sent over HTTPS; enabled in production
}

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	authUseCase  usecase.AuthUseCase
	cookie       CookieConfig
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	authUseCase usecase.AuthUseCase,
	cookie CookieConfig,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase:  authUseCase,
		cookie:       cookie,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register handles the POST /api/user/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if !bindJSON(c, &req, h.logger) {
		return
	}

	if _, err := h.authUseCase.Register(c.Request.Context(), usecase.Credentials{
		Username: req.Username,
		Password: req.Password,
	}); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "User registered successfully"})
}

// Login handles the POST /api/user/login endpoint and sets the session cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if !bindJSON(c, &req, h.logger) {
		return
	}

	token, err := h.authUseCase.Login(c.Request.Context(), usecase.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	maxAge := 0
	if token.ExpiresAt != nil {
		maxAge = max(int(token.ExpiresAt.Sub(h.timeProvider.Now()).Seconds()), 1)
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookie.Name, token.Value, maxAge, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User logged in successfully"})
}

// Logout handles the POST /api/user/logout endpoint by expiring the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User logged out successfully"})
}

// bindJSON decodes the request body, answering 400 when it is not valid JSON
func bindJSON(c *gin.Context, req any, logger coreport.Logger) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Invalid request format", map[string]any{
			"path":       c.Request.URL.Path,
			"error":      err.Error(),
			"request_id": c.GetString(middleware.RequestIDKey),
		})
		respondWithError(c, domainerr.NewValidationError("", errInvalidBody))
		return false
	}
	return true
}

// respondWithError writes the status and body for a domain error
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(dto.ErrorStatus(err), dto.NewErrorResponse(err))
}
