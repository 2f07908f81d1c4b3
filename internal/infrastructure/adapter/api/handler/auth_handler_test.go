package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func newAuthRouter(t *testing.T, cookie CookieConfig) (*gin.Engine, *usecasemocks.MockAuthUseCase, *coremocks.MockTimeProvider) {
	authUseCase := usecasemocks.NewMockAuthUseCase(t)
	timeProvider := coremocks.NewMockTimeProvider(t)
	h := NewAuthHandler(authUseCase, cookie, timeProvider, logger.NewNoopLogger())

	router := gin.New()
	router.POST("/api/user/register", h.Register)
	router.POST("/api/user/login", h.Login)
	router.POST("/api/user/logout", h.Logout)
	return router, authUseCase, timeProvider
}

func TestAuthHandlerRegister(t *testing.T) {
	testCases := []struct {
		name        string
		body        string
		useCaseErr  error
		callUseCase bool
		wantStatus  int
		wantCode    int
		wantMessage string
	}{
		{"Success", `{"username":"alice","password":"secret"}`, nil, true, http.StatusCreated, 0, "User registered successfully"},
		{"Duplicate", `{"username":"alice","password":"secret"}`, domainerr.ErrUsernameTaken, true, http.StatusConflict, domainerr.CodeUsernameTaken, "Username already exists"},
		{"MissingFields", `{"username":""}`, domainerr.NewValidationError("", domainerr.ErrMissingCredentials), true, http.StatusBadRequest, domainerr.CodeValidation, "Username and password are required"},
		{"StoreFailure", `{"username":"alice","password":"secret"}`, domainerr.ErrDatabaseConnection, true, http.StatusInternalServerError, domainerr.CodeInternalServer, "Internal server error"},
		{"MalformedJSON", `{"username":`, nil, false, http.StatusBadRequest, domainerr.CodeValidation, "Invalid request format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, authUseCase, _ := newAuthRouter(t, CookieConfig{Name: "access_token"})
			if tc.callUseCase {
				var user *entity.User
				if tc.useCaseErr == nil {
					user = &entity.User{ID: 1, Username: "alice"}
				}
				authUseCase.EXPECT().Register(mock.Anything, mock.AnythingOfType("usecase.Credentials")).Return(user, tc.useCaseErr).Once()
			}

			w := performRequest(router, http.MethodPost, "/api/user/register", tc.body)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantCode == 0 {
				var resp dto.MessageResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tc.wantMessage, resp.Message)
				return
			}
			resp := decodeError(t, w)
			assert.Equal(t, tc.wantCode, resp.Code)
			assert.Equal(t, tc.wantMessage, resp.Message)
		})
	}
}

func TestAuthHandlerRegisterPassesCredentials(t *testing.T) {
	router, authUseCase, _ := newAuthRouter(t, CookieConfig{Name: "access_token"})
	authUseCase.EXPECT().
		Register(mock.Anything, usecase.Credentials{Username: "Alice", Password: "p@ss word"}).
		Return(&entity.User{ID: 3, Username: "Alice"}, nil).
		Once()

	w := performRequest(router, http.MethodPost, "/api/user/register", `{"username":"Alice","password":"p@ss word"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "p@ss word")
}

func TestAuthHandlerLoginSetsSessionCookie(t *testing.T) {
	router, authUseCase, _ := newAuthRouter(t, CookieConfig{Name: "access_token", Secure: true})
	authUseCase.EXPECT().
		Login(mock.Anything, usecase.Credentials{Username: "alice", Password: "secret"}).
		Return(&entity.SessionToken{Value: "signed.jwt.value", UserID: 1}, nil).
		Once()

	w := performRequest(router, http.MethodPost, "/api/user/login", `{"username":"alice","password":"secret"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"User logged in successfully"}`, w.Body.String())

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "access_token", cookie.Name)
	assert.Equal(t, "signed.jwt.value", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Zero(t, cookie.MaxAge, "tokens without expiry get a session cookie")
}

func TestAuthHandlerLoginCookieFollowsTokenExpiry(t *testing.T) {
	router, authUseCase, timeProvider := newAuthRouter(t, CookieConfig{Name: "sid"})
	now := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	expires := now.Add(time.Hour)
	timeProvider.EXPECT().Now().Return(now)
	authUseCase.EXPECT().Login(mock.Anything, mock.Anything).
		Return(&entity.SessionToken{Value: "tok", UserID: 1, ExpiresAt: &expires}, nil).
		Once()

	w := performRequest(router, http.MethodPost, "/api/user/login", `{"username":"alice","password":"secret"}`)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.False(t, cookies[0].Secure)
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"UnknownUser", domainerr.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"WrongPassword", domainerr.ErrInvalidPassword, http.StatusUnauthorized, "Invalid password"},
		{"SigningFailure", domainerr.ErrInternalServer, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, authUseCase, _ := newAuthRouter(t, CookieConfig{Name: "access_token"})
			authUseCase.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			w := performRequest(router, http.MethodPost, "/api/user/login", `{"username":"alice","password":"nope"}`)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantMessage, decodeError(t, w).Message)
			assert.Empty(t, w.Result().Cookies())
		})
	}
}

func TestAuthHandlerLogoutClearsCookie(t *testing.T) {
	router, _, _ := newAuthRouter(t, CookieConfig{Name: "access_token"})

	w := performRequest(router, http.MethodPost, "/api/user/logout", "")

	require.Equal(t, http.StatusOK, w.Code)
	setCookie := w.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(setCookie, "access_token=;"))
	assert.Contains(t, setCookie, "Max-Age=0")
}
