package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSessionGate(t *testing.T) {
	testCases := []struct {
		name      string
		prepare   func(r *http.Request)
		token     string
		authErr   error
		wantCode  int
		wantOwner string
	}{
		{
			name:      "Cookie",
			prepare:   func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"}) },
			token:     "cookie-token",
			wantCode:  http.StatusOK,
			wantOwner: "42",
		},
		{
			name:      "BearerHeader",
			prepare:   func(r *http.Request) { r.Header.Set("Authorization", "Bearer header-token") },
			token:     "header-token",
			wantCode:  http.StatusOK,
			wantOwner: "42",
		},
		{
			name: "CookieWinsOverHeader",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
				r.Header.Set("Authorization", "Bearer header-token")
			},
			token:     "cookie-token",
			wantCode:  http.StatusOK,
			wantOwner: "42",
		},
		{
			name:     "Missing",
			prepare:  func(r *http.Request) {},
			token:    "",
			authErr:  domainerr.ErrUnauthorized,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "WrongScheme",
			prepare:  func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") },
			token:    "",
			authErr:  domainerr.ErrUnauthorized,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "UnexpectedFailure",
			prepare:  func(r *http.Request) { r.Header.Set("Authorization", "Bearer header-token") },
			token:    "header-token",
			authErr:  errors.New("boom"),
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			authUseCase := usecasemocks.NewMockAuthUseCase(t)
			if tc.authErr != nil {
				authUseCase.EXPECT().Authenticate(mock.Anything, tc.token).Return(nil, tc.authErr).Once()
			} else {
				authUseCase.EXPECT().Authenticate(mock.Anything, tc.token).Return(&entity.Identity{UserID: 42}, nil).Once()
			}

			router := gin.New()
			router.GET("/private", SessionGate(authUseCase, "access_token", logger.NewNoopLogger()), func(c *gin.Context) {
				ownerID, ok := OwnerID(c)
				assert.True(t, ok)
				c.String(http.StatusOK, "%d", ownerID)
			})

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			tc.prepare(req)
			w := serve(router, req)

			assert.Equal(t, tc.wantCode, w.Code)
			if tc.wantCode == http.StatusOK {
				assert.Equal(t, tc.wantOwner, w.Body.String())
			} else {
				assert.JSONEq(t, `{"code":4010,"message":"Unauthorized"}`, w.Body.String())
			}
		})
	}
}

func TestOwnerIDMissing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := OwnerID(c)
	assert.False(t, ok)

	c.Set(OwnerIDKey, "7")
	_, ok = OwnerID(c)
	assert.False(t, ok)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("ReusesIncoming", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := serve(router, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})

	t.Run("GeneratesWhenMissing", func(t *testing.T) {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("ReplacesInvalid", func(t *testing.T) {
		for _, bad := range []string{"has space", strings.Repeat("x", 129)} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, bad)
			w := serve(router, req)

			assert.NotEqual(t, bad, w.Header().Get(RequestIDHeader))
			assert.Len(t, w.Header().Get(RequestIDHeader), 36)
		}
	})
}

func TestSecurityHeaders(t *testing.T) {
	for _, hsts := range []bool{false, true} {
		router := gin.New()
		router.Use(SecurityHeaders(hsts))
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "no-referrer", w.Header().Get("Referrer-Policy"))
		assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'none'")
		assert.Equal(t, "same-origin", w.Header().Get("Cross-Origin-Opener-Policy"))
		assert.Equal(t, "off", w.Header().Get("X-DNS-Prefetch-Control"))
		if hsts {
			assert.Contains(t, w.Header().Get("Strict-Transport-Security"), "max-age=15552000")
		} else {
			assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
		}
	}
}

func TestSecurityHeadersKeepChainRunning(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeaders(false))
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "body") })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body", w.Body.String())
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRecoveryRecoversPanic(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(logger.NewNoopLogger()))
	router.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":5000,"message":"Internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "kaboom")
}

func TestRecoveryLogsRequestIdentity(t *testing.T) {
	log := coremocks.NewMockLogger(t)
	log.EXPECT().Error("Handler panicked", mock.MatchedBy(func(fields map[string]interface{}) bool {
		stack, _ := fields["stack"].(string)
		return fields["panic"] == "kaboom" &&
			fields["request_id"] == "req-123" &&
			fields["owner_id"] == uint64(9) &&
			fields["route"] == "/things/:id" &&
			strings.Contains(stack, "goroutine")
	})).Once()

	router := gin.New()
	router.Use(Recovery(log))
	router.Use(RequestID())
	router.GET("/things/:id", func(c *gin.Context) {
		c.Set(OwnerIDKey, uint64(9))
		panic("kaboom")
	})

	req := httptest.NewRequest(http.MethodGet, "/things/4", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := serve(router, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
}

func TestRecoveryAfterResponseStarted(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(logger.NewNoopLogger()))
	router.GET("/partial", func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		panic("late failure")
	})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/partial", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

func TestRecoveryReraisesAbortHandler(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(logger.NewNoopLogger()))
	router.GET("/abort", func(c *gin.Context) { panic(http.ErrAbortHandler) })

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serve(router, httptest.NewRequest(http.MethodGet, "/abort", nil))
	})
}

func TestLoggerLevelFollowsStatus(t *testing.T) {
	testCases := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "Info"},
		{http.StatusNotFound, "Warn"},
		{http.StatusInternalServerError, "Error"},
	}

	for _, tc := range testCases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
			timeProvider := coremocks.NewMockTimeProvider(t)
			timeProvider.EXPECT().Now().Return(start).Once()
			timeProvider.EXPECT().Since(start).Return(25 * coreport.Millisecond).Once()

			log := coremocks.NewMockLogger(t)
			matchFields := mock.MatchedBy(func(fields map[string]interface{}) bool {
				return fields["status"] == tc.status &&
					fields["path"] == "/things" &&
					fields["latency_ms"] == int64(25) &&
					fields["owner_id"] == uint64(3)
			})
			switch tc.level {
			case "Info":
				log.EXPECT().Info("Request processed", matchFields).Once()
			case "Warn":
				log.EXPECT().Warn("Request rejected", matchFields).Once()
			case "Error":
				log.EXPECT().Error("Request failed", matchFields).Once()
			}

			router := gin.New()
			router.Use(Logger(log, timeProvider))
			router.GET("/things", func(c *gin.Context) {
				c.Set(OwnerIDKey, uint64(3))
				c.Status(tc.status)
			})

			serve(router, httptest.NewRequest(http.MethodGet, "/things", nil))
		})
	}
}

func TestLoggerMergesDomainErrorFields(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(start).Once()
	timeProvider.EXPECT().Since(start).Return(coreport.Millisecond).Once()

	log := coremocks.NewMockLogger(t)
	log.EXPECT().Error("Request failed", mock.MatchedBy(func(fields map[string]interface{}) bool {
		return fields["error_type"] == "store_error" &&
			fields["operation"] == "list" &&
			fields["entity"] == "transaction" &&
			fields["error_code"] == domainerr.CodeInternalServer &&
			fields["path"] == "/things" &&
			fields["status"] == http.StatusInternalServerError
	})).Once()

	router := gin.New()
	router.Use(Logger(log, timeProvider))
	router.GET("/things", func(c *gin.Context) {
		_ = c.Error(errors.New("earlier failure"))
		storeErr := domainerr.NewStoreError("list", "transaction", domainerr.ErrDatabaseConnection)
		_ = c.Error(fmt.Errorf("list transactions: %w", storeErr))
		c.Status(http.StatusInternalServerError)
	})

	serve(router, httptest.NewRequest(http.MethodGet, "/things", nil))
}

func TestLoggerMergesValidationFields(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(start).Once()
	timeProvider.EXPECT().Since(start).Return(coreport.Millisecond).Once()

	log := coremocks.NewMockLogger(t)
	log.EXPECT().Warn("Request rejected", mock.MatchedBy(func(fields map[string]interface{}) bool {
		return fields["error_type"] == "validation_error" &&
			fields["field"] == "type" &&
			fields["path"] == "/things"
	})).Once()

	router := gin.New()
	router.Use(Logger(log, timeProvider))
	router.GET("/things", func(c *gin.Context) {
		_ = c.Error(domainerr.NewValidationError("type", domainerr.ErrInvalidKind))
		c.Status(http.StatusBadRequest)
	})

	serve(router, httptest.NewRequest(http.MethodGet, "/things", nil))
}
