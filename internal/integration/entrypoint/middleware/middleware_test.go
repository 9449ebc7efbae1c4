package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/finance-tracker/insights/internal/domain/error"
	"github.com/finance-tracker/insights/internal/integration/adapters"
	"github.com/finance-tracker/insights/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(auth *AuthMiddleware, limiter *RateLimiter) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{auth.Authenticate()}
	if limiter != nil {
		handlers = append(handlers, limiter.Middleware())
	}
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.String(http.StatusOK, userID.String())
	})
	r.GET("/protected", handlers...)
	return r
}

func request(r http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

func TestAuthMiddleware(t *testing.T) {
	tokens := adapters.NewTokenService("secret", time.Hour)
	r := protectedRouter(NewAuthMiddleware(tokens), nil)

	userID := uuid.New()
	token, err := tokens.GenerateAccessToken(context.Background(), userID, "ana@example.com")
	require.NoError(t, err)

	expiredTokens := adapters.NewTokenService("secret", time.Nanosecond)
	expired, err := expiredTokens.GenerateAccessToken(context.Background(), userID, "ana@example.com")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	t.Run("valid token", func(t *testing.T) {
		w := request(r, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID.String(), w.Body.String())
	})

	tests := []struct {
		name     string
		header   string
		wantCode domainerror.AuthErrorCode
	}{
		{name: "missing header", header: "", wantCode: domainerror.ErrCodeMissingToken},
		{name: "wrong scheme", header: "Basic abc", wantCode: domainerror.ErrCodeInvalidToken},
		{name: "empty bearer", header: "Bearer ", wantCode: domainerror.ErrCodeMissingToken},
		{name: "garbage", header: "Bearer abc.def.ghi", wantCode: domainerror.ErrCodeInvalidToken},
		{name: "expired", header: "Bearer " + expired, wantCode: domainerror.ErrCodeExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := request(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, string(tt.wantCode), errorCode(t, w))
		})
	}
}

func TestRateLimiter(t *testing.T) {
	tokens := adapters.NewTokenService("secret", time.Hour)
	limiter := NewRateLimiter(2, time.Minute)
	current := time.Date(2025, time.March, 19, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }
	r := protectedRouter(NewAuthMiddleware(tokens), limiter)

	alice, err := tokens.GenerateAccessToken(context.Background(), uuid.New(), "alice@example.com")
	require.NoError(t, err)
	bob, err := tokens.GenerateAccessToken(context.Background(), uuid.New(), "bob@example.com")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, request(r, "Bearer "+alice).Code)
	assert.Equal(t, http.StatusOK, request(r, "Bearer "+alice).Code)

	w := request(r, "Bearer "+alice)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, string(domainerror.ErrCodeRateLimited), errorCode(t, w))

	assert.Equal(t, http.StatusOK, request(r, "Bearer "+bob).Code, "limits are per user")

	current = current.Add(2 * time.Minute)
	assert.Equal(t, http.StatusOK, request(r, "Bearer "+alice).Code, "window resets")

	limiter.Reset()
	assert.Empty(t, limiter.entries)
}

func TestRateLimiter_IgnoresEnvironment(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("E2E_MODE", "true")

	limiter := NewRateLimiter(1, time.Minute)
	r := gin.New()
	r.GET("/protected", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, request(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, request(r, "").Code)
}
