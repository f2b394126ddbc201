package middleware

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartystreets-api/internal/auth"
	"smartystreets-api/pkg/logger"
	"smartystreets-api/pkg/metrics"
	"smartystreets-api/pkg/smartystreets"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger(io.Discard, "ERROR")
	os.Exit(m.Run())
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), SecureHeaders(), MetricsMiddleware(), LoggingMiddleware(), ErrorHandler())
	r.Use(handlers...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(AuthMiddleware("secret"))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("subject"))
	})

	token, err := auth.GenerateJWT("svc", "", "secret", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer " + token.Token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "svc", w.Body.String())
			} else {
				assert.JSONEq(t, `{"error":{"message":"A valid bearer token is required to use this API.","code":"UNAUTHORIZED"}}`, w.Body.String())
			}
		})
	}
}

func TestErrorHandlerMapsClientErrors(t *testing.T) {
	r := newRouter()
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("verify: %w", &smartystreets.Error{Kind: smartystreets.KindRemote, Message: "Invalid ZIP", StatusCode: 400}))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Invalid ZIP","code":"INVALID_ADDRESS"}}`, w.Body.String())
}

func TestMetricsCountsGatewayErrors(t *testing.T) {
	r := newRouter()
	r.GET("/down", func(c *gin.Context) {
		_ = c.Error(&smartystreets.Error{Kind: smartystreets.KindTransport, Message: "dial tcp: refused"})
	})

	counter := metrics.GatewayErrorsTotal.WithLabelValues("SERVICE_UNAVAILABLE")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/down", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRequestIDAndSecureHeaders(t *testing.T) {
	r := newRouter()
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
