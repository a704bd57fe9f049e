package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiddlewareTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.Any("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestCORS(t *testing.T) {
	router := newMiddlewareTestRouter(CORS())

	t.Run("preflight is answered without hitting the handler", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "https://lessons.example.com")

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Authorization, Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
		assert.Equal(t, "7200", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("regular requests pass through with the origin header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRequestSizeLimit(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		bodySize       int
		expectedStatus int
	}{
		{
			name:           "small body accepted",
			method:         http.MethodPost,
			bodySize:       100,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "body at the limit accepted",
			method:         http.MethodPost,
			bodySize:       defaultMaxBodyBytes,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "oversized body rejected",
			method:         http.MethodPut,
			bodySize:       defaultMaxBodyBytes + 1,
			expectedStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newMiddlewareTestRouter(RequestSizeLimit(), func(c *gin.Context) {
				if _, err := c.GetRawData(); err != nil {
					c.AbortWithStatus(http.StatusRequestEntityTooLarge)
				}
			})

			w := httptest.NewRecorder()
			body := strings.NewReader(strings.Repeat("a", tt.bodySize))
			req := httptest.NewRequest(tt.method, "/ping", body)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	t.Run("reads are not limited", func(t *testing.T) {
		router := newMiddlewareTestRouter(RequestSizeLimitWithSize(16), func(c *gin.Context) {
			_, err := c.GetRawData()
			require.NoError(t, err)
		})

		w := httptest.NewRecorder()
		body := strings.NewReader(strings.Repeat("a", 64))
		req := httptest.NewRequest(http.MethodGet, "/ping", body)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPerClientRateLimit(t *testing.T) {
	newLimitedRouter := func(rps, burst int) (*gin.Engine, chan struct{}) {
		rateLimiters := &sync.Map{}
		cleanupStop := make(chan struct{})
		limit := PerClientRateLimit(rateLimiters, cleanupStop, &sync.Once{}, rps, burst)
		return newMiddlewareTestRouter(limit), cleanupStop
	}

	get := func(router *gin.Engine, remoteAddr string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = remoteAddr
		router.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("burst is allowed then throttled", func(t *testing.T) {
		router, stop := newLimitedRouter(1, 3)
		defer close(stop)

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, get(router, "10.0.0.1:1000"))
		}
		assert.Equal(t, http.StatusTooManyRequests, get(router, "10.0.0.1:1000"))
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		router, stop := newLimitedRouter(1, 2)
		defer close(stop)

		for i := 0; i < 3; i++ {
			get(router, "10.0.0.1:1000")
		}
		assert.Equal(t, http.StatusOK, get(router, "10.0.0.2:1000"))
	})

	t.Run("throttled response names the problem", func(t *testing.T) {
		router, stop := newLimitedRouter(1, 1)
		defer close(stop)

		get(router, "10.0.0.3:1000")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.3:1000"
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "Too many requests")
	})
}

func TestCleanupIdleLimiters(t *testing.T) {
	rateLimiters := &sync.Map{}
	rateLimiters.Store("10.0.0.9", &clientLimiter{lastSeen: time.Now().Add(-2 * limiterIdleTTL)})

	cleanupStop := make(chan struct{})
	go cleanupIdleLimiters(rateLimiters, cleanupStop)

	// The ticker fires on a coarse interval; this only verifies the
	// goroutine starts and stops cleanly.
	time.Sleep(10 * time.Millisecond)
	close(cleanupStop)
}
