package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		handler       gin.HandlerFunc
		expectedMsg   string
		expectedLevel zapcore.Level
		expectedCode  int
	}{
		{
			name:          "successful request",
			path:          "/word/hello",
			handler:       func(c *gin.Context) { c.Status(http.StatusOK) },
			expectedMsg:   "HTTP request",
			expectedLevel: zapcore.InfoLevel,
			expectedCode:  http.StatusOK,
		},
		{
			name: "request with errors",
			path: "/word/hello",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("dictionary down"))
				c.Status(http.StatusFound)
			},
			expectedMsg:   "HTTP request with errors",
			expectedLevel: zapcore.ErrorLevel,
			expectedCode:  http.StatusFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			router := gin.New()
			router.Use(Logger(zap.New(core)))
			router.GET("/word/:word", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			entries := logs.All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tt.expectedMsg, entries[0].Message)
				assert.Equal(t, tt.expectedLevel, entries[0].Level)
				fields := entries[0].ContextMap()
				assert.Equal(t, "/word/hello", fields["path"])
				assert.EqualValues(t, tt.expectedCode, fields["status"])
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	t.Run("renders error page", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		router := gin.New()
		router.Use(Recovery(zap.New(core), func(c *gin.Context) {
			c.String(http.StatusInternalServerError, "error page")
		}))
		router.GET("/boom", func(c *gin.Context) { panic("boom") })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "error page", w.Body.String())
		assert.Equal(t, 1, logs.FilterMessage("Panic recovered").Len())
	})

	t.Run("bare status without renderer", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery(zap.NewNop(), nil))
		router.GET("/boom", func(c *gin.Context) { panic("boom") })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
