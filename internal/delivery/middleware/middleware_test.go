package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shop/config"
	deliverycontext "shop/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id reused", header: "abc-123", wantSame: true},
		{name: "missing id generated", header: ""},
		{name: "id with spaces replaced", header: "abc 123"},
		{name: "oversized id replaced", header: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

			e := echo.New()
			var seenCtxID string
			e.GET("/", func(c echo.Context) error {
				seenCtxID = deliverycontext.RequestIDFrom(c.Request().Context())
				deliverycontext.GetLogger(c.Request().Context()).Info("inside")

				return c.NoContent(http.StatusOK)
			}, m.Process)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, got, seenCtxID)
			assert.Contains(t, buf.String(), `"request_id":"`+got+`"`)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	run := func(debug bool, handler echo.HandlerFunc) (string, int) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

		e := echo.New()
		e.GET("/", handler, m.Handle)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?q=1", nil))

		return buf.String(), rec.Code
	}
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	failing := func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadRequest, "bad") }

	out, code := run(false, ok)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, out)

	out, _ = run(true, ok)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"query":"q=1"`)

	out, code = run(false, failing)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"status":400`)
}
