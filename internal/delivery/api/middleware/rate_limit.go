package middleware

import (
	"strconv"
	"time"

	domainerrors "shop/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewRateLimiter allows requests per window for each client, with a burst of
// the full window budget. Clients are keyed by user id once authenticated,
// else by real IP.
func NewRateLimiter(requests int, window time.Duration) echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(requests) / window.Seconds()),
		Burst:     requests,
		ExpiresIn: 2 * window,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store:               store,
		IdentifierExtractor: clientIdentifier,
		ErrorHandler: func(c echo.Context, err error) error {
			return domainerrors.ErrInternalError.WithDetails(err.Error())
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return domainerrors.ErrTooManyRequests
		},
	})
}

func clientIdentifier(c echo.Context) (string, error) {
	if id, ok := GetUserID(c); ok {
		return "user:" + strconv.FormatInt(id, 10), nil
	}

	return "ip:" + c.RealIP(), nil
}
