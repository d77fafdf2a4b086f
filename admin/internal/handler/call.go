package handler

import (
	"context"
	"net/http"

	"github.com/Astemirdum/book-exchange-admin/admin/internal/errs"
	"github.com/Astemirdum/book-exchange-admin/pkg/circuit_breaker"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// call runs fn behind cb and turns failures into echo.HTTPError.
// Cancellation passes through untouched so the breaker does not count it.
func call[T any](cb circuit_breaker.CircuitBreaker, fn func() (T, int, error)) (T, error) {
	var out T
	err := cb.Call(func() error {
		v, code, err := fn()
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			if code < http.StatusBadRequest {
				code = http.StatusBadGateway
			}
			return echo.NewHTTPError(code, err.Error())
		}
		out = v
		return nil
	})
	if errors.Is(err, circuit_breaker.ErrOpenCB) {
		return out, echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	return out, err
}

func pathID(c echo.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, errs.ErrEmptyID.Error())
	}
	return id, nil
}
