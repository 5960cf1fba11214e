package http

import (
	"errors"
	"net/http"

	"tastyfood/internal/core/application/usecases/commands"
	"tastyfood/internal/core/application/usecases/queries"
	"tastyfood/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusFor maps an error to its HTTP status and the message shown to callers.
// Messages of server-side failures are never exposed.
func statusFor(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, http.StatusText(httpErr.Code)
	case errors.Is(err, queries.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, commands.ErrCurrentPasswordIncorrect):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrIdentifierFormat):
		return http.StatusInternalServerError, "stored identifier has an unexpected format"
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

func (s *Server) writeError(ctx echo.Context, err error) error {
	code, message := statusFor(err)

	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", code),
		zap.String("path", ctx.Path()),
		zap.String("request_id", ctx.Response().Header().Get(echo.HeaderXRequestID)),
	}
	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed", fields...)
	} else {
		s.logger.Debug("request rejected", fields...)
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// errorHandler renders errors that escape the handlers, such as unknown routes or
// malformed path parameters, in the common error body.
func (s *Server) errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code, message := statusFor(err)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	}
	if code >= http.StatusInternalServerError {
		s.logger.Error("unhandled error", zap.Error(err), zap.String("path", ctx.Path()))
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, Error{Code: code, Message: message})
}
