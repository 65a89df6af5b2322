package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"postbox/internal/generated/servers"
	"postbox/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const problemContentType = "application/problem+json"

var (
	ErrInvalidBody    = errs.Validation("request.INVALID_BODY", "Request body is malformed")
	ErrInvalidRequest = errs.Validation("request.INVALID", "Request does not match the API contract")
)

var problemTypes = map[int]string{
	http.StatusBadRequest:          "https://tools.ietf.org/html/rfc9110#section-15.5.1",
	http.StatusUnauthorized:        "https://tools.ietf.org/html/rfc9110#section-15.5.2",
	http.StatusForbidden:           "https://tools.ietf.org/html/rfc9110#section-15.5.4",
	http.StatusNotFound:            "https://tools.ietf.org/html/rfc9110#section-15.5.5",
	http.StatusMethodNotAllowed:    "https://tools.ietf.org/html/rfc9110#section-15.5.6",
	http.StatusConflict:            "https://tools.ietf.org/html/rfc9110#section-15.5.10",
	http.StatusInternalServerError: "https://tools.ietf.org/html/rfc9110#section-15.6.1",
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler renders every failure as a problem document. Internal
// failures are logged with the request context and reach the client only as
// an opaque general.INTERNAL_SERVER_ERROR.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		problem := toProblem(err)
		if problem.Status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "unhandled error",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"error", err,
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(problem.Status)
		} else {
			err = writeProblem(c, problem)
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", err)
		}
	}
}

func writeProblem(c echo.Context, problem servers.Problem) error {
	body, err := json.Marshal(problem)
	if err != nil {
		return err
	}
	return c.Blob(problem.Status, problemContentType, body)
}

func toProblem(err error) servers.Problem {
	if described, ok := errs.Describe(err); ok && described.Kind != errs.KindInternal {
		return newProblem(StatusOf(described.Kind), described.Code, described.Message)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		return newProblem(httpErr.Code, httpCode(httpErr.Code), fmt.Sprint(httpErr.Message))
	}

	return newProblem(http.StatusInternalServerError, errs.CodeInternal, "An unexpected error occurred")
}

func newProblem(status int, code, detail string) servers.Problem {
	typ, ok := problemTypes[status]
	if !ok {
		typ = "about:blank"
	}
	return servers.Problem{
		Type:   typ,
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
		Code:   code,
	}
}

// httpCode names failures raised by echo itself, before any use case ran.
func httpCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "request.INVALID"
	case http.StatusNotFound:
		return "general.NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "general.METHOD_NOT_ALLOWED"
	default:
		return fmt.Sprintf("general.HTTP_%d", status)
	}
}

func bind(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return ErrInvalidBody.WithCause(err)
	}
	return nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
