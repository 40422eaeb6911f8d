package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/entity"
)

// Body is the uniform error response shape. Not-found errors carry Message;
// validation errors carry ValidationErrors.
type Body struct {
	Timestamp        string            `json:"timestamp"`
	Status           int               `json:"status"`
	Error            string            `json:"error"`
	Message          string            `json:"message,omitempty"`
	ValidationErrors map[string]string `json:"validationErrors,omitempty"`
}

// Handler returns the central echo error handler. Domain handlers return
// service errors as-is; the mapping to status codes happens here:
//
//	entity.NotFoundError   -> 404 with a message naming kind and id
//	entity.ValidationError -> 400 with the field -> reason map
//	echo.HTTPError         -> passed through (bad ids, oversized bodies, ...)
//	anything else          -> 500, logged, details withheld
func Handler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var nf *entity.NotFoundError
		var ve *entity.ValidationError
		var he *echo.HTTPError

		switch {
		case errors.As(err, &nf):
			write(c, http.StatusNotFound, nf.Error(), nil)
		case errors.As(err, &ve):
			write(c, http.StatusBadRequest, "", ve.Fields)
		case errors.As(err, &he):
			write(c, he.Code, fmt.Sprintf("%v", he.Message), nil)
		default:
			logger.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("unhandled error")
			write(c, http.StatusInternalServerError, "internal server error", nil)
		}
	}
}

func write(c echo.Context, status int, message string, fields map[string]string) {
	body := Body{
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		Status:           status,
		Error:            http.StatusText(status),
		Message:          message,
		ValidationErrors: fields,
	}

	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	_ = err
}
