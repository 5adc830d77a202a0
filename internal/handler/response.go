package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	apperrors "restaurant/internal/errors"
	"restaurant/internal/messages"
	"restaurant/internal/validation"
)

func respond(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, apperrors.Response{StatusCode: status, Message: message, Data: data})
}

// bind decodes the request into req and runs its validation rules.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.ErrBadRequest
	}
	if err := c.Validate(req); err != nil {
		return apperrors.Validation(validation.Message(err))
	}
	return nil
}

func uintParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.ErrInvalidID
	}
	return uint(id), nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidID
	}
	return id, nil
}

// ErrorHandler writes every error as the response envelope. Domain errors keep their catalog
// message; anything unclassified is logged and reported as an internal error.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *apperrors.HTTPError
	if he, ok := err.(*echo.HTTPError); ok {
		httpErr = apperrors.NewHTTPError(he.Code, httpErrorMessage(he.Code), "")
		if he.Internal != nil {
			log.Debugf("%s %s: %v", c.Request().Method, c.Path(), he.Internal)
		}
	} else {
		httpErr = apperrors.MapErrorToHTTP(err)
		if apperrors.KindOf(err) == apperrors.KindInternal {
			log.Errorf("%s %s [%s]: %v", c.Request().Method, c.Request().URL.Path,
				c.Response().Header().Get(echo.HeaderXRequestID), err)
		}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(httpErr.StatusCode)
	} else {
		err = c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	if err != nil {
		log.Errorf("write error response: %v", err)
	}
}

func httpErrorMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return messages.NotFound
	case http.StatusMethodNotAllowed:
		return messages.MethodNotAllowed
	case http.StatusTooManyRequests:
		return messages.TooManyRequests
	case http.StatusUnauthorized:
		return messages.TokenRequired
	case http.StatusForbidden:
		return messages.InsufficientPermissions
	}
	if status >= http.StatusInternalServerError {
		return messages.InternalServerError
	}
	return messages.BadRequest
}
