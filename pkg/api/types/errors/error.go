package errors

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// uniform error body of the API: {"OK": false, "error": <message>} .
type ErrorMessage struct {
	Reason string
	Cause  error
}

func (e ErrorMessage) String() string {
	parts := []string{e.Reason}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e ErrorMessage) Error() string {
	return e.String()
}

func (e ErrorMessage) Unwrap() error {
	return e.Cause
}

// implement encoding/json.Marshaller
func (e ErrorMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		OK    bool   `json:"OK"`
		Error string `json:"error"`
	}{OK: false, Error: e.String()})
}

type ErrorMessageOption func(in *ErrorMessage) *ErrorMessage

func WithError(err error) ErrorMessageOption {
	return func(in *ErrorMessage) *ErrorMessage {
		if err != nil {
			in.Cause = err
		}
		return in
	}
}

func NewErrorMessage(code int, reason string, opts ...ErrorMessageOption) *echo.HTTPError {
	msg := ErrorMessage{Reason: reason}
	for _, opt := range opts {
		msg = *opt(&msg)
	}

	return echo.NewHTTPError(code, msg).SetInternal(msg)
}

func BadRequest(reason string, err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusBadRequest,
		reason,
		WithError(err),
	)
}

func NotFound(reason string, err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusNotFound,
		reason,
		WithError(err),
	)
}

func InternalServerError(err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusInternalServerError,
		"unexpected error",
		WithError(err),
	)
}
