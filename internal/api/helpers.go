package api

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v5"
)

// ResponseError is the shape of every error body this API returns,
// grounded on the reference client's internal/api ResponseError.
type ResponseError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"`
	Code    string `json:"code"`
}

func writeError(c *echo.Context, status int, errType, msg, param, code string) error {
	body, err := json.Marshal(map[string]any{
		"error": ResponseError{Type: errType, Message: msg, Param: param, Code: code},
	})
	if err != nil {
		return err
	}
	return c.JSONBlob(status, body)
}

func writeBadRequest(c *echo.Context, param, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request", msg, param, "bad_request")
}

func writeJSON(c *echo.Context, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.JSONBlob(status, body)
}
