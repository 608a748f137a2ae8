package handler

import (
	"errors"
	"html"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campus-compass/campus-api/internal/api/metrics"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses that are not validation failures.
type errorResponse struct {
	Error string `json:"error"`
}

// validationErrorResponse carries the ordered field-error list for rejected
// input.
type validationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// respondBadRequest maps a bindRequest failure to a 400: rule failures render
// the full field-error list, anything else (malformed JSON, type mismatch) a
// generic envelope.
func respondBadRequest(c echo.Context, resource string, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		metrics.ValidationRejectionsTotal.WithLabelValues(resource).Inc()
		return c.JSON(http.StatusBadRequest, validationErrorResponse{Errors: ve.Errors})
	}
	return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
}

// cleanString normalizes one string field before validation: surrounding
// whitespace is dropped and HTML metacharacters are escaped.
func cleanString(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
