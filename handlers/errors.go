package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"quoteportal/services"
)

// writeServiceErr maps service errors onto HTTP responses. Unrecognized
// errors are logged and reported as a generic 500.
func writeServiceErr(e *core.RequestEvent, err error) error {
	var transitionErr *services.InvalidTransitionError
	var fault *services.ComputationFault

	switch {
	case errors.Is(err, services.ErrValidation):
		return e.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	case errors.Is(err, services.ErrTemplateNotFound),
		errors.Is(err, services.ErrNotFound):
		return e.JSON(http.StatusNotFound, map[string]any{"error": err.Error()})
	case errors.As(err, &transitionErr):
		return e.JSON(http.StatusConflict, map[string]any{
			"error": transitionErr.Error(),
			"from":  string(transitionErr.From),
			"to":    string(transitionErr.To),
		})
	case errors.As(err, &fault):
		return e.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error": fault.Error(),
			"total": fault.Total,
		})
	default:
		log.Printf("handlers: internal error: %v", err)
		return e.JSON(http.StatusInternalServerError, map[string]any{"error": "internal server error"})
	}
}
