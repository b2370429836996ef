package translations

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/polyglot/internal/documents"
	"github.com/JaimeStill/polyglot/internal/workflow"
)

// Domain errors for translation operations.
var (
	ErrNotFound      = errors.New("translation not found")
	ErrDuplicate     = errors.New("translation already exists")
	ErrInvalidStatus = errors.New("document is not in review status")
	ErrEmptyContent  = errors.New("content required")
)

// MapHTTPStatus maps translation domain errors to appropriate HTTP status codes.
// Pipeline stage failures map to 502 since the failure originates in the
// upstream model call; missing or empty input maps to 400.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, documents.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidStatus) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrEmptyContent) ||
		errors.Is(err, workflow.ErrNoContent) ||
		errors.Is(err, workflow.ErrMissingTranslation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, documents.ErrNoTextContent) {
		return http.StatusUnprocessableEntity
	}
	if workflow.FailedStage(err) != "" {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
