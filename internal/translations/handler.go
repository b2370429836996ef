package translations

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/polyglot/internal/workflow"
	"github.com/JaimeStill/polyglot/pkg/handlers"
	"github.com/JaimeStill/polyglot/pkg/pagination"
	"github.com/JaimeStill/polyglot/pkg/routes"
)

// Handler provides HTTP endpoints for translation operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// SearchRequest combines pagination and filter criteria for the search endpoint.
type SearchRequest struct {
	pagination.PageRequest
	Filters
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "translations"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for translation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/translations",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/document/{id}", Handler: h.FindByDocument},
			{Method: "POST", Pattern: "/search", Handler: h.Search},
			{Method: "POST", Pattern: "/text", Handler: h.TranslateText},
			{Method: "POST", Pattern: "/{documentId}", Handler: h.Translate},
			{Method: "POST", Pattern: "/{id}/approve", Handler: h.Approve},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Correct},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
		},
	}
}

// List returns a paginated list of translations with optional query parameter filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single translation by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	t, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, t)
}

// FindByDocument returns the translation associated with a document UUID path parameter.
func (h *Handler) FindByDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	t, err := h.sys.FindByDocument(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, t)
}

// Search accepts a JSON body with pagination and filter criteria and returns matching translations.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	req.PageRequest.Normalize(h.pagination)

	result, err := h.sys.List(r.Context(), req.PageRequest, req.Filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Translate executes the translation workflow for a document identified by the documentId
// path parameter and persists the result. Returns 201 with the translation on success.
func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	documentID, err := uuid.Parse(r.PathValue("documentId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	var cmd TranslateCommand
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
	}

	t, err := h.sys.Translate(r.Context(), documentID, cmd)
	if err != nil {
		h.respondPipelineError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, t)
}

// TranslateText executes the translation workflow against raw text from a
// TranslateTextCommand JSON body. The result is returned directly and never persisted.
func (h *Handler) TranslateText(w http.ResponseWriter, r *http.Request) {
	var cmd TranslateTextCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.TranslateText(r.Context(), cmd)
	if err != nil {
		h.respondPipelineError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Approve marks a translation as human-approved by decoding an ApproveCommand JSON body.
// Transitions the associated document status from review to complete.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	var cmd ApproveCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	t, err := h.sys.Approve(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, t)
}

// Correct manually overwrites a translation's text by decoding a CorrectCommand JSON body.
// Transitions the associated document status from review to complete.
func (h *Handler) Correct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	var cmd CorrectCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	t, err := h.sys.Correct(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, t)
}

// Delete removes a translation by its UUID path parameter.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// respondPipelineError writes the error payload for a failed workflow execution.
// When the failure originated inside a pipeline stage, the response names that stage
// so the caller knows how far the document progressed.
func (h *Handler) respondPipelineError(w http.ResponseWriter, err error) {
	status := MapHTTPStatus(err)

	if stage := workflow.FailedStage(err); stage != "" {
		h.logger.Error("pipeline request failed", "status", status, "stage", stage, "error", err)
		handlers.RespondJSON(w, status, map[string]string{
			"error": err.Error(),
			"stage": string(stage),
		})
		return
	}

	handlers.RespondError(w, h.logger, status, err)
}
