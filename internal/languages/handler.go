package languages

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/polyglot/pkg/handlers"
	"github.com/JaimeStill/polyglot/pkg/routes"
)

// Handler provides HTTP endpoints for the language registry.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "languages"),
	}
}

// Routes returns the route group definition for language endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/languages",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/resolve", Handler: h.Resolve},
			{Method: "GET", Pattern: "/{code}", Handler: h.Find},
		},
	}
}

// List returns every supported translation target.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.List())
}

// Find returns a single language by its BCP 47 code path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	l, err := h.sys.Find(r.PathValue("code"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, l)
}

// Resolve matches the value query parameter against language codes and
// display names, returning the canonical entry.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	l, err := h.sys.Resolve(r.URL.Query().Get("value"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, l)
}
