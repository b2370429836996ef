package api

import (
	"net/http"

	"github.com/JaimeStill/polyglot/internal/config"
	"github.com/JaimeStill/polyglot/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	storage := newStorageHandler(
		runtime.Storage,
		runtime.Logger,
		cfg.Storage.MaxListSize,
	)

	routes.Register(
		mux,
		domain.Documents.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Languages.Handler().Routes(),
		domain.Prompts.Handler().Routes(),
		domain.Translations.Handler().Routes(),
		storage.routes(),
	)
}
