package api

import (
	"github.com/JaimeStill/polyglot/internal/config"
	"github.com/JaimeStill/polyglot/internal/infrastructure"
	"github.com/JaimeStill/polyglot/internal/translations"
	"github.com/JaimeStill/polyglot/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Workflow   translations.Options
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Agent:     cfg.Agent,
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Pagination: cfg.API.Pagination,
		Workflow: translations.Options{
			DefaultTargetLanguage: cfg.Workflow.TargetLanguage,
			QualityThreshold:      cfg.Workflow.QualityThreshold,
			MaxAnalysisChars:      cfg.Workflow.MaxAnalysisChars,
		},
	}
}
