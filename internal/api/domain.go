package api

import (
	"github.com/JaimeStill/polyglot/internal/documents"
	"github.com/JaimeStill/polyglot/internal/languages"
	"github.com/JaimeStill/polyglot/internal/prompts"
	"github.com/JaimeStill/polyglot/internal/translations"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Documents    documents.System
	Languages    languages.System
	Prompts      prompts.System
	Translations translations.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	docsSystem := documents.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	langsSystem := languages.New(runtime.Logger)

	promptsSystem := prompts.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	translationsSystem := translations.New(
		runtime.Database.Connection(),
		runtime.Agent,
		runtime.Logger,
		runtime.Pagination,
		docsSystem,
		langsSystem,
		promptsSystem,
		runtime.Workflow,
	)

	return &Domain{
		Documents:    docsSystem,
		Languages:    langsSystem,
		Prompts:      promptsSystem,
		Translations: translationsSystem,
	}
}
