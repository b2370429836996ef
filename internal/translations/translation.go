// Package translations implements the translation domain for Polyglot.
// It provides types, data access, and business logic for storing, querying,
// approving, and correcting translation results produced by the pipeline engine.
package translations

import (
	"time"

	"github.com/google/uuid"
)

// Translation represents a stored translation result for a document.
// It mirrors the translations table schema with flattened pipeline metadata.
type Translation struct {
	ID                   uuid.UUID  `json:"id"`
	DocumentID           uuid.UUID  `json:"document_id"`
	TargetLanguage       string     `json:"target_language"`
	TranslatedText       string     `json:"translated_text"`
	DocumentType         string     `json:"document_type"`
	ComplexityLevel      string     `json:"complexity_level"`
	TechnicalTerms       []string   `json:"technical_terms"`
	OverallQuality       int        `json:"overall_quality"`
	Accuracy             int        `json:"accuracy"`
	Fluency              int        `json:"fluency"`
	StylePreservation    int        `json:"style_preservation"`
	SpecificIssues       []string   `json:"specific_issues"`
	SuggestedCorrections []string   `json:"suggested_corrections"`
	ModelName            string     `json:"model_name"`
	ProviderName         string     `json:"provider_name"`
	TranslatedAt         time.Time  `json:"translated_at"`
	ApprovedBy           *string    `json:"approved_by"`
	ApprovedAt           *time.Time `json:"approved_at"`
}

// TranslateCommand carries optional parameters for a document translation.
// An empty TargetLanguage falls back to the configured default.
type TranslateCommand struct {
	TargetLanguage string `json:"target_language"`
}

// TranslateTextCommand carries raw text for an ad-hoc pipeline run.
// Results are returned directly and never persisted.
type TranslateTextCommand struct {
	Content        string `json:"content"`
	TargetLanguage string `json:"target_language"`
}

// ApproveCommand carries the data needed to approve a translation.
// ApprovedBy identifies the human who confirmed the AI translation.
type ApproveCommand struct {
	ApprovedBy string `json:"approved_by"`
}

// CorrectCommand carries the data needed to manually correct a translation.
// TranslatedText overwrites the AI-produced text. CorrectedBy identifies the
// human who made the correction (stored as approved_by).
type CorrectCommand struct {
	TranslatedText string `json:"translated_text"`
	CorrectedBy    string `json:"corrected_by"`
}
