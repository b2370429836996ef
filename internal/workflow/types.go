package workflow

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

const KeyTransState = "translation_state"

// Score is a 1-10 quality assessment. Models occasionally return scores
// as quoted strings, so unmarshaling accepts both forms.
type Score int

// UnmarshalJSON supports unmarshaling from a JSON number or a numeric string.
func (s *Score) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*s = Score(n)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		*s = 0
		return nil
	}

	*s = Score(n)
	return nil
}

// Analysis holds the structural assessment of a document produced by the
// analyze stage. Raw carries the unparsed model response when the response
// was not valid JSON; the pipeline proceeds with default guidance in that case.
type Analysis struct {
	DocumentType         string   `json:"document_type"`
	ContentSections      []string `json:"content_sections"`
	FormattingElements   []string `json:"formatting_elements"`
	TechnicalTerminology []string `json:"technical_terminology"`
	ComplexityLevel      string   `json:"complexity_level"`
	Raw                  string   `json:"raw_response,omitempty"`
}

// Review holds the quality assessment of a translation produced by the
// review stage. Raw carries the unparsed model response when the response
// was not valid JSON; an unparsed review never triggers refinement.
type Review struct {
	OverallQuality       Score    `json:"overall_quality"`
	Accuracy             Score    `json:"accuracy"`
	Fluency              Score    `json:"fluency"`
	StylePreservation    Score    `json:"style_preservation"`
	SpecificIssues       []string `json:"specific_issues"`
	SuggestedCorrections []string `json:"suggested_corrections"`
	Raw                  string   `json:"raw_response,omitempty"`
}

// TranslationState holds the running pipeline state accumulated across stages.
type TranslationState struct {
	OriginalText   string    `json:"original_text"`
	TargetLanguage string    `json:"target_language"`
	Analysis       *Analysis `json:"document_analysis,omitempty"`
	TranslatedText string    `json:"translated_text"`
	Review         *Review   `json:"quality_review,omitempty"`
	EnhancedText   string    `json:"enhanced_text"`
}

// NeedsRefine reports whether the review scored the translation below the
// quality threshold and produced actionable corrections.
func (s *TranslationState) NeedsRefine(threshold int) bool {
	return s.Review != nil &&
		int(s.Review.OverallQuality) < threshold &&
		len(s.Review.SuggestedCorrections) > 0
}

// Result is the final output from a translation pipeline execution.
// TranslatedText carries the enhanced translation.
type Result struct {
	OriginalText   string    `json:"original_text"`
	TranslatedText string    `json:"translated_text"`
	TargetLanguage string    `json:"target_language"`
	Analysis       Analysis  `json:"document_analysis"`
	Review         Review    `json:"quality_review"`
	CompletedAt    time.Time `json:"completed_at"`
}
