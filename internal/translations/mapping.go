package translations

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/JaimeStill/polyglot/pkg/query"
	"github.com/JaimeStill/polyglot/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "translations", "t").
	Project("id", "ID").
	Project("document_id", "DocumentID").
	Project("target_language", "TargetLanguage").
	Project("translated_text", "TranslatedText").
	Project("document_type", "DocumentType").
	Project("complexity_level", "ComplexityLevel").
	Project("technical_terms", "TechnicalTerms").
	Project("overall_quality", "OverallQuality").
	Project("accuracy", "Accuracy").
	Project("fluency", "Fluency").
	Project("style_preservation", "StylePreservation").
	Project("specific_issues", "SpecificIssues").
	Project("suggested_corrections", "SuggestedCorrections").
	Project("model_name", "ModelName").
	Project("provider_name", "ProviderName").
	Project("translated_at", "TranslatedAt").
	Project("approved_by", "ApprovedBy").
	Project("approved_at", "ApprovedAt")

var defaultSort = query.SortField{
	Field:      "TranslatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for translation queries.
// Nil fields are ignored. All fields use exact matching except
// OverallQuality, which matches translations at or below the given score.
type Filters struct {
	TargetLanguage  *string    `json:"target_language,omitempty"`
	DocumentID      *uuid.UUID `json:"document_id,omitempty"`
	ComplexityLevel *string    `json:"complexity_level,omitempty"`
	ApprovedBy      *string    `json:"approved_by,omitempty"`
	OverallQuality  *int       `json:"overall_quality,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("TargetLanguage", f.TargetLanguage).
		WhereEquals("DocumentID", f.DocumentID).
		WhereEquals("ComplexityLevel", f.ComplexityLevel).
		WhereEquals("ApprovedBy", f.ApprovedBy).
		WhereAtMost("OverallQuality", f.OverallQuality)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("target_language"); t != "" {
		f.TargetLanguage = &t
	}

	if d := values.Get("document_id"); d != "" {
		if id, err := uuid.Parse(d); err == nil {
			f.DocumentID = &id
		}
	}

	if c := values.Get("complexity_level"); c != "" {
		f.ComplexityLevel = &c
	}

	if a := values.Get("approved_by"); a != "" {
		f.ApprovedBy = &a
	}

	if q := values.Get("overall_quality"); q != "" {
		if v, err := strconv.Atoi(q); err == nil {
			f.OverallQuality = &v
		}
	}

	return f
}

func scanTranslation(s repository.Scanner) (Translation, error) {
	var t Translation
	var termsRaw, issuesRaw, correctionsRaw []byte

	err := s.Scan(
		&t.ID,
		&t.DocumentID,
		&t.TargetLanguage,
		&t.TranslatedText,
		&t.DocumentType,
		&t.ComplexityLevel,
		&termsRaw,
		&t.OverallQuality,
		&t.Accuracy,
		&t.Fluency,
		&t.StylePreservation,
		&issuesRaw,
		&correctionsRaw,
		&t.ModelName,
		&t.ProviderName,
		&t.TranslatedAt,
		&t.ApprovedBy,
		&t.ApprovedAt,
	)

	if err != nil {
		return t, err
	}

	if err := unmarshalList(termsRaw, &t.TechnicalTerms, "technical_terms"); err != nil {
		return t, err
	}

	if err := unmarshalList(issuesRaw, &t.SpecificIssues, "specific_issues"); err != nil {
		return t, err
	}

	if err := unmarshalList(correctionsRaw, &t.SuggestedCorrections, "suggested_corrections"); err != nil {
		return t, err
	}

	return t, nil
}

func unmarshalList(raw []byte, target *[]string, column string) error {
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, target); err != nil {
			return fmt.Errorf("unmarshal %s: %w", column, err)
		}
	}

	if *target == nil {
		*target = []string{}
	}

	return nil
}
