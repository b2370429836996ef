package documents

import (
	"net/url"

	"github.com/JaimeStill/polyglot/pkg/query"
	"github.com/JaimeStill/polyglot/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "documents", "d").
	Project("id", "ID").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("page_count", "PageCount").
	Project("source_language", "SourceLanguage").
	Project("storage_key", "StorageKey").
	Project("status", "Status").
	Project("uploaded_at", "UploadedAt").
	Project("updated_at", "UpdatedAt").
	Join("public", "translations", "t", "LEFT JOIN", "d.id = t.document_id").
	Project("target_language", "TargetLanguage").
	Project("overall_quality", "OverallQuality").
	Project("translated_at", "TranslatedAt")

var defaultSort = query.SortField{
	Field:      "UploadedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for document queries.
// Nil fields are ignored. Status, ContentType, SourceLanguage, and
// TargetLanguage use exact matching. Filename and StorageKey use
// case-insensitive contains matching.
type Filters struct {
	Status         *string `json:"status,omitempty"`
	Filename       *string `json:"filename,omitempty"`
	ContentType    *string `json:"content_type,omitempty"`
	SourceLanguage *string `json:"source_language,omitempty"`
	StorageKey     *string `json:"storage_key,omitempty"`
	TargetLanguage *string `json:"target_language,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Status", f.Status).
		WhereContains("Filename", f.Filename).
		WhereEquals("ContentType", f.ContentType).
		WhereEquals("SourceLanguage", f.SourceLanguage).
		WhereContains("StorageKey", f.StorageKey).
		WhereEquals("TargetLanguage", f.TargetLanguage)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if fn := values.Get("filename"); fn != "" {
		f.Filename = &fn
	}

	if ct := values.Get("content_type"); ct != "" {
		f.ContentType = &ct
	}

	if sl := values.Get("source_language"); sl != "" {
		f.SourceLanguage = &sl
	}

	if sk := values.Get("storage_key"); sk != "" {
		f.StorageKey = &sk
	}

	if tl := values.Get("target_language"); tl != "" {
		f.TargetLanguage = &tl
	}

	return f
}

func scanDocument(s repository.Scanner) (Document, error) {
	var d Document
	err := s.Scan(
		&d.ID,
		&d.Filename,
		&d.ContentType,
		&d.SizeBytes,
		&d.PageCount,
		&d.SourceLanguage,
		&d.StorageKey,
		&d.Status,
		&d.UploadedAt,
		&d.UpdatedAt,
		&d.TargetLanguage,
		&d.OverallQuality,
		&d.TranslatedAt,
	)
	return d, err
}
