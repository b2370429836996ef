// Package documents implements the document domain for Polyglot.
// It provides types, data access, and business logic for document
// upload, text extraction, metadata management, and blob storage integration.
package documents

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded source document with its metadata and blob
// storage reference. The translation fields are populated from the latest
// translation joined onto the document, when one exists.
type Document struct {
	ID             uuid.UUID `json:"id"`
	Filename       string    `json:"filename"`
	ContentType    string    `json:"content_type"`
	SizeBytes      int64     `json:"size_bytes"`
	PageCount      *int      `json:"page_count"`
	SourceLanguage string    `json:"source_language"`
	StorageKey     string    `json:"storage_key"`
	Status         string    `json:"status"`
	UploadedAt     time.Time `json:"uploaded_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	TargetLanguage *string    `json:"target_language,omitempty"`
	OverallQuality *int       `json:"overall_quality,omitempty"`
	TranslatedAt   *time.Time `json:"translated_at,omitempty"`
}

// CreateCommand carries the data needed to upload and register a new document.
// Data holds the raw file bytes. TextContent is optional extracted text for
// translatable formats; PageCount is optional and extracted by the caller via
// pdfcpu. Nil values are stored as NULL.
type CreateCommand struct {
	Data           []byte
	Filename       string
	ContentType    string
	SourceLanguage string
	PageCount      *int
	TextContent    *string
}

// BatchResult reports the outcome of a single file within a batch upload.
// On success, Document is populated and Error is empty.
// On failure, Error describes the problem and Document is nil.
type BatchResult struct {
	Document *Document `json:"document,omitempty"`
	Filename string    `json:"filename"`
	Error    string    `json:"error,omitempty"`
}
