package documents

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/polyglot/pkg/pagination"
)

// System defines the public contract for document domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Document], error)

	Find(ctx context.Context, id uuid.UUID) (*Document, error)
	Create(ctx context.Context, cmd CreateCommand) (*Document, error)
	CreateBatch(ctx context.Context, cmds []CreateCommand) []BatchResult
	Delete(ctx context.Context, id uuid.UUID) error

	// Content returns the document's translatable text. Extracted text stored
	// at upload is preferred; text-typed blobs without stored text are read
	// from storage. Returns ErrNoTextContent for binary formats.
	Content(ctx context.Context, id uuid.UUID) (string, error)

	// SetStatus transitions a document's lifecycle status.
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}
