package translations

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/polyglot/internal/workflow"
	"github.com/JaimeStill/polyglot/pkg/pagination"
)

// System defines the public contract for translation domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Translation], error)

	Find(ctx context.Context, id uuid.UUID) (*Translation, error)
	FindByDocument(ctx context.Context, documentID uuid.UUID) (*Translation, error)

	// Translate runs the full pipeline against a document's text content and
	// persists the result, transitioning the document into review status.
	Translate(ctx context.Context, documentID uuid.UUID, cmd TranslateCommand) (*Translation, error)

	// TranslateText runs the full pipeline against raw text without persistence.
	TranslateText(ctx context.Context, cmd TranslateTextCommand) (*workflow.Result, error)

	Approve(ctx context.Context, id uuid.UUID, cmd ApproveCommand) (*Translation, error)
	Correct(ctx context.Context, id uuid.UUID, cmd CorrectCommand) (*Translation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
