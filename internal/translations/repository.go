package translations

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/JaimeStill/polyglot/internal/documents"
	"github.com/JaimeStill/polyglot/internal/languages"
	"github.com/JaimeStill/polyglot/internal/prompts"
	"github.com/JaimeStill/polyglot/internal/workflow"
	"github.com/JaimeStill/polyglot/pkg/pagination"
	"github.com/JaimeStill/polyglot/pkg/query"
	"github.com/JaimeStill/polyglot/pkg/repository"
)

// Options carries pipeline tuning parameters sourced from configuration.
type Options struct {
	DefaultTargetLanguage string
	QualityThreshold      int
	MaxAnalysisChars      int
}

type repo struct {
	db           *sql.DB
	rt           *workflow.Runtime
	docs         documents.System
	langs        languages.System
	logger       *slog.Logger
	pagination   pagination.Config
	modelName    string
	providerName string
}

// New creates a translation repository implementing the System interface.
// It internally constructs the pipeline runtime from the provided dependencies.
func New(
	db *sql.DB,
	agent gaconfig.AgentConfig,
	logger *slog.Logger,
	pagination pagination.Config,
	docs documents.System,
	langs languages.System,
	prompts prompts.System,
	opts Options,
) System {
	var modelName, providerName string
	if agent.Client != nil && agent.Client.Provider != nil {
		providerName = agent.Client.Provider.Name
		if agent.Client.Provider.Model != nil {
			modelName = agent.Client.Provider.Model.Name
		}
	}

	rt := &workflow.Runtime{
		Agents:                workflow.NewAgentFactory(agent),
		Prompts:               prompts,
		DefaultTargetLanguage: opts.DefaultTargetLanguage,
		QualityThreshold:      opts.QualityThreshold,
		MaxAnalysisChars:      opts.MaxAnalysisChars,
		Logger:                logger.With("workflow", "translate"),
	}
	return &repo{
		db:           db,
		rt:           rt,
		docs:         docs,
		langs:        langs,
		logger:       logger.With("system", "translations"),
		pagination:   pagination,
		modelName:    modelName,
		providerName: providerName,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Translation], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "TargetLanguage", "TranslatedText")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count translations: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanTranslation)
	if err != nil {
		return nil, fmt.Errorf("query translations: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Translation, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	t, err := repository.QueryOne(ctx, r.db, q, args, scanTranslation)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func (r *repo) FindByDocument(ctx context.Context, documentID uuid.UUID) (*Translation, error) {
	q, args := query.NewBuilder(projection).BuildSingle("DocumentID", documentID)

	t, err := repository.QueryOne(ctx, r.db, q, args, scanTranslation)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func (r *repo) Translate(ctx context.Context, documentID uuid.UUID, cmd TranslateCommand) (*Translation, error) {
	content, err := r.docs.Content(ctx, documentID)
	if err != nil {
		return nil, err
	}

	result, err := workflow.Execute(ctx, r.rt, content, r.resolveTarget(cmd.TargetLanguage))
	if err != nil {
		return nil, fmt.Errorf("translate document %s: %w", documentID, err)
	}

	termsJSON, err := json.Marshal(emptyIfNil(result.Analysis.TechnicalTerminology))
	if err != nil {
		return nil, fmt.Errorf("marshal technical terms: %w", err)
	}

	issuesJSON, err := json.Marshal(emptyIfNil(result.Review.SpecificIssues))
	if err != nil {
		return nil, fmt.Errorf("marshal specific issues: %w", err)
	}

	correctionsJSON, err := json.Marshal(emptyIfNil(result.Review.SuggestedCorrections))
	if err != nil {
		return nil, fmt.Errorf("marshal suggested corrections: %w", err)
	}

	upsertQ := `
		INSERT INTO translations(
			document_id, target_language, translated_text, document_type,
			complexity_level, technical_terms, overall_quality, accuracy,
			fluency, style_preservation, specific_issues, suggested_corrections,
			model_name, provider_name
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (document_id) DO UPDATE SET
			target_language = EXCLUDED.target_language,
			translated_text = EXCLUDED.translated_text,
			document_type = EXCLUDED.document_type,
			complexity_level = EXCLUDED.complexity_level,
			technical_terms = EXCLUDED.technical_terms,
			overall_quality = EXCLUDED.overall_quality,
			accuracy = EXCLUDED.accuracy,
			fluency = EXCLUDED.fluency,
			style_preservation = EXCLUDED.style_preservation,
			specific_issues = EXCLUDED.specific_issues,
			suggested_corrections = EXCLUDED.suggested_corrections,
			translated_at = NOW(),
			model_name = EXCLUDED.model_name,
			provider_name = EXCLUDED.provider_name,
			approved_by = NULL,
			approved_at = NULL
		RETURNING id, document_id, target_language, translated_text, document_type,
				  complexity_level, technical_terms, overall_quality, accuracy,
				  fluency, style_preservation, specific_issues, suggested_corrections,
				  model_name, provider_name, translated_at, approved_by, approved_at`

	upsertArgs := []any{
		documentID,
		result.TargetLanguage,
		result.TranslatedText,
		result.Analysis.DocumentType,
		result.Analysis.ComplexityLevel,
		termsJSON,
		int(result.Review.OverallQuality),
		int(result.Review.Accuracy),
		int(result.Review.Fluency),
		int(result.Review.StylePreservation),
		issuesJSON,
		correctionsJSON,
		r.modelName,
		r.providerName,
	}

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Translation, error) {
		tr, err := repository.QueryOne(ctx, tx, upsertQ, upsertArgs, scanTranslation)
		if err != nil {
			return Translation{}, fmt.Errorf("upsert translation: %w", err)
		}

		if err := repository.ExecExpectOne(
			ctx, tx,
			"UPDATE documents SET status = 'review', updated_at = NOW() WHERE id = $1",
			documentID,
		); err != nil {
			return Translation{}, fmt.Errorf("update document status: %w", err)
		}

		return tr, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document translated",
		"id", t.ID,
		"document_id", documentID,
		"target_language", t.TargetLanguage,
		"overall_quality", t.OverallQuality,
	)
	return &t, nil
}

func (r *repo) TranslateText(ctx context.Context, cmd TranslateTextCommand) (*workflow.Result, error) {
	if strings.TrimSpace(cmd.Content) == "" {
		return nil, ErrEmptyContent
	}

	result, err := workflow.Execute(ctx, r.rt, cmd.Content, r.resolveTarget(cmd.TargetLanguage))
	if err != nil {
		return nil, err
	}

	r.logger.Info("text translated",
		"target_language", result.TargetLanguage,
		"translated_chars", len(result.TranslatedText),
	)
	return result, nil
}

func (r *repo) Approve(ctx context.Context, id uuid.UUID, cmd ApproveCommand) (*Translation, error) {
	approveQ := `
		UPDATE translations
		SET approved_by = $1, approved_at = NOW()
		WHERE id = $2
		RETURNING id, document_id, target_language, translated_text, document_type,
				  complexity_level, technical_terms, overall_quality, accuracy,
				  fluency, style_preservation, specific_issues, suggested_corrections,
				  model_name, provider_name, translated_at, approved_by, approved_at`

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Translation, error) {
		tr, err := repository.QueryOne(ctx, tx, approveQ, []any{cmd.ApprovedBy, id}, scanTranslation)
		if err != nil {
			return Translation{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}

		if err := repository.ExecExpectOne(
			ctx, tx,
			"UPDATE documents SET status = 'complete', updated_at = NOW() WHERE id = $1 AND status = 'review'",
			tr.DocumentID,
		); err != nil {
			return Translation{}, ErrInvalidStatus
		}

		return tr, nil
	})

	if err != nil {
		return nil, err
	}

	r.logger.Info("translation approved",
		"id", t.ID,
		"approved_by", t.ApprovedBy,
	)
	return &t, nil
}

func (r *repo) Correct(ctx context.Context, id uuid.UUID, cmd CorrectCommand) (*Translation, error) {
	correctQ := `
		UPDATE translations
		SET translated_text = $1, approved_by = $2, approved_at = NOW()
		WHERE id = $3
		RETURNING id, document_id, target_language, translated_text, document_type,
				  complexity_level, technical_terms, overall_quality, accuracy,
				  fluency, style_preservation, specific_issues, suggested_corrections,
				  model_name, provider_name, translated_at, approved_by, approved_at`

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Translation, error) {
		tr, err := repository.QueryOne(ctx, tx, correctQ,
			[]any{cmd.TranslatedText, cmd.CorrectedBy, id},
			scanTranslation,
		)
		if err != nil {
			return Translation{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}

		if err := repository.ExecExpectOne(
			ctx, tx,
			"UPDATE documents SET status = 'complete', updated_at = NOW() WHERE id = $1 AND status = 'review'",
			tr.DocumentID,
		); err != nil {
			return Translation{}, ErrInvalidStatus
		}

		return tr, nil
	})

	if err != nil {
		return nil, err
	}

	r.logger.Info("translation corrected",
		"id", t.ID,
		"corrected_by", cmd.CorrectedBy,
	)
	return &t, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM translations WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("translation deleted", "id", id)
	return nil
}

// resolveTarget canonicalizes a target language through the registry
// when it matches a known code or display name. Unrecognized values
// pass through unchanged so free-form targets keep working.
func (r *repo) resolveTarget(target string) string {
	if target == "" {
		return target
	}
	if l, err := r.langs.Resolve(target); err == nil {
		return l.Name
	}
	return target
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
