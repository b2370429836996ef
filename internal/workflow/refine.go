package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/polyglot/internal/prompts"
)

// RefineNode returns a state node that re-translates the document using the
// issues and corrections identified by the review stage. The graph routes to
// this node only when the review scored below the quality threshold and
// produced actionable corrections.
func RefineNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		ts, err := extractTransState(s)
		if err != nil {
			return s, stageErr(prompts.StageRefine, err)
		}

		if ts.Review == nil {
			return s, stageErr(prompts.StageRefine, fmt.Errorf("%w: no review in state", ErrRefineFailed))
		}

		corrected, err := refineTranslation(ctx, rt, ts)
		if err != nil {
			return s, stageErr(prompts.StageRefine, err)
		}

		ts.TranslatedText = corrected

		rt.Logger.InfoContext(
			ctx, "refine node complete",
			"corrections_applied", len(ts.Review.SuggestedCorrections),
		)

		s = s.Set(KeyTransState, *ts)
		return s, nil
	})
}

func refineTranslation(ctx context.Context, rt *Runtime, ts *TranslationState) (string, error) {
	base, err := ComposePrompt(ctx, rt.Prompts, prompts.StageRefine)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRefineFailed, err)
	}

	var sb strings.Builder
	sb.WriteString(base)
	appendSection(&sb, "TARGET LANGUAGE", ts.TargetLanguage)
	appendSection(&sb, "ORIGINAL TEXT", ts.OriginalText)
	appendSection(&sb, "CURRENT TRANSLATION", ts.TranslatedText)

	if err := appendJSON(&sb, "ISSUES IDENTIFIED", ts.Review.SpecificIssues); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRefineFailed, err)
	}

	if err := appendJSON(&sb, "SUGGESTED CORRECTIONS", ts.Review.SuggestedCorrections); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRefineFailed, err)
	}

	a, err := rt.Agents()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRefineFailed, err)
	}

	content, err := a.Chat(ctx, sb.String())
	if err != nil {
		return "", fmt.Errorf("%w: chat call: %w", ErrRefineFailed, err)
	}

	return strings.TrimSpace(content), nil
}
