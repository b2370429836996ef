package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/polyglot/internal/prompts"
)

// TranslateNode returns a state node that translates the full document into
// the target language. The analysis from the prior stage is serialized into
// the prompt so the model can specialize for the document's register and
// preserve flagged terminology.
func TranslateNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		ts, err := extractTransState(s)
		if err != nil {
			return s, stageErr(prompts.StageTranslate, err)
		}

		if strings.TrimSpace(ts.OriginalText) == "" {
			return s, stageErr(prompts.StageTranslate, ErrNoContent)
		}

		translated, err := translateDocument(ctx, rt, ts)
		if err != nil {
			return s, stageErr(prompts.StageTranslate, err)
		}

		ts.TranslatedText = translated

		rt.Logger.InfoContext(
			ctx, "translate node complete",
			"target_language", ts.TargetLanguage,
			"translated_chars", len(translated),
		)

		s = s.Set(KeyTransState, *ts)
		return s, nil
	})
}

func translateDocument(ctx context.Context, rt *Runtime, ts *TranslationState) (string, error) {
	base, err := ComposePrompt(ctx, rt.Prompts, prompts.StageTranslate)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranslateFailed, err)
	}

	var sb strings.Builder
	sb.WriteString(base)
	appendSection(&sb, "TARGET LANGUAGE", ts.TargetLanguage)

	if ts.Analysis != nil {
		if err := appendJSON(&sb, "DOCUMENT ANALYSIS", ts.Analysis); err != nil {
			return "", fmt.Errorf("%w: %w", ErrTranslateFailed, err)
		}

		if len(ts.Analysis.TechnicalTerminology) > 0 {
			appendSection(
				&sb,
				"TECHNICAL TERMS TO PRESERVE OR HANDLE WITH CARE",
				strings.Join(ts.Analysis.TechnicalTerminology, "\n"),
			)
		}
	}

	appendSection(&sb, "TEXT TO TRANSLATE", ts.OriginalText)

	a, err := rt.Agents()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranslateFailed, err)
	}

	content, err := a.Chat(ctx, sb.String())
	if err != nil {
		return "", fmt.Errorf("%w: chat call: %w", ErrTranslateFailed, err)
	}

	return strings.TrimSpace(content), nil
}
