package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/polyglot/internal/prompts"
)

// EnhanceNode returns a state node that refines the reviewed translation for
// tone, style, and regional conventions of the target language. Its output is
// the pipeline's final translated text.
func EnhanceNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		ts, err := extractTransState(s)
		if err != nil {
			return s, stageErr(prompts.StageEnhance, err)
		}

		if strings.TrimSpace(ts.TranslatedText) == "" {
			return s, stageErr(prompts.StageEnhance, ErrMissingTranslation)
		}

		enhanced, err := enhanceTranslation(ctx, rt, ts)
		if err != nil {
			return s, stageErr(prompts.StageEnhance, err)
		}

		ts.EnhancedText = enhanced

		rt.Logger.InfoContext(
			ctx, "enhance node complete",
			"target_language", ts.TargetLanguage,
			"enhanced_chars", len(enhanced),
		)

		s = s.Set(KeyTransState, *ts)
		return s, nil
	})
}

func enhanceTranslation(ctx context.Context, rt *Runtime, ts *TranslationState) (string, error) {
	base, err := ComposePrompt(ctx, rt.Prompts, prompts.StageEnhance)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEnhanceFailed, err)
	}

	var sb strings.Builder
	sb.WriteString(base)
	appendSection(&sb, "TARGET LANGUAGE", ts.TargetLanguage)
	appendSection(&sb, "ORIGINAL TEXT", ts.OriginalText)
	appendSection(&sb, "CURRENT TRANSLATION", ts.TranslatedText)

	a, err := rt.Agents()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEnhanceFailed, err)
	}

	content, err := a.Chat(ctx, sb.String())
	if err != nil {
		return "", fmt.Errorf("%w: chat call: %w", ErrEnhanceFailed, err)
	}

	return strings.TrimSpace(content), nil
}
