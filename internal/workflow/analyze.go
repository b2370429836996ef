package workflow

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/polyglot/internal/prompts"
	"github.com/JaimeStill/polyglot/pkg/formatting"
)

// AnalyzeNode returns a state node that assesses document structure, register,
// and terminology ahead of translation. Analysis is bounded to the leading
// portion of the document; the full text still flows to later stages.
// A response that is not valid JSON does not fail the pipeline: the raw text
// is retained and translation proceeds with default guidance.
func AnalyzeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		ts, err := extractTransState(s)
		if err != nil {
			return s, stageErr(prompts.StageAnalyze, err)
		}

		if strings.TrimSpace(ts.OriginalText) == "" {
			return s, stageErr(prompts.StageAnalyze, ErrNoContent)
		}

		analysis, err := analyzeDocument(ctx, rt, ts)
		if err != nil {
			return s, stageErr(prompts.StageAnalyze, err)
		}

		ts.Analysis = analysis

		rt.Logger.InfoContext(
			ctx, "analyze node complete",
			"document_type", analysis.DocumentType,
			"complexity", analysis.ComplexityLevel,
		)

		s = s.Set(KeyTransState, *ts)
		return s, nil
	})
}

func extractTransState(s state.State) (*TranslationState, error) {
	val, ok := s.Get(KeyTransState)
	if !ok {
		return nil, fmt.Errorf("missing %s in state", KeyTransState)
	}

	ts, ok := val.(TranslationState)
	if !ok {
		return nil, fmt.Errorf("%s is not TranslationState", KeyTransState)
	}

	return &ts, nil
}

func analyzeDocument(ctx context.Context, rt *Runtime, ts *TranslationState) (*Analysis, error) {
	base, err := ComposePrompt(ctx, rt.Prompts, prompts.StageAnalyze)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalyzeFailed, err)
	}

	var sb strings.Builder
	sb.WriteString(base)
	appendSection(&sb, "DOCUMENT CONTENT", truncate(ts.OriginalText, rt.MaxAnalysisChars))

	a, err := rt.Agents()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalyzeFailed, err)
	}

	content, err := a.Chat(ctx, sb.String())
	if err != nil {
		return nil, fmt.Errorf("%w: chat call: %w", ErrAnalyzeFailed, err)
	}

	parsed, err := formatting.Parse[Analysis](content)
	if err != nil {
		return &Analysis{Raw: content}, nil
	}

	return &parsed, nil
}

func truncate(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	return text[:runeFloor(text, limit)]
}

// runeFloor backs a byte index up to the nearest rune boundary so slicing
// never splits a multibyte character.
func runeFloor(text string, i int) int {
	if i >= len(text) {
		return len(text)
	}
	for i > 0 && !utf8.RuneStart(text[i]) {
		i--
	}
	return i
}
