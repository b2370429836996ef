package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/polyglot/internal/prompts"
	"github.com/JaimeStill/polyglot/pkg/formatting"
)

// Documents longer than sampleThreshold are reviewed by sampling the
// beginning, middle, and end rather than the full text.
const (
	sampleThreshold = 3000
	sampleSize      = 1000
)

// ReviewNode returns a state node that scores the translation against its
// source for accuracy, fluency, and style preservation. A response that is
// not valid JSON is retained raw; an unparsed review never triggers the
// refine stage.
func ReviewNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		ts, err := extractTransState(s)
		if err != nil {
			return s, stageErr(prompts.StageReview, err)
		}

		if strings.TrimSpace(ts.OriginalText) == "" ||
			strings.TrimSpace(ts.TranslatedText) == "" {
			return s, stageErr(prompts.StageReview, ErrMissingTranslation)
		}

		review, err := reviewTranslation(ctx, rt, ts)
		if err != nil {
			return s, stageErr(prompts.StageReview, err)
		}

		ts.Review = review

		rt.Logger.InfoContext(
			ctx, "review node complete",
			"overall_quality", review.OverallQuality,
			"issues", len(review.SpecificIssues),
		)

		s = s.Set(KeyTransState, *ts)
		return s, nil
	})
}

func reviewTranslation(ctx context.Context, rt *Runtime, ts *TranslationState) (*Review, error) {
	base, err := ComposePrompt(ctx, rt.Prompts, prompts.StageReview)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReviewFailed, err)
	}

	var sb strings.Builder
	sb.WriteString(base)
	appendSection(&sb, "TARGET LANGUAGE", ts.TargetLanguage)

	if len(ts.OriginalText) > sampleThreshold {
		orig := sampleText(ts.OriginalText)
		trans := sampleText(ts.TranslatedText)

		appendSection(&sb, "ORIGINAL TEXT (BEGINNING)", orig[0])
		appendSection(&sb, "ORIGINAL TEXT (MIDDLE)", orig[1])
		appendSection(&sb, "ORIGINAL TEXT (END)", orig[2])
		appendSection(&sb, "TRANSLATION (BEGINNING)", trans[0])
		appendSection(&sb, "TRANSLATION (MIDDLE)", trans[1])
		appendSection(&sb, "TRANSLATION (END)", trans[2])
	} else {
		appendSection(&sb, "ORIGINAL TEXT", ts.OriginalText)
		appendSection(&sb, "TRANSLATION", ts.TranslatedText)
	}

	a, err := rt.Agents()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReviewFailed, err)
	}

	content, err := a.Chat(ctx, sb.String())
	if err != nil {
		return nil, fmt.Errorf("%w: chat call: %w", ErrReviewFailed, err)
	}

	parsed, err := formatting.Parse[Review](content)
	if err != nil {
		return &Review{Raw: content}, nil
	}

	return &parsed, nil
}

// sampleText extracts the beginning, middle, and end of a text. Texts shorter
// than a full sample window return overlapping slices rather than failing.
func sampleText(text string) [3]string {
	if len(text) <= sampleSize {
		return [3]string{text, text, text}
	}

	mid := len(text) / 2
	half := sampleSize / 2

	start := runeFloor(text, max(mid-half, 0))
	end := runeFloor(text, min(mid+half, len(text)))

	return [3]string{
		text[:runeFloor(text, sampleSize)],
		text[start:end],
		text[runeFloor(text, len(text)-sampleSize):],
	}
}
