// Package workflow implements the translation pipeline for Polyglot.
// It provides foundational types, prompt composition, and response parsing
// used by the state graph (analyze → translate → review → refine? → enhance).
package workflow

import (
	"errors"
	"fmt"

	"github.com/JaimeStill/polyglot/internal/prompts"
)

// Sentinel errors for workflow operations.
var (
	ErrNoContent          = errors.New("no text content provided")
	ErrMissingTranslation = errors.New("missing original or translated text")
	ErrAnalyzeFailed      = errors.New("document analysis failed")
	ErrTranslateFailed    = errors.New("translation failed")
	ErrReviewFailed       = errors.New("quality review failed")
	ErrRefineFailed       = errors.New("refinement failed")
	ErrEnhanceFailed      = errors.New("enhancement failed")
)

// StageError records which pipeline stage an execution failed in.
type StageError struct {
	Stage prompts.Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage prompts.Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}

// FailedStage extracts the pipeline stage from an execution error.
// Returns an empty stage when the error did not originate in a stage node.
func FailedStage(err error) prompts.Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
