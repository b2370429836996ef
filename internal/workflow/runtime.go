package workflow

import (
	"log/slog"

	"github.com/JaimeStill/polyglot/internal/prompts"
)

// Runtime bundles the dependencies that pipeline nodes require.
// It is constructed by higher-level composition code from Infrastructure and Domain systems.
type Runtime struct {
	Agents                AgentFactory
	Prompts               prompts.System
	DefaultTargetLanguage string
	QualityThreshold      int
	MaxAnalysisChars      int
	Logger                *slog.Logger
}
