package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvWorkflowTargetLanguage   = "POLYGLOT_WORKFLOW_TARGET_LANGUAGE"
	EnvWorkflowQualityThreshold = "POLYGLOT_WORKFLOW_QUALITY_THRESHOLD"
	EnvWorkflowMaxAnalysisChars = "POLYGLOT_WORKFLOW_MAX_ANALYSIS_CHARS"
)

// WorkflowConfig holds translation pipeline parameters.
type WorkflowConfig struct {
	// TargetLanguage is used when a request does not name one.
	TargetLanguage string `toml:"target_language"`
	// QualityThreshold is the review score below which a corrective
	// re-translation pass runs, when the review suggests corrections.
	QualityThreshold int `toml:"quality_threshold"`
	// MaxAnalysisChars caps the document text sent to the analysis stage.
	MaxAnalysisChars int `toml:"max_analysis_chars"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *WorkflowConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *WorkflowConfig) Merge(overlay *WorkflowConfig) {
	if overlay.TargetLanguage != "" {
		c.TargetLanguage = overlay.TargetLanguage
	}
	if overlay.QualityThreshold != 0 {
		c.QualityThreshold = overlay.QualityThreshold
	}
	if overlay.MaxAnalysisChars != 0 {
		c.MaxAnalysisChars = overlay.MaxAnalysisChars
	}
}

func (c *WorkflowConfig) loadDefaults() {
	if c.TargetLanguage == "" {
		c.TargetLanguage = "French"
	}
	if c.QualityThreshold == 0 {
		c.QualityThreshold = 7
	}
	if c.MaxAnalysisChars == 0 {
		c.MaxAnalysisChars = 10000
	}
}

func (c *WorkflowConfig) loadEnv() {
	if v := os.Getenv(EnvWorkflowTargetLanguage); v != "" {
		c.TargetLanguage = v
	}
	if v := os.Getenv(EnvWorkflowQualityThreshold); v != "" {
		if threshold, err := strconv.Atoi(v); err == nil {
			c.QualityThreshold = threshold
		}
	}
	if v := os.Getenv(EnvWorkflowMaxAnalysisChars); v != "" {
		if chars, err := strconv.Atoi(v); err == nil {
			c.MaxAnalysisChars = chars
		}
	}
}

func (c *WorkflowConfig) validate() error {
	if c.QualityThreshold < 1 || c.QualityThreshold > 10 {
		return fmt.Errorf("invalid quality_threshold: %d", c.QualityThreshold)
	}
	if c.MaxAnalysisChars < 1 {
		return fmt.Errorf("invalid max_analysis_chars: %d", c.MaxAnalysisChars)
	}
	return nil
}
