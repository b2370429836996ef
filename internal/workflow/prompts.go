package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JaimeStill/polyglot/internal/prompts"
)

// ComposePrompt builds the base prompt for a pipeline stage by combining
// tunable instructions with the stage's immutable output specification.
// Nodes append their stage-specific content sections to the result.
func ComposePrompt(
	ctx context.Context,
	ps prompts.System,
	stage prompts.Stage,
) (string, error) {
	instructions, err := ps.Instructions(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", stage, err)
	}

	spec, err := ps.Spec(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", stage, err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)

	return sb.String(), nil
}

func appendSection(sb *strings.Builder, heading, body string) {
	sb.WriteString("\n\n")
	sb.WriteString(heading)
	sb.WriteString(":\n")
	sb.WriteString(body)
}

func appendJSON(sb *strings.Builder, heading string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", heading, err)
	}

	appendSection(sb, heading, string(data))
	return nil
}
