package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Agent is the minimal inference surface pipeline nodes require.
type Agent interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// AgentFactory creates a fresh Agent for each inference call.
// Nodes never share agent instances across calls.
type AgentFactory func() (Agent, error)

// NewAgentFactory returns a factory producing go-agents backed agents
// from the given configuration.
func NewAgentFactory(cfg gaconfig.AgentConfig) AgentFactory {
	return func() (Agent, error) {
		a, err := agent.New(&cfg)
		if err != nil {
			return nil, fmt.Errorf("create agent: %w", err)
		}
		return chatAgent{a}, nil
	}
}

type chatAgent struct {
	agent agent.Agent
}

func (c chatAgent) Chat(ctx context.Context, prompt string) (string, error) {
	resp, err := c.agent.Chat(ctx, prompt)
	if err != nil {
		return "", err
	}
	return resp.Content(), nil
}
