package config

import (
	"fmt"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

const (
	EnvAgentProviderName = "POLYGLOT_AGENT_PROVIDER_NAME"
	EnvAgentBaseURL      = "POLYGLOT_AGENT_BASE_URL"
	EnvAgentToken        = "POLYGLOT_AGENT_TOKEN"
	EnvAgentDeployment   = "POLYGLOT_AGENT_DEPLOYMENT"
	EnvAgentAPIVersion   = "POLYGLOT_AGENT_API_VERSION"
	EnvAgentAuthType     = "POLYGLOT_AGENT_AUTH_TYPE"
	EnvAgentModelName    = "POLYGLOT_AGENT_MODEL_NAME"
)

// FinalizeAgent applies the three-phase finalize pattern to a go-agents AgentConfig:
// defaults from go-agents DefaultAgentConfig, environment variable overrides, and validation.
func FinalizeAgent(c *gaconfig.AgentConfig) error {
	loadAgentDefaults(c)
	loadAgentEnv(c)
	return validateAgent(c)
}

func loadAgentDefaults(c *gaconfig.AgentConfig) {
	defaults := gaconfig.DefaultAgentConfig()
	defaults.Merge(c)
	*c = defaults
}

func loadAgentEnv(c *gaconfig.AgentConfig) {
	if c.Client == nil {
		c.Client = gaconfig.DefaultClientConfig()
	}
	provider := c.Client.Provider
	if provider == nil {
		provider = gaconfig.DefaultProviderConfig()
		c.Client.Provider = provider
	}
	if provider.Options == nil {
		provider.Options = make(map[string]any)
	}
	if provider.Model == nil {
		provider.Model = gaconfig.DefaultModelConfig()
	}

	if v := os.Getenv(EnvAgentProviderName); v != "" {
		provider.Name = v
	}
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		provider.BaseURL = v
	}
	if v := os.Getenv(EnvAgentModelName); v != "" {
		provider.Model.Name = v
	}

	setOption := func(envVar, key string) {
		if v := os.Getenv(envVar); v != "" {
			provider.Options[key] = v
		}
	}

	setOption(EnvAgentToken, "token")
	setOption(EnvAgentDeployment, "deployment")
	setOption(EnvAgentAPIVersion, "api_version")
	setOption(EnvAgentAuthType, "auth_type")
}

func validateAgent(c *gaconfig.AgentConfig) error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.Client == nil || c.Client.Provider == nil {
		return fmt.Errorf("provider required")
	}
	if c.Client.Provider.Name == "" {
		return fmt.Errorf("provider name required")
	}
	if c.Client.Provider.Model == nil {
		return fmt.Errorf("model required")
	}
	return nil
}
