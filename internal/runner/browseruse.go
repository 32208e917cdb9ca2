package runner

import (
	"context"

	"github.com/nerdface-ai/browser-use-go/pkg/agent"
	"github.com/nerdface-ai/browser-use-go/pkg/browser"
)

// BrowserUse is the production Factory. It materializes the chat model from
// the run's model configuration and binds a browser-use agent to the task.
func BrowserUse(ctx context.Context, cfg Config) (Agent, error) {
	chatModel, err := cfg.Model.ChatModel(ctx)
	if err != nil {
		return nil, err
	}
	ag := agent.NewAgent(cfg.Task, chatModel,
		agent.WithAgentSettings(agent.AgentSettingsConfig{
			"use_vision": cfg.UseVision,
		}),
		agent.WithBrowserConfig(browser.BrowserConfig{
			"headless": cfg.Headless,
		}),
	)
	return &browserUseAgent{ag: ag}, nil
}

type browserUseAgent struct {
	ag *agent.Agent
}

// Run blocks until the agent finishes and flattens its history into the
// report text. The agent owns the browser it opens and closes it itself.
func (b *browserUseAgent) Run() (string, error) {
	history, err := b.ag.Run()
	if err != nil {
		return "", err
	}
	return reportText(history), nil
}

// reportText extracts the agent's final answer. A run can legitimately end
// with nothing extracted; the report is then empty rather than invented.
func reportText(history *agent.AgentHistoryList) string {
	if history == nil {
		return ""
	}
	last := history.LastResult()
	if last == nil || last.ExtractedContent == nil {
		return ""
	}
	return *last.ExtractedContent
}
