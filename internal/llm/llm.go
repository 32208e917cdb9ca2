// Package llm configures the Gemini chat model that powers the agent.
package llm

import (
	"context"
	"os"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"
)

const (
	// ModelName is the fixed Gemini model identifier for every run.
	ModelName = "gemini-3-pro"

	// EnvAPIKey names the environment variable holding the Gemini API key.
	EnvAPIKey = "GOOGLE_API_KEY"

	// Temperature is pinned to zero so agent behavior is reproducible
	// across runs on the same page.
	Temperature float32 = 0.0
)

// Config holds the model identifier, sampling temperature and credential for
// the remote endpoint. It is built once per process and never mutated.
type Config struct {
	Model       string
	Temperature float32
	APIKey      string
}

// NewConfig reads the credential from the environment and returns the fixed
// model configuration. An absent credential is not an error here; the remote
// call surfaces it if it matters.
func NewConfig() Config {
	return Config{
		Model:       ModelName,
		Temperature: Temperature,
		APIKey:      os.Getenv(EnvAPIKey),
	}
}

// ChatModel materializes the configuration into an eino chat model backed by
// the Gemini API.
func (c Config) ChatModel(ctx context.Context) (model.ToolCallingChatModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       c.Model,
		Temperature: genai.Ptr(c.Temperature),
	})
}
