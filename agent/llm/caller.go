package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"

	contractx "github.com/permitpilot/permitpilot/agent/contract"
	promptx "github.com/permitpilot/permitpilot/agent/prompt"
	openrouterx "github.com/permitpilot/permitpilot/pkg/openrouter"
)

// Caller sends the operator's request plus the collected profile to the
// planning agent and returns the raw reply text. Parsing and validation of
// the reply happen downstream; transport problems surface as ErrAgentInvoke.
type Caller struct {
	client       *openaisdk.Client
	model        string
	temperature  float64
	maxTokens    int64
	systemPrompt string
}

var _ contractx.AgentCaller = (*Caller)(nil)

func NewCaller(cfg Config) (*Caller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := openrouterx.NewClient(cfg.OpenRouter())
	if client == nil {
		return nil, fmt.Errorf("%w: openrouter client not configured", contractx.ErrValidation)
	}

	return &Caller{
		client:       client,
		model:        strings.TrimSpace(cfg.Model),
		temperature:  float64(cfg.Temperature),
		maxTokens:    int64(cfg.MaxCompletionToken),
		systemPrompt: promptx.PermitPilot(),
	}, nil
}

func (c *Caller) Complete(ctx context.Context, userText string, profile contractx.BusinessProfile) (string, error) {
	encodedProfile, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("%w: marshal profile: %v", contractx.ErrAgentInvoke, err)
	}

	userMessage := fmt.Sprintf("%s\n\nBusiness profile:\n%s", strings.TrimSpace(userText), encodedProfile)

	resp, err := c.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(c.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(c.systemPrompt),
			openaisdk.UserMessage(userMessage),
		},
		Temperature:         openaisdk.Float(c.temperature),
		MaxCompletionTokens: openaisdk.Int(c.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", contractx.ErrAgentInvoke, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", contractx.ErrAgentInvoke)
	}

	return resp.Choices[0].Message.Content, nil
}
