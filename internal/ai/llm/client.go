// Package llm wraps the generative-text service behind a one-method client so
// the parsing and scoring services can be handed a nil client when no
// credentials are configured.
package llm

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared/constant"
)

// Client is the outbound contract to the generative-text service: one prompt
// in, one textual response out. The response is expected, but not guaranteed,
// to contain a JSON object.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// OpenAIClient implements Client on the OpenAI chat completions API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a client with a request-level timeout so a hung
// upstream cannot block a serving request indefinitely.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(60*time.Second),
	)

	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIClient{
		client: &client,
		model:  model,
	}
}

// Complete sends a single chat completion request and returns the raw text of
// the first choice. No retries: failure handling belongs to the caller.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Model: c.model,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{
				Type: constant.JSONObject("json_object"),
			},
		},
		Temperature: openai.Float(0.1),
		MaxTokens:   openai.Int(4000),
	})
	if err != nil {
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("no choices in completion response")
	}

	return completion.Choices[0].Message.Content, nil
}
