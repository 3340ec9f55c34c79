package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"resume-builder/pkg/ai/formatters"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = "You are an expert résumé writer. Follow the formatting rules exactly."

// OpenAIClient talks to any OpenAI-compatible chat completions API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(baseURL, apiKey, model string, timeout time.Duration) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIClient{client: openai.NewClient(opts...), model: model}
}

func (o *OpenAIClient) Generate(ctx context.Context, req Request) (string, error) {
	f, ok := formatters.For(req.Section)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSection, req.Section)
	}
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(f.Prompt(req.Context, req.Language)),
		}),
		Model: openai.F(openai.ChatModel(o.model)),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyOutput
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", ErrEmptyOutput
	}
	return out, nil
}
