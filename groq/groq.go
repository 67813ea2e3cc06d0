package groq

import (
	"context"
	"fmt"
	"time"

	"tripwise/globals"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// DefaultModel is the Groq-hosted model used for all generation calls.
const DefaultModel = "llama-3.3-70b-versatile"

const groqBaseURL = "https://api.groq.com/openai/v1"

// Request is one rendered generation request. The response format is
// pinned to JSON; temperature and token budget vary by variant (itinerary
// generation runs hot and long, data fills run cool and short).
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int64
}

// Result carries the raw model text plus elapsed wall time.
type Result struct {
	Text    string
	Elapsed time.Duration
}

// Client wraps the single external generation call. Groq serves the
// OpenAI chat-completions API, so the openai client pointed at the Groq
// base URL is the whole transport. No retries here; failures surface to
// the caller.
type Client struct {
	api   openai.Client
	Model string
}

func New(apiKey string) *Client {
	return &Client{
		api: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(groqBaseURL),
		),
		Model: globals.Getenv("GROQ_MODEL", DefaultModel),
	}
}

// Generate performs the blocking model call and returns raw text.
func (c *Client) Generate(ctx context.Context, req Request) (Result, error) {
	start := time.Now()

	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.Prompt),
		},
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(req.MaxTokens),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("groq call failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return Result{}, fmt.Errorf("groq returned no choices")
	}

	return Result{
		Text:    completion.Choices[0].Message.Content,
		Elapsed: time.Since(start),
	}, nil
}
