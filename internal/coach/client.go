// Package coach talks to an OpenAI-compatible chat-completions gateway to
// generate natural-language coaching content: weekly goal summaries, a chat
// interface, and free-text nutrition analysis.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

const defaultGatewayURL = "https://api.openai.com/v1/chat/completions"

// Gateway billing conditions are surfaced as distinct errors so controllers
// can map them to 429/402 instead of a generic 500.
var (
	ErrRateLimited     = errors.New("coach: gateway rate limit exceeded")
	ErrPaymentRequired = errors.New("coach: gateway payment required")
)

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Tool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

type ToolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Tools       []Tool        `json:"tools,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			ToolCalls []struct {
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
	Usage TokenUsage `json:"usage"`
}

type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

func NewClient() (*Client, error) {
	apiKey := os.Getenv("AI_GATEWAY_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("AI_GATEWAY_API_KEY environment variable is not set")
	}

	baseURL := os.Getenv("AI_GATEWAY_URL")
	if baseURL == "" {
		baseURL = defaultGatewayURL
	}

	model := os.Getenv("AI_GATEWAY_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Complete sends the messages and returns the assistant's text reply.
func (c *Client) Complete(ctx context.Context, messages []ChatMessage, maxTokens int) (string, TokenUsage, error) {
	result, err := c.send(ctx, chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", TokenUsage{}, err
	}

	if len(result.Choices) == 0 {
		return "", result.Usage, fmt.Errorf("no completion choices returned")
	}
	return result.Choices[0].Message.Content, result.Usage, nil
}

// CompleteWithTool sends the messages with a single forced function tool and
// returns the raw JSON arguments of the first tool call.
func (c *Client) CompleteWithTool(ctx context.Context, messages []ChatMessage, tool Tool) (json.RawMessage, TokenUsage, error) {
	result, err := c.send(ctx, chatCompletionRequest{
		Model:    c.model,
		Messages: messages,
		Tools:    []Tool{tool},
	})
	if err != nil {
		return nil, TokenUsage{}, err
	}

	if len(result.Choices) == 0 || len(result.Choices[0].Message.ToolCalls) == 0 {
		return nil, result.Usage, fmt.Errorf("no tool call returned")
	}
	return json.RawMessage(result.Choices[0].Message.ToolCalls[0].Function.Arguments), result.Usage, nil
}

func (c *Client) send(ctx context.Context, req chatCompletionRequest) (*chatCompletionResponse, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}

	request, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}
	defer response.Body.Close()

	switch response.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusPaymentRequired:
		return nil, ErrPaymentRequired
	default:
		var errorResponse struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(response.Body).Decode(&errorResponse); err != nil {
			return nil, fmt.Errorf("AI gateway returned non-200 status code: %d", response.StatusCode)
		}
		return nil, fmt.Errorf("AI gateway error: %s", errorResponse.Error.Message)
	}

	var result chatCompletionResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}
	return &result, nil
}
