// Package openrouter implements the extraction backend on top of the
// OpenRouter chat-completions API.
package openrouter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is a client for the OpenRouter API.
type Client struct {
	client    *resty.Client
	model     string
	maxTokens int
}

// Options configure a Client.
type Options struct {
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// Message is one chat message in the request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type response struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient creates a new OpenRouter client.
func NewClient(opts Options) *Client {
	client := resty.New().
		SetBaseURL("https://openrouter.ai/api/v1").
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", opts.APIKey)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(opts.Timeout)

	return &Client{
		client:    client,
		model:     opts.Model,
		maxTokens: opts.MaxTokens,
	}
}

// Generate sends the system directive and user instruction as a chat
// completion and returns the raw assistant text.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	req := request{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens: c.maxTokens,
	}

	var result response
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("openrouter returned status %d: %s", resp.StatusCode(), resp.String())
	}
	if result.Error != nil {
		return "", fmt.Errorf("openrouter error %d: %s", result.Error.Code, result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no content found in openrouter response")
	}

	return result.Choices[0].Message.Content, nil
}
