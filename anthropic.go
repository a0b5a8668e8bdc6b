package llmroute

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	anthropicDefaultBaseURL = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"
	anthropicMaxTokens      = 4096
)

var anthropicHTTPClient = &http.Client{}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// anthropicEndpoint resolves a base URL to the messages endpoint. A base
// supplied with or without a /v1 suffix (any case), with or without a
// trailing slash, maps to the same endpoint.
func anthropicEndpoint(baseURL string) string {
	base := baseURL
	if base == "" {
		base = anthropicDefaultBaseURL
	}
	base = strings.TrimRight(base, "/")
	if strings.HasSuffix(strings.ToLower(base), "/v1") {
		base = base[:len(base)-len("/v1")]
	}
	return base + "/v1/messages"
}

// CallAnthropic sends one completion request to the Anthropic Messages
// API and returns the first text block of the response.
//
// The first system-role message is hoisted into the request's top-level
// system field; any further system-role messages are dropped. The
// remaining messages are forwarded in conversation order.
func CallAnthropic(ctx context.Context, messages []Message, apiKey, model, baseURL string) (string, error) {
	var system string
	var seenSystem bool
	conversation := make([]anthropicMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.Role == RoleSystem {
			if !seenSystem {
				system = msg.Content
				seenSystem = true
			}
			continue
		}
		conversation = append(conversation, anthropicMessage{Role: string(msg.Role), Content: msg.Content})
	}

	body, err := json.Marshal(anthropicRequest{
		Model:       model,
		MaxTokens:   anthropicMaxTokens,
		Temperature: 0,
		System:      system,
		Messages:    conversation,
	})
	if err != nil {
		return "", fmt.Errorf("marshalling anthropic request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicEndpoint(baseURL), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating anthropic request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	httpResp, err := anthropicHTTPClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading anthropic response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return "", &APIError{
			Provider:   string(ProviderAnthropic),
			StatusCode: httpResp.StatusCode,
			Body:       string(respBody),
		}
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshalling anthropic response: %w", err)
	}

	for _, block := range apiResp.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("anthropic: %w", ErrEmptyResponse)
}
