package llmroute

import (
	"context"
	"fmt"
	"math"

	openai "github.com/sashabaranov/go-openai"
)

// CallOpenAICompatible sends one chat-completion request to an
// OpenAI-compatible endpoint and returns the first choice's message text.
//
// The message list is forwarded unmodified; this wire format accepts
// system as an ordinary message role. An empty baseURL uses the SDK's
// built-in default, the OpenAI public API.
func CallOpenAICompatible(ctx context.Context, messages []Message, apiKey, model, baseURL string) (string, error) {
	var client *openai.Client
	if baseURL != "" {
		cfg := openai.DefaultConfig(apiKey)
		cfg.BaseURL = baseURL
		client = openai.NewClientWithConfig(cfg)
	} else {
		client = openai.NewClient(apiKey)
	}

	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: chatMessages,
		// The SDK omits a zero temperature from the request body, so the
		// smallest nonzero value stands in for exactly 0.
		Temperature: math.SmallestNonzeroFloat32,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("chat completion: %w", ErrEmptyResponse)
	}
	return resp.Choices[0].Message.Content, nil
}
