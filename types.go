// Package llmroute normalizes calls to hosted LLM chat-completion APIs
// behind one interface. It resolves user-supplied options into a single
// callable that takes a conversation and returns the generated text,
// routing to either the Anthropic Messages API or an OpenAI-compatible
// chat-completions endpoint.
package llmroute

import "context"

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a conversation. Order within a
// slice is conversation order.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// LLMFunc is the resolved caller: one independent, stateless completion
// per invocation.
type LLMFunc func(ctx context.Context, messages []Message) (string, error)

// Options is the user-supplied configuration consumed by Resolve.
//
// LLM, when set, must be an LLMFunc (or a plain function with the same
// signature) and takes precedence over everything else. Otherwise APIKey
// selects the credential path: Model overrides the provider's default
// model, BaseURL overrides the provider's endpoint.
type Options struct {
	APIKey   string   `yaml:"api_key" koanf:"api_key"`
	Provider Provider `yaml:"provider" koanf:"provider"`
	Model    string   `yaml:"model" koanf:"model"`
	BaseURL  string   `yaml:"base_url" koanf:"base_url"`
	LLM      any      `yaml:"-" koanf:"-"`
}
