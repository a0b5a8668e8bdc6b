package llmroute

// Provider identifies an LLM provider. The set is closed: it is defined
// here at build time and never extended at runtime.
type Provider string

const (
	ProviderOpenAI     Provider = "openai"
	ProviderAnthropic  Provider = "anthropic"
	ProviderGemini     Provider = "gemini"
	ProviderGroq       Provider = "groq"
	ProviderTogether   Provider = "together"
	ProviderMistral    Provider = "mistral"
	ProviderOpenRouter Provider = "openrouter"
	ProviderXAI        Provider = "xai"
	ProviderDeepSeek   Provider = "deepseek"
)

// ProviderConfig holds a provider's endpoint and default model. A
// DefaultModel may be empty, in which case callers must supply a model.
type ProviderConfig struct {
	BaseURL      string
	DefaultModel string
}

// providerOrder fixes the enumeration order used in error messages.
var providerOrder = []Provider{
	ProviderOpenAI,
	ProviderAnthropic,
	ProviderGemini,
	ProviderGroq,
	ProviderTogether,
	ProviderMistral,
	ProviderOpenRouter,
	ProviderXAI,
	ProviderDeepSeek,
}

// providerConfigs is read-only after initialization and safe for
// unsynchronized concurrent reads.
var providerConfigs = map[Provider]ProviderConfig{
	ProviderOpenAI:     {BaseURL: "https://api.openai.com/v1", DefaultModel: "gpt-4o"},
	ProviderAnthropic:  {BaseURL: "https://api.anthropic.com", DefaultModel: "claude-sonnet-4-5-20250929"},
	ProviderGemini:     {BaseURL: "https://generativelanguage.googleapis.com/v1beta/openai", DefaultModel: "gemini-2.0-flash"},
	ProviderGroq:       {BaseURL: "https://api.groq.com/openai/v1", DefaultModel: "llama-3.3-70b-versatile"},
	ProviderTogether:   {BaseURL: "https://api.together.xyz/v1", DefaultModel: "meta-llama/Llama-3.3-70B-Instruct-Turbo"},
	ProviderMistral:    {BaseURL: "https://api.mistral.ai/v1", DefaultModel: "mistral-large-latest"},
	ProviderOpenRouter: {BaseURL: "https://openrouter.ai/api/v1", DefaultModel: ""},
	ProviderXAI:        {BaseURL: "https://api.x.ai/v1", DefaultModel: "grok-2-latest"},
	ProviderDeepSeek:   {BaseURL: "https://api.deepseek.com/v1", DefaultModel: "deepseek-chat"},
}

// GetProviderConfig returns the endpoint and default model for a known
// provider. Unknown values fail with an *UnknownProviderError naming the
// offending value and listing every valid identifier.
func GetProviderConfig(provider Provider) (ProviderConfig, error) {
	cfg, ok := providerConfigs[provider]
	if !ok {
		return ProviderConfig{}, &UnknownProviderError{Provider: string(provider)}
	}
	return cfg, nil
}
