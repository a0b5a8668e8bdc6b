package llmroute

import "context"

// CallLLM routes one completion to the right adapter. The Anthropic
// provider uses its native Messages API; every other provider (or none)
// goes through the OpenAI-compatible wire format.
//
// Provider is not validated here beyond the registry lookup needed to
// resolve a base URL; an empty provider is valid and falls back to the
// OpenAI-compatible adapter's own default endpoint.
func CallLLM(ctx context.Context, messages []Message, apiKey, model string, provider Provider, baseURL string) (string, error) {
	if provider == ProviderAnthropic {
		return CallAnthropic(ctx, messages, apiKey, model, baseURL)
	}

	effectiveBaseURL, err := resolveBaseURL(provider, baseURL)
	if err != nil {
		return "", err
	}
	return CallOpenAICompatible(ctx, messages, apiKey, model, effectiveBaseURL)
}

// resolveBaseURL picks the endpoint for the OpenAI-compatible path: an
// explicit baseURL wins, then the provider's registry entry, then empty
// (the SDK's own default).
func resolveBaseURL(provider Provider, baseURL string) (string, error) {
	if baseURL != "" {
		return baseURL, nil
	}
	if provider == "" {
		return "", nil
	}
	cfg, err := GetProviderConfig(provider)
	if err != nil {
		return "", err
	}
	return cfg.BaseURL, nil
}
