package llmroute

import "context"

// Resolve turns Options into a single LLMFunc. Precedence, first match
// wins:
//
//  1. Options.LLM — returned unchanged (no wrapping, no validation of
//     its behavior). A non-function value is a configuration error.
//  2. Options.APIKey — the model is Options.Model, else the provider's
//     default model. The returned func routes each call through CallLLM
//     with the captured credentials.
//  3. Neither — configuration error describing the valid shapes.
//
// caller names the package supplying the options; it is embedded in
// configuration error messages.
func Resolve(opts Options, caller string) (LLMFunc, error) {
	if opts.LLM != nil {
		switch fn := opts.LLM.(type) {
		case LLMFunc:
			return fn, nil
		case func(ctx context.Context, messages []Message) (string, error):
			return fn, nil
		default:
			return nil, &ConfigError{Caller: caller, Reason: "received an invalid configuration: `llm` option must be a function"}
		}
	}

	if opts.APIKey != "" {
		model := opts.Model
		if model == "" && opts.Provider != "" {
			cfg, err := GetProviderConfig(opts.Provider)
			if err != nil {
				return nil, err
			}
			model = cfg.DefaultModel
		}
		if model == "" {
			return nil, &ConfigError{Caller: caller, Reason: "requires `model` when `apiKey` is set without a provider default"}
		}

		apiKey, provider, baseURL := opts.APIKey, opts.Provider, opts.BaseURL
		return func(ctx context.Context, messages []Message) (string, error) {
			return CallLLM(ctx, messages, apiKey, model, provider, baseURL)
		}, nil
	}

	return nil, &ConfigError{Caller: caller, Reason: "requires either an `llm` function, an `apiKey` with a `provider`, or an `apiKey` with a `model`"}
}
