package llmroute

import (
	"errors"
	"strings"
	"testing"
)

func TestAllProvidersHaveBaseURL(t *testing.T) {
	for _, p := range providerOrder {
		cfg, err := GetProviderConfig(p)
		if err != nil {
			t.Fatalf("GetProviderConfig(%q): unexpected error: %v", p, err)
		}
		if cfg.BaseURL == "" {
			t.Errorf("provider %q has empty base URL", p)
		}
		if !strings.HasPrefix(cfg.BaseURL, "https://") {
			t.Errorf("provider %q base URL %q is not absolute https", p, cfg.BaseURL)
		}
	}
}

func TestDefaultModels(t *testing.T) {
	for _, p := range providerOrder {
		cfg, err := GetProviderConfig(p)
		if err != nil {
			t.Fatalf("GetProviderConfig(%q): unexpected error: %v", p, err)
		}
		if p == ProviderOpenRouter {
			if cfg.DefaultModel != "" {
				t.Errorf("openrouter should have no default model, got %q", cfg.DefaultModel)
			}
			continue
		}
		if cfg.DefaultModel == "" {
			t.Errorf("provider %q has empty default model", p)
		}
	}
}

func TestProviderCount(t *testing.T) {
	if len(providerOrder) != 9 {
		t.Fatalf("expected 9 providers, got %d", len(providerOrder))
	}
	if len(providerConfigs) != len(providerOrder) {
		t.Fatalf("registry has %d entries but order lists %d", len(providerConfigs), len(providerOrder))
	}
}

func TestGetProviderConfigUnknown(t *testing.T) {
	_, err := GetProviderConfig("invalid")
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}

	var unknownErr *UnknownProviderError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected *UnknownProviderError, got %T", err)
	}

	msg := err.Error()
	if !strings.Contains(msg, `Unknown provider "invalid"`) {
		t.Errorf("message missing offending value: %q", msg)
	}
	if !strings.Contains(msg, "Valid providers:") {
		t.Errorf("message missing valid provider list: %q", msg)
	}
	// The enumeration order is part of the contract.
	want := "openai, anthropic, gemini, groq, together, mistral, openrouter, xai, deepseek"
	if !strings.Contains(msg, want) {
		t.Errorf("message lists providers out of declaration order: %q", msg)
	}
}
