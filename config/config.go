// Package config loads llmroute.Options from a YAML file with
// LLMROUTE_* environment variable overrides. It is a convenience for
// callers; the core library itself reads no files and no environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/llmroute/llmroute"
)

const envPrefix = "LLMROUTE_"

// Load reads options from the given YAML file, then overlays environment
// variable overrides (LLMROUTE_API_KEY -> api_key, etc.). A missing file
// is not an error; the environment alone may supply everything.
func Load(path string) (llmroute.Options, error) {
	var opts llmroute.Options
	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return opts, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return opts, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return opts, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &opts); err != nil {
		return opts, fmt.Errorf("unmarshalling config: %w", err)
	}

	if opts.Provider != "" {
		if _, err := llmroute.GetProviderConfig(opts.Provider); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// Save writes the options to the given YAML file path. The LLM override,
// being a function value, is never serialized.
func Save(opts llmroute.Options, path string) error {
	data, err := yamlv3.Marshal(opts)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}
