package config

// DefaultConfig returns configuration with sensible defaults.
// These defaults are used when no config file exists or when
// config file is missing specific fields.
func DefaultConfig() *Config {
	return &Config{
		Graph: GraphConfig{
			Backend: "memory",
		},
		Generate: GenerateConfig{
			Size: 100,
			Seed: 42,
		},
		Serve: ServeConfig{
			Addr: "127.0.0.1:8420",
		},
		Ask: AskConfig{
			TopK:      20,
			MaxTokens: 4000,
		},
	}
}

// Merge merges loaded config with defaults.
// Values from loaded config take precedence over defaults.
// Returns a new Config with merged values.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}

	// Merge Graph config
	result.Graph = mergeGraphConfig(loaded.Graph, defaults.Graph)

	// Merge Generate config
	result.Generate = mergeGenerateConfig(loaded.Generate, defaults.Generate)

	// Merge Serve config
	result.Serve = mergeServeConfig(loaded.Serve, defaults.Serve)

	// Merge Ask config
	result.Ask = mergeAskConfig(loaded.Ask, defaults.Ask)

	return result
}

func mergeGraphConfig(loaded, defaults GraphConfig) GraphConfig {
	result := GraphConfig{}

	// DefaultPath: use loaded if non-empty
	if loaded.DefaultPath != "" {
		result.DefaultPath = loaded.DefaultPath
	} else {
		result.DefaultPath = defaults.DefaultPath
	}

	// Backend: use loaded if non-empty
	if loaded.Backend != "" {
		result.Backend = loaded.Backend
	} else {
		result.Backend = defaults.Backend
	}

	// Strict: the default is false, so the loaded value stands as-is
	result.Strict = loaded.Strict

	return result
}

func mergeGenerateConfig(loaded, defaults GenerateConfig) GenerateConfig {
	result := GenerateConfig{}

	// Size: use loaded if non-zero
	if loaded.Size != 0 {
		result.Size = loaded.Size
	} else {
		result.Size = defaults.Size
	}

	// Seed: use loaded if non-zero
	if loaded.Seed != 0 {
		result.Seed = loaded.Seed
	} else {
		result.Seed = defaults.Seed
	}

	return result
}

func mergeServeConfig(loaded, defaults ServeConfig) ServeConfig {
	result := ServeConfig{}

	// Addr: use loaded if non-empty
	if loaded.Addr != "" {
		result.Addr = loaded.Addr
	} else {
		result.Addr = defaults.Addr
	}

	return result
}

func mergeAskConfig(loaded, defaults AskConfig) AskConfig {
	result := AskConfig{}

	// TopK: use loaded if non-zero
	if loaded.TopK != 0 {
		result.TopK = loaded.TopK
	} else {
		result.TopK = defaults.TopK
	}

	// MaxTokens: use loaded if non-zero
	if loaded.MaxTokens != 0 {
		result.MaxTokens = loaded.MaxTokens
	} else {
		result.MaxTokens = defaults.MaxTokens
	}

	return result
}

// ValidBackends lists the engine backends the factory registers
var ValidBackends = []string{"memory", "sqlite", "dolt"}

// IsValidBackend checks if the given backend name is valid
func IsValidBackend(backend string) bool {
	for _, valid := range ValidBackends {
		if backend == valid {
			return true
		}
	}
	return false
}
