package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a variant.
// Search order: customPath -> ~/.breakout/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default.
// Files are decoded over the variant defaults, so a partial file only
// overrides the keys it names. A file naming a different variant than v is
// rejected. The result is validated before it is returned.
func Load(customPath string, v Variant) (BreakoutConfig, error) {
	cfg := DefaultConfig(v)
	filename := string(v) + ".yaml"

	// Custom path is the only source whose absence is an error
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return finish(cfg, v, customPath)
	}

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if loaded, ok := tryFile(userCfgPath, v); ok {
			return finish(loaded, v, userCfgPath)
		}
	}

	localPath := filepath.Join("configs", filename)
	if loaded, ok := tryFile(localPath, v); ok {
		return finish(loaded, v, localPath)
	}

	if data := DefaultYAML(v); data != nil {
		embedded := DefaultConfig(v)
		if err := yaml.Unmarshal(data, &embedded); err == nil {
			return finish(embedded, v, "embedded "+filename)
		}
	}
	return finish(cfg, v, "built-in defaults")
}

// tryFile decodes path over the variant defaults. Missing or malformed
// files are skipped so the next source in the search order is used.
func tryFile(path string, v Variant) (BreakoutConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BreakoutConfig{}, false
	}
	cfg := DefaultConfig(v)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, false
	}
	return cfg, true
}

func finish(cfg BreakoutConfig, v Variant, source string) (BreakoutConfig, error) {
	if cfg.Variant == "" {
		cfg.Variant = v
	}
	if cfg.Variant != v {
		return cfg, fmt.Errorf("config %s is for variant %q, not %q", source, cfg.Variant, v)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config (%s): %w", source, err)
	}
	return cfg, nil
}

// VariantOf returns the variant a config file names, or classic if it names none.
func VariantOf(path string) (Variant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var head struct {
		Variant string `yaml:"variant"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return "", fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return ParseVariant(head.Variant)
}

// userConfigPath returns the path of a per-user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}
