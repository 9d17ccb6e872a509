package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/demo.yaml
var defaultDemoYAML []byte

// DefaultConfig returns the built-in configuration for a variant.
// Unknown variants get the classic configuration.
func DefaultConfig(v Variant) BreakoutConfig {
	cfg := BreakoutConfig{
		Variant: VariantClassic,
		Arena: Arena{
			Width:  400,
			Height: 600,
		},
		Paddle: Paddle{
			Width:   60,
			Height:  10,
			YOffset: 30,
			Step:    15,
		},
		Bricks: Bricks{
			Rows:       10,
			PerRow:     10,
			Separation: 4,
			Height:     8,
			YOffset:    70,
		},
		Ball: Ball{
			Radius: 10,
			DX:     2,
			DY:     3,
		},
		Rules: Rules{
			PaddleCollision: true,
			BrickCollision:  true,
		},
		Timing: Timing{
			TickPeriodMS: 5,
		},
	}

	if v == VariantDemo {
		ApplyVariant(&cfg, VariantDemo)
	}
	return cfg
}

// ApplyVariant switches cfg to the rules and paddle step of a variant,
// leaving geometry untouched.
func ApplyVariant(cfg *BreakoutConfig, v Variant) {
	cfg.Variant = v
	switch v {
	case VariantDemo:
		cfg.Paddle.Step = 5
		cfg.Rules.PaddleCollision = false
		cfg.Rules.BrickCollision = false
	default:
		cfg.Paddle.Step = 15
		cfg.Rules.PaddleCollision = true
		cfg.Rules.BrickCollision = true
	}
}

// DefaultYAML returns the embedded default YAML for a variant, or nil.
func DefaultYAML(v Variant) []byte {
	switch v {
	case VariantClassic:
		return defaultClassicYAML
	case VariantDemo:
		return defaultDemoYAML
	default:
		return nil
	}
}
