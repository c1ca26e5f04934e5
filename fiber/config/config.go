// Package config holds the named channel parameter bundle and its YAML
// serialization, so simulations can be described by files rather than
// constructor literals.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opqkdsim/fibersim/fiber"
	"github.com/opqkdsim/fibersim/fiber/timeline"
)

// Config mirrors fiber.ChannelOpts field for field, in the same practical
// units, minus the runtime-only members (timeline, log sink).
type Config struct {
	FiberLength        float64 `yaml:"fiber_length"`
	Attenuation        float64 `yaml:"attenuation"`
	Beta2              float64 `yaml:"beta2"`
	Beta3              float64 `yaml:"beta3"`
	DGDelay            float64 `yaml:"dg_delay"`
	Gamma              float64 `yaml:"gamma"`
	FFTSamples         int     `yaml:"fft_samples"`
	StepSize           float64 `yaml:"step_size"`
	PropagateRemainder bool    `yaml:"propagate_remainder"`
	ApplyDGDelay       bool    `yaml:"apply_dg_delay"`
}

// DefaultConfig returns the standard single-mode fiber bundle.
func DefaultConfig() *Config {
	return &Config{
		FiberLength: fiber.DefaultFiberLength,
		Attenuation: fiber.DefaultAttenuation,
		Beta2:       fiber.DefaultBeta2,
		Beta3:       fiber.DefaultBeta3,
		DGDelay:     fiber.DefaultDGDelay,
		Gamma:       fiber.DefaultGamma,
		FFTSamples:  fiber.DefaultFFTSamples,
		StepSize:    fiber.DefaultStepSize,
	}
}

// Load reads a YAML file into a Config. Fields absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ChannelOpts binds the bundle to a timeline, yielding options ready for
// fiber.NewChannel.
func (c *Config) ChannelOpts(tl timeline.Publisher) fiber.ChannelOpts {
	return fiber.ChannelOpts{
		FiberLength:        c.FiberLength,
		Attenuation:        c.Attenuation,
		Beta2:              c.Beta2,
		Beta3:              c.Beta3,
		DGDelay:            c.DGDelay,
		Gamma:              c.Gamma,
		FFTSamples:         c.FFTSamples,
		StepSize:           c.StepSize,
		PropagateRemainder: c.PropagateRemainder,
		ApplyDGDelay:       c.ApplyDGDelay,
		Timeline:           tl,
	}
}
