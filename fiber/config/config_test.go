package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opqkdsim/fibersim/fiber"
	"github.com/opqkdsim/fibersim/fiber/timeline"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FiberLength != 50.0 {
		t.Errorf("fiber_length = %v, want 50", cfg.FiberLength)
	}
	if cfg.Beta2 != -21.27 {
		t.Errorf("beta2 = %v, want -21.27", cfg.Beta2)
	}
	if cfg.FFTSamples != 1024 {
		t.Errorf("fft_samples = %v, want 1024", cfg.FFTSamples)
	}
	if cfg.PropagateRemainder || cfg.ApplyDGDelay {
		t.Error("behavior flags must default off")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channel.yaml")
	cfg := DefaultConfig()
	cfg.FiberLength = 75
	cfg.ApplyDGDelay = true
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch: %+v != %+v", got, cfg)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("fiber_length: 10\nstep_size: 0.25\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FiberLength != 10 || cfg.StepSize != 0.25 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Gamma != fiber.DefaultGamma || cfg.FFTSamples != fiber.DefaultFFTSamples {
		t.Errorf("unset fields lost defaults: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestChannelOptsBuildsWorkingChannel(t *testing.T) {
	rec := &timeline.Recorder{}
	opts := DefaultConfig().ChannelOpts(rec)
	opts.Logf = func(string, ...interface{}) {}
	if _, err := fiber.NewChannel(opts); err != nil {
		t.Fatalf("NewChannel from default config: %v", err)
	}
}
