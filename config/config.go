// Package config loads simulator settings from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Abrar-Muhammad/quantum-computing-project/bb84"
)

// Config holds the tunable parameters of a key exchange run. Zero or
// absent fields are filled from Default before validation.
type Config struct {
	// Trials is the number of photon pulses per session.
	Trials int `yaml:"trials"`
	// Eavesdropper enables an intercept-resend attacker on the channel.
	Eavesdropper bool `yaml:"eavesdropper"`
	// Seed fixes the random source. When nil each run draws its own.
	Seed *int64 `yaml:"seed"`
	// Sessions is the number of independent exchanges to aggregate.
	Sessions int `yaml:"sessions"`
	// Backend selects the photon model, "polarization" or "wave".
	Backend string `yaml:"backend"`
	// MaxQBER is the error rate above which a key is discarded.
	MaxQBER float64 `yaml:"max_qber"`
}

// Default returns the configuration used when no file or flags override
// it.
func Default() Config {
	return Config{
		Trials:   100,
		Sessions: 1,
		Backend:  "polarization",
		MaxQBER:  bb84.DefaultMaxQBER,
	}
}

// Load reads a YAML file over the defaults. Fields the file omits keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field, if any.
func (c Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	if c.Sessions <= 0 {
		return fmt.Errorf("sessions must be positive, got %d", c.Sessions)
	}
	if c.Backend != "polarization" && c.Backend != "wave" {
		return fmt.Errorf("backend must be polarization or wave, got %q", c.Backend)
	}
	if c.MaxQBER < 0 || c.MaxQBER >= 1 {
		return fmt.Errorf("max_qber must be in [0, 1), got %v", c.MaxQBER)
	}
	return nil
}
