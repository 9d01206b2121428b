package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/sinebench/internal/cputime"
	"github.com/san-kum/sinebench/internal/interp"
	"github.com/san-kum/sinebench/internal/strategy"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRepetitions        = 1000
	DefaultLibraryRepetitions = 10000
	DefaultPrecision          = 6
	MaxPrecision              = 17
)

var (
	ErrNoTrials       = errors.New("config: no trials configured")
	ErrBadRepetitions = errors.New("config: repetitions must be positive")
	ErrBadRepeat      = errors.New("config: repeat must be at least 1")
	ErrBadPrecision   = errors.New("config: precision out of range")
)

type Config struct {
	Trials       []TrialConfig `yaml:"trials"`
	Lerp         string        `yaml:"lerp"`
	FPCheck      bool          `yaml:"fp_check"`
	LibraryInput string        `yaml:"library_input"`
	Clock        string        `yaml:"clock"`
	Repeat       int           `yaml:"repeat"`
	Precision    int           `yaml:"precision"`
}

type TrialConfig struct {
	Strategy    string `yaml:"strategy"`
	Repetitions int    `yaml:"repetitions"`
}

// DefaultConfig is the fixed suite: table, both fsin shapes, then the
// library sine with ten times as many repetitions.
func DefaultConfig() *Config {
	return &Config{
		Trials: []TrialConfig{
			{Strategy: "table", Repetitions: DefaultRepetitions},
			{Strategy: "fsin-inline", Repetitions: DefaultRepetitions},
			{Strategy: "fsin-call", Repetitions: DefaultRepetitions},
			{Strategy: "libm", Repetitions: DefaultLibraryRepetitions},
		},
		Lerp:         interp.PreciseFormula.String(),
		FPCheck:      false,
		LibraryInput: strategy.InputRadians.String(),
		Clock:        "cpu",
		Repeat:       1,
		Precision:    DefaultPrecision,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if len(c.Trials) == 0 {
		return ErrNoTrials
	}
	for _, t := range c.Trials {
		if t.Repetitions < 1 {
			return fmt.Errorf("%w: %s has %d", ErrBadRepetitions, t.Strategy, t.Repetitions)
		}
	}
	if c.Repeat < 1 {
		return ErrBadRepeat
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("%w: %d", ErrBadPrecision, c.Precision)
	}
	if _, err := interp.ParseFormula(c.Lerp); err != nil {
		return err
	}
	if _, err := strategy.ParseInputMode(c.LibraryInput); err != nil {
		return err
	}
	if _, err := cputime.Parse(c.Clock); err != nil {
		return err
	}
	return nil
}

// StrategyOptions resolves the string fields used to build a registry.
func (c *Config) StrategyOptions() (strategy.Options, error) {
	f, err := interp.ParseFormula(c.Lerp)
	if err != nil {
		return strategy.Options{}, err
	}
	in, err := strategy.ParseInputMode(c.LibraryInput)
	if err != nil {
		return strategy.Options{}, err
	}
	return strategy.Options{Lerp: f, LibraryInput: in}, nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Trials = append([]TrialConfig(nil), c.Trials...)
	return &cp
}
