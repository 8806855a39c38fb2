package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// RawConf is the on-disk form of Config
type RawConf struct {
	Input     string   `toml:"input" yaml:"input"`
	Output    string   `toml:"output" yaml:"output"`
	Molecule  string   `toml:"mol" yaml:"mol"`
	Compress  bool     `toml:"compress" yaml:"compress"`
	Threshold *float64 `toml:"threshold" yaml:"threshold"`
	Decimal   *int     `toml:"decimal" yaml:"decimal"`
	Debug     bool     `toml:"debug" yaml:"debug"`
	NoSort    bool     `toml:"no_sort" yaml:"no_sort"`
}

// ToConfig overlays the fields set in rc onto conf
func (rc RawConf) ToConfig(conf Config) Config {
	if rc.Input != "" {
		conf.Input = rc.Input
	}
	if rc.Output != "" {
		conf.Output = rc.Output
	}
	if rc.Molecule != "" {
		conf.Molecule = rc.Molecule
	}
	if rc.Threshold != nil {
		conf.Threshold = *rc.Threshold
	}
	if rc.Decimal != nil {
		conf.Decimal = *rc.Decimal
	}
	conf.Compress = conf.Compress || rc.Compress
	conf.Debug = conf.Debug || rc.Debug
	conf.NoSort = conf.NoSort || rc.NoSort
	return conf
}

type Config struct {
	Input     string
	Output    string
	Molecule  string
	Compress  bool
	Threshold float64
	Decimal   int
	Debug     bool
	NoSort    bool
}

func DefaultConfig() Config {
	return Config{
		Threshold: 0.1,
		Decimal:   5,
	}
}

// LoadConfig reads a TOML file, or a YAML file if filename ends in
// .yaml or .yml, on top of the defaults
func LoadConfig(filename string) (Config, error) {
	cont, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	var rc RawConf
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(cont, &rc)
	default:
		err = toml.Unmarshal(cont, &rc)
	}
	if err != nil {
		return Config{}, fmt.Errorf("loading %s: %w", filename, err)
	}
	return rc.ToConfig(DefaultConfig()), nil
}

// Validate checks the options that cannot be caught while scanning
func (c Config) Validate() error {
	if c.Input == "" {
		return ErrMissingInput
	}
	if strings.TrimSpace(c.Molecule) == "" {
		return ErrMissingMoleculeSpec
	}
	if c.Decimal < 1 || c.Decimal > 15 {
		return fmt.Errorf("%w, got %d", ErrBadDecimal, c.Decimal)
	}
	if c.Threshold < 0 || math.IsNaN(c.Threshold) {
		return fmt.Errorf("%w, got %g", ErrBadThreshold, c.Threshold)
	}
	return nil
}
