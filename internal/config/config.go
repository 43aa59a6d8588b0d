// Copyright ©2026 The bíogo Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package config holds the benchmark harness configuration.
//
// Configuration is read from a YAML file. Options missing from the file keep
// their default values.
package config

import (
	"os"

	"github.com/ansel1/merry"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is the root of all validation errors returned by Validate.
var ErrInvalid = merry.New("config: invalid configuration")

// LoggingConfig configures the log level, format and destination.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
	JSON  bool   `yaml:"json"`
}

// TreeConfig configures the ordered set benchmark.
type TreeConfig struct {
	Size int   `yaml:"size"`
	Seed int64 `yaml:"seed"`
}

// SortConfig configures the elementary sort sweep.
type SortConfig struct {
	Sizes    []int `yaml:"sizes"`
	Runs     int   `yaml:"runs"`
	Seed     int64 `yaml:"seed"`
	MaxValue int   `yaml:"max_value"`
}

// CardsConfig configures the card dump sort benchmark.
type CardsConfig struct {
	MaskedPath     string `yaml:"masked_path"`
	DetailPath     string `yaml:"detail_path"`
	SecondaryRange int    `yaml:"secondary_range"`
}

// Config is the complete benchmark configuration.
type Config struct {
	OutputDir string        `yaml:"output_dir"`
	Progress  bool          `yaml:"progress"`
	Logging   LoggingConfig `yaml:"logging"`
	Tree      TreeConfig    `yaml:"tree"`
	Sort      SortConfig    `yaml:"sort"`
	Cards     CardsConfig   `yaml:"cards"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		OutputDir: ".",
		Progress:  true,
		Logging: LoggingConfig{
			Level: "info",
		},
		Tree: TreeConfig{
			Size: 1023,
			Seed: 0,
		},
		Sort: SortConfig{
			Sizes:    []int{5, 10, 20, 30, 50, 100, 500, 1000, 5000, 10000},
			Runs:     5,
			Seed:     42,
			MaxValue: 1000000,
		},
		Cards: CardsConfig{
			MaskedPath:     "carddump1.csv",
			DetailPath:     "carddump2.csv",
			SecondaryRange: 10000,
		},
	}
}

// Load returns the configuration held in the YAML file at path, layered over
// the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, merry.Prependf(err, "config: reading %s", path)
	}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, merry.Prependf(err, "config: parsing %s", path)
	}
	return cfg, cfg.Validate()
}

// Write writes cfg to path as YAML.
func (cfg *Config) Write(path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return merry.Prepend(err, "config: marshaling")
	}
	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return merry.Prependf(err, "config: writing %s", path)
	}
	return nil
}

// Validate returns an error wrapping ErrInvalid if cfg cannot be used.
func (cfg *Config) Validate() error {
	if cfg.Tree.Size < 0 {
		return ErrInvalid.Here().Appendf("tree size %d is negative", cfg.Tree.Size)
	}
	if cfg.Sort.Runs < 1 {
		return ErrInvalid.Here().Appendf("sort runs %d is less than one", cfg.Sort.Runs)
	}
	if cfg.Sort.MaxValue < 0 {
		return ErrInvalid.Here().Appendf("sort max value %d is negative", cfg.Sort.MaxValue)
	}
	for _, n := range cfg.Sort.Sizes {
		if n < 0 {
			return ErrInvalid.Here().Appendf("sort size %d is negative", n)
		}
	}
	if cfg.Cards.SecondaryRange < 1 {
		return ErrInvalid.Here().Appendf("secondary range %d is less than one", cfg.Cards.SecondaryRange)
	}
	return nil
}
