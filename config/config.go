// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration that failed parsing or validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config mirrors the options of the learning and feasibility entry points.
type Config struct {
	// IndependenceThreshold is the |r| at or below which a pair counts as independent.
	IndependenceThreshold float64 `yaml:"independence_threshold" validate:"gte=0,lte=1"`

	// BinWidth is the stratification bin width for conditioning values.
	BinWidth float64 `yaml:"bin_width" validate:"gt=0"`

	// MaxConditioningSize caps the skeleton search level; -1 means no cap.
	MaxConditioningSize int `yaml:"max_conditioning_size" validate:"gte=-1"`

	// RenormalizeStrata divides stratum sums by the retained weight.
	RenormalizeStrata bool `yaml:"renormalize_strata"`
}

// Default returns threshold 0.1, bin width 0.1, no cap, no renormalization.
func Default() Config {
	return Config{
		IndependenceThreshold: 0.1,
		BinWidth:              0.1,
		MaxConditioningSize:   -1,
	}
}

// Validate checks field ranges. Non-finite values are rejected, as is a bin
// width whose inverse overflows.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !finite(c.IndependenceThreshold) {
		return fmt.Errorf("%w: independence_threshold %v is not finite", ErrInvalidConfig, c.IndependenceThreshold)
	}
	if !finite(c.BinWidth) || !finite(1/c.BinWidth) {
		return fmt.Errorf("%w: bin_width %v must be finite with a finite inverse", ErrInvalidConfig, c.BinWidth)
	}

	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Parse decodes YAML over Default(). Keys absent from data keep their
// defaults; unknown keys and additional documents are errors.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: multiple YAML documents", ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads path and parses it. A missing file returns Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Save validates c and writes it to path as YAML, creating parent directories.
func (c Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}
