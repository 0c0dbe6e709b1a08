// Package config holds the settings of the arrangements command line
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/limaJavier/arrangements/pkg/arrangement"
	"github.com/mitchellh/mapstructure"
)

var ValidFormats = []string{"json", "csv"}

type Config struct {
	Kind           string `mapstructure:"kind"`
	PopulationSize int    `mapstructure:"populationSize"`
	SampleSize     int    `mapstructure:"sampleSize"`
	Limit          int    `mapstructure:"limit"`  // 0 means every arrangement is written
	Format         string `mapstructure:"format"` // One of ValidFormats
	Output         string `mapstructure:"output"` // Empty means Standard Output
	LogLevel       string `mapstructure:"logLevel"`
	Development    bool   `mapstructure:"development"`
}

func Default() Config {
	return Config{
		Kind:     "permutations",
		Format:   "json",
		LogLevel: "info",
	}
}

// FromJson reads the file on top of the defaults; keys missing from the file keep their default value
func FromJson(file string) (Config, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file: %w", err)
	}

	config := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &config,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(configJson); err != nil {
		return Config{}, fmt.Errorf("invalid config file: %w", err)
	}
	return config, nil
}

// Validate checks everything but the population and sample sizes, which are validated by the generator itself
func (config Config) Validate() error {
	if _, err := arrangement.ParseKind(config.Kind); err != nil {
		return err
	} else if !slices.Contains(ValidFormats, strings.ToLower(config.Format)) {
		return fmt.Errorf("%v is not a valid format", config.Format)
	} else if config.Limit < 0 {
		return fmt.Errorf("limit must not be negative: %v", config.Limit)
	}
	return nil
}
