package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/user/ecc_plotter_go/internal/results"
)

// Config is the run configuration. The zero-flag, zero-file run reads
// results/, writes images/, renders every chart and picks the first
// candidate on ambiguity.
type Config struct {
	// Results is the directory scanned for result CSV files.
	Results string `yaml:"results"`
	// Images is the directory chart artifacts are written to.
	Images string `yaml:"images"`
	// Select names the candidate selection policy: first, newest or strict.
	Select string `yaml:"select"`
	// Charts optionally restricts the run to a subset of the chart catalog.
	Charts []string `yaml:"charts"`
	// Report, when set, is the path of a summary PDF collecting all charts.
	Report string `yaml:"report"`
	// RSParams is the explicit code parameter record for the Reed-Solomon
	// charts. When set it takes precedence over filename extraction.
	RSParams *results.SchemeParams `yaml:"rs_params"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Results: "results",
		Images:  "images",
		Select:  string(results.SelectFirst),
	}
}

// Load reads a YAML configuration file over the defaults. Unknown keys are
// rejected.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening config %s", path)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks the policy name and, if present, the explicit parameter
// record.
func (c *Config) Validate() error {
	if _, err := results.ParsePolicy(c.Select); err != nil {
		return err
	}
	if c.RSParams != nil {
		if err := c.RSParams.Validate(); err != nil {
			return errors.Wrap(err, "rs_params")
		}
	}
	return nil
}
