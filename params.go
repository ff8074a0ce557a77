package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/snowtest/snow-contract-tests/framework"
)

const (
	defaultCasesDir    = "build/cases"
	defaultExpectedDir = "expected"
	defaultTimeout     = 30 * time.Second
)

type commandParams struct {
	casesDir    string
	expectedDir string
	timeout     time.Duration
	filters     framework.RegexFilters
	quiet       bool
	noTimer     bool
	logPath     string
	debug       bool
	configPath  string
}

func (c *commandParams) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.casesDir, "cases", envOrDefault("SNOW_CASES_DIR", defaultCasesDir), "directory containing the compiled test programs")
	fs.StringVar(&c.expectedDir, "expected", envOrDefault("SNOW_EXPECTED_DIR", defaultExpectedDir), "directory containing the expected output files")
	fs.DurationVar(&c.timeout, "timeout", envOrDefaultDuration("SNOW_TIMEOUT", defaultTimeout), "time limit for each test program (0 for none)")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVarP(&c.quiet, "quiet", "q", false, "only print failures and the total")
	fs.BoolVar(&c.noTimer, "no-timer", false, "don't print how long tests take")
	fs.StringVar(&c.logPath, "log", "", "also write the report to this file")
	fs.BoolVar(&c.debug, "debug", envOrDefaultBool("SNOW_DEBUG", false), "enable debug logging")
	fs.StringVar(&c.configPath, "config", envOrDefault("SNOW_CONFIG", ""), "YAML configuration file")
}

// fileConfig is the YAML configuration file. Every field is optional; a field that is set
// overrides the default, and is itself overridden by a command line flag.
type fileConfig struct {
	Cases    *string    `yaml:"cases"`
	Expected *string    `yaml:"expected"`
	Timeout  *string    `yaml:"timeout"`
	Run      StringList `yaml:"run"`
	Skip     StringList `yaml:"skip"`
	Quiet    *bool      `yaml:"quiet"`
	NoTimer  *bool      `yaml:"no_timer"`
	Log      *string    `yaml:"log"`
	Debug    *bool      `yaml:"debug"`
}

// StringList supports string or list YAML values.
type StringList []string

func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*s = StringList{strings.TrimSpace(value.Value)}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, node := range value.Content {
			if node.Kind != yaml.ScalarNode {
				return fmt.Errorf("string list must contain only scalars")
			}
			out = append(out, node.Value)
		}
		*s = out
		return nil
	default:
		return fmt.Errorf("string list must be a string or list")
	}
}

func loadFileConfig(path string) (*fileConfig, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// applyFileConfig copies the values of the config file into c, except for those whose flag
// was given explicitly.
func (c *commandParams) applyFileConfig(fc *fileConfig, fs *pflag.FlagSet) error {
	if fc == nil {
		return nil
	}
	set := func(flag string) bool { return !fs.Changed(flag) }
	if fc.Cases != nil && set("cases") {
		c.casesDir = *fc.Cases
	}
	if fc.Expected != nil && set("expected") {
		c.expectedDir = *fc.Expected
	}
	if fc.Timeout != nil && set("timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(*fc.Timeout))
		if err != nil {
			return fmt.Errorf("invalid timeout: %w", err)
		}
		c.timeout = d
	}
	if set("run") {
		for _, p := range fc.Run {
			if err := c.filters.MustMatch.Set(p); err != nil {
				return err
			}
		}
	}
	if set("skip") {
		for _, p := range fc.Skip {
			if err := c.filters.MustNotMatch.Set(p); err != nil {
				return err
			}
		}
	}
	if fc.Quiet != nil && set("quiet") {
		c.quiet = *fc.Quiet
	}
	if fc.NoTimer != nil && set("no-timer") {
		c.noTimer = *fc.NoTimer
	}
	if fc.Log != nil && set("log") {
		c.logPath = *fc.Log
	}
	if fc.Debug != nil && set("debug") {
		c.debug = *fc.Debug
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrDefaultBool(key string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "y":
		return true
	case "0", "false", "no", "n":
		return false
	default:
		return fallback
	}
}

func envOrDefaultDuration(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
