// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/genc-murat/crystalmetrics/internal/alerts"
	"github.com/genc-murat/crystalmetrics/internal/core/models"
	"github.com/genc-murat/crystalmetrics/internal/latency"
	"github.com/genc-murat/crystalmetrics/internal/logger"
	"github.com/genc-murat/crystalmetrics/internal/metrics"
)

type Config struct {
	// Root is the project root LoadConfig found; relative file paths in the
	// config resolve against it. Empty for Parse.
	Root        string        `yaml:"-"`
	Environment string        `yaml:"environment"`
	Server      ServerConfig  `yaml:"server"`
	Metrics     MetricsConfig `yaml:"metrics"`
	Alerts      AlertsConfig  `yaml:"alerts"`
	Logging     logger.Config `yaml:"logging"`
}

type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	Mode         string        `yaml:"mode"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

type MetricsConfig struct {
	CollectionInterval time.Duration  `yaml:"collection_interval"`
	MaxHistory         int            `yaml:"max_history"`
	LatencyCap         int            `yaml:"latency_cap"`
	ScrapeEnabled      *bool          `yaml:"scrape_enabled"`
	Autostart          *bool          `yaml:"autostart"`
	Textfile           TextfileConfig `yaml:"textfile"`
}

type TextfileConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type AlertsConfig struct {
	Defaults  *bool        `yaml:"defaults"`
	Rules     []RuleConfig `yaml:"rules"`
	RulesFile string       `yaml:"rules_file"`
}

// RuleConfig mirrors models.AlertRule; a missing enabled key means enabled.
type RuleConfig struct {
	Metric      string  `yaml:"metric"`
	Warning     float64 `yaml:"warning"`
	Critical    float64 `yaml:"critical"`
	Enabled     *bool   `yaml:"enabled"`
	Description string  `yaml:"description"`
}

func findProjectRoot() (string, error) {
	// Start from the current working directory
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	// Walk up the directory tree until we find the config directory
	for {
		if _, err := os.Stat(filepath.Join(dir, "config")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find project root (no config directory found)")
		}
		dir = parent
	}
}

func LoadConfig(env string) (*Config, error) {
	projectRoot, err := findProjectRoot()
	if err != nil {
		return nil, fmt.Errorf("error finding project root: %w", err)
	}

	// Try loading with .yaml extension first
	configPath := filepath.Join(projectRoot, "config", fmt.Sprintf("%s.yaml", env))

	data, err := os.ReadFile(configPath)
	if err != nil {
		// If .yaml doesn't exist, try .yml
		configPath = filepath.Join(projectRoot, "config", fmt.Sprintf("%s.yml", env))
		data, err = os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config, err := Parse(data)
	if err != nil {
		return nil, err
	}
	config.Root = projectRoot
	config.Environment = env
	return config, nil
}

func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	config.ApplyDefaults()
	return &config, nil
}

func (c *Config) ApplyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 9464
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}

	if c.Metrics.CollectionInterval == 0 {
		c.Metrics.CollectionInterval = metrics.DefaultCollectionInterval
	}
	if c.Metrics.MaxHistory == 0 {
		c.Metrics.MaxHistory = models.DefaultSeriesCapacity
	}
	if c.Metrics.LatencyCap == 0 {
		c.Metrics.LatencyCap = latency.DefaultCap
	}
	if c.Metrics.ScrapeEnabled == nil {
		enabled := true
		c.Metrics.ScrapeEnabled = &enabled
	}
	if c.Metrics.Autostart == nil {
		autostart := true
		c.Metrics.Autostart = &autostart
	}
	if c.Metrics.Textfile.Enabled && c.Metrics.Textfile.Path == "" {
		c.Metrics.Textfile.Path = "textfile/crystalmetrics.prom"
	}

	if c.Alerts.Defaults == nil {
		defaults := true
		c.Alerts.Defaults = &defaults
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Metrics.CollectionInterval <= 0 {
		return fmt.Errorf("metrics.collection_interval must be positive")
	}
	if c.Metrics.MaxHistory < 1 {
		return fmt.Errorf("metrics.max_history must be at least 1")
	}
	if c.Metrics.LatencyCap < 1 {
		return fmt.Errorf("metrics.latency_cap must be at least 1")
	}
	for i, rule := range c.Alerts.Rules {
		if rule.Metric == "" {
			return fmt.Errorf("alerts.rules[%d]: metric is required", i)
		}
	}
	return nil
}

func (c *Config) MetricsOptions() metrics.Options {
	return metrics.Options{
		CollectionInterval: c.Metrics.CollectionInterval,
		MaxHistory:         c.Metrics.MaxHistory,
		LatencyCap:         c.Metrics.LatencyCap,
		ScrapeEnabled:      *c.Metrics.ScrapeEnabled,
	}
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ResolvePath anchors a relative path at the project root when one is known.
func (c *Config) ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) || c.Root == "" {
		return path
	}
	return filepath.Join(c.Root, path)
}

// AlertRules returns the stock rules (unless alerts.defaults is false), then
// the inline rules, then the rules file entries. Added in order to a rule
// set, a later rule replaces an earlier one for the same metric.
func (c *Config) AlertRules() ([]models.AlertRule, error) {
	var rules []models.AlertRule
	if c.Alerts.Defaults == nil || *c.Alerts.Defaults {
		rules = append(rules, alerts.DefaultRules()...)
	}

	for _, rc := range c.Alerts.Rules {
		enabled := true
		if rc.Enabled != nil {
			enabled = *rc.Enabled
		}
		rules = append(rules, models.AlertRule{
			MetricName:  rc.Metric,
			Warning:     rc.Warning,
			Critical:    rc.Critical,
			Enabled:     enabled,
			Description: rc.Description,
		})
	}

	if c.Alerts.RulesFile == "" {
		return rules, nil
	}
	fromFile, err := alerts.LoadRulesFile(c.ResolvePath(c.Alerts.RulesFile))
	if err != nil {
		return nil, err
	}
	return append(rules, fromFile...), nil
}
