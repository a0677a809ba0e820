package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/handiism/gilded-rose/internal/http"
	"github.com/handiism/gilded-rose/internal/model"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned when a settings file has an unsupported extension.
var ErrUnknownFormat = errors.New("unknown settings format")

// EnvPrefix prefixes every environment variable ApplyEnv reads.
const EnvPrefix = "GILDEDROSE_"

// Settings holds all configuration options.
type Settings struct {
	// Simulation settings
	Days                 int    `json:"days" yaml:"days"`
	MaxDays              int    `json:"max_days" yaml:"max_days"` // upper bound for one run, 0 for none
	InventoryPath        string `json:"inventory_path" yaml:"inventory_path"` // file path or http(s) URL, empty for the built-in shop
	MaxConcurrentUpdates int    `json:"max_concurrent_updates" yaml:"max_concurrent_updates"`

	// Classification
	LegendaryNames []string `json:"legendary_names" yaml:"legendary_names"`
	AgedBrieName   string   `json:"aged_brie_name" yaml:"aged_brie_name"`
	BackstageToken string   `json:"backstage_token" yaml:"backstage_token"`
	ConjuredToken  string   `json:"conjured_token" yaml:"conjured_token"`

	// Reporting
	ReportFormat string `json:"report_format" yaml:"report_format"` // text, table, json
	ReportPath   string `json:"report_path" yaml:"report_path"`

	// Logging
	LogLevel    string `json:"log_level" yaml:"log_level"` // debug, info, warn, error
	Development bool   `json:"development" yaml:"development"`

	// HTTP
	ListenAddress         string  `json:"listen_address" yaml:"listen_address"`
	HTTPTimeoutSeconds    int     `json:"http_timeout_seconds" yaml:"http_timeout_seconds"`
	FetchMaxRetries       int     `json:"fetch_max_retries" yaml:"fetch_max_retries"`
	FetchRetryCooldown    float64 `json:"fetch_retry_cooldown" yaml:"fetch_retry_cooldown"`
	FetchRetryExponent    float64 `json:"fetch_retry_exponent" yaml:"fetch_retry_exponent"`
	MaxDaysPerRequest     int     `json:"max_days_per_request" yaml:"max_days_per_request"`
	AutoPlayIntervalMilli int     `json:"auto_play_interval_ms" yaml:"auto_play_interval_ms"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	rules := model.DefaultRules()
	return &Settings{
		Days:                 2,
		MaxDays:              100_000,
		InventoryPath:        "",
		MaxConcurrentUpdates: 1,

		LegendaryNames: rules.LegendaryNames,
		AgedBrieName:   rules.AgedBrieName,
		BackstageToken: rules.BackstageToken,
		ConjuredToken:  rules.ConjuredToken,

		ReportFormat: "text",
		ReportPath:   "",

		LogLevel:    "info",
		Development: false,

		ListenAddress:         ":8080",
		HTTPTimeoutSeconds:    60,
		FetchMaxRetries:       3,
		FetchRetryCooldown:    0.2,
		FetchRetryExponent:    4.0,
		MaxDaysPerRequest:     365,
		AutoPlayIntervalMilli: 500,
	}
}

// Load reads settings from a JSON or YAML file, chosen by extension.
//
// A missing file yields DefaultSettings. Values present in the file
// override the defaults; absent values keep them.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	switch formatOf(path) {
	case "json":
		err = json.Unmarshal(data, settings)
	case "yaml":
		err = yaml.Unmarshal(data, settings)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen by extension.
func (s *Settings) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch formatOf(path) {
	case "json":
		data, err = json.MarshalIndent(s, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(s)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
	}
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides settings from GILDEDROSE_* environment variables.
//
// If envFile is not empty it is loaded first with godotenv; variables
// already set in the process environment win over the file. A missing
// envFile is not an error.
//
// Recognised variables: DAYS, MAX_DAYS, INVENTORY, PARALLEL, LEGENDARY_NAMES
// (semicolon-separated, since names may contain commas), AGED_BRIE_NAME, BACKSTAGE_TOKEN, CONJURED_TOKEN,
// REPORT_FORMAT, REPORT_PATH, LOG_LEVEL, DEV, ADDR.
func (s *Settings) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	ints := map[string]*int{
		"DAYS":     &s.Days,
		"MAX_DAYS": &s.MaxDays,
		"PARALLEL": &s.MaxConcurrentUpdates,
	}
	for key, dst := range ints {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
			}
			*dst = n
		}
	}

	strs := map[string]*string{
		"INVENTORY":       &s.InventoryPath,
		"AGED_BRIE_NAME":  &s.AgedBrieName,
		"BACKSTAGE_TOKEN": &s.BackstageToken,
		"CONJURED_TOKEN":  &s.ConjuredToken,
		"REPORT_FORMAT":   &s.ReportFormat,
		"REPORT_PATH":     &s.ReportPath,
		"LOG_LEVEL":       &s.LogLevel,
		"ADDR":            &s.ListenAddress,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	if v, ok := lookup("LEGENDARY_NAMES"); ok {
		var names []string
		for _, name := range strings.Split(v, ";") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		s.LegendaryNames = names
	}

	if v, ok := lookup("DEV"); ok {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sDEV: %w", EnvPrefix, err)
		}
		s.Development = dev
	}

	return nil
}

// ToRules converts settings to classification rules.
func (s *Settings) ToRules() *model.Rules {
	return &model.Rules{
		LegendaryNames: append([]string(nil), s.LegendaryNames...),
		AgedBrieName:   s.AgedBrieName,
		BackstageToken: s.BackstageToken,
		ConjuredToken:  s.ConjuredToken,
	}
}

// RetryPolicy returns the retry policy for remote inventory fetches.
func (s *Settings) RetryPolicy() http.RetryPolicy {
	return http.RetryPolicy{
		MaxRetries: s.FetchMaxRetries,
		Cooldown:   s.FetchRetryCooldown,
		Exponent:   s.FetchRetryExponent,
	}
}

func lookup(key string) (string, bool) {
	return os.LookupEnv(EnvPrefix + key)
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}
