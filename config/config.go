// Package config provides configuration management for semowl.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semowl/owltime"
	"github.com/c360studio/semowl/validator/report"
	"github.com/c360studio/semowl/validator/rules"
)

// Config holds all semowl configuration.
type Config struct {
	Validator ValidatorConfig `yaml:"validator"`
	Temporal  TemporalConfig  `yaml:"temporal"`
	Output    OutputConfig    `yaml:"output"`
	NATS      NATSConfig      `yaml:"nats"`
	Watch     WatchConfig     `yaml:"watch"`
}

// ValidatorConfig selects the rules to run and the severity that fails a run.
type ValidatorConfig struct {
	// Rules lists rule names. Empty means every standard rule.
	Rules []string `yaml:"rules,omitempty"`
	// FailOn is error, warning or none.
	FailOn string `yaml:"fail_on"`
}

// TemporalConfig registers custom reference systems and units.
type TemporalConfig struct {
	Units           []UnitConfig           `yaml:"units,omitempty"`
	Calendars       []CalendarConfig       `yaml:"calendars,omitempty"`
	PositionSystems []PositionSystemConfig `yaml:"position_systems,omitempty"`
}

// UnitConfig describes a temporal unit as a multiple of a base unit type.
type UnitConfig struct {
	IRI    string  `yaml:"iri"`
	Type   string  `yaml:"type"`
	Factor float64 `yaml:"factor,omitempty"`
}

// CalendarConfig describes a calendar reference system.
type CalendarConfig struct {
	IRI             string    `yaml:"iri"`
	Name            string    `yaml:"name,omitempty"`
	Epoch           time.Time `yaml:"epoch"`
	EpochYear       int       `yaml:"epoch_year"`
	SecondsInMinute int       `yaml:"seconds_in_minute"`
	MinutesInHour   int       `yaml:"minutes_in_hour"`
	HoursInDay      int       `yaml:"hours_in_day"`
	DaysInWeek      int       `yaml:"days_in_week"`
	MonthDays       []int     `yaml:"month_days"`
	LeapYearRule    string    `yaml:"leap_year_rule,omitempty"`
	LeapMonth       int       `yaml:"leap_month,omitempty"`
	MonthNames      []string  `yaml:"month_names,omitempty"`
	DayNames        []string  `yaml:"day_names,omitempty"`
	EpochWeekday    int       `yaml:"epoch_weekday,omitempty"`
}

// PositionSystemConfig describes a numeric position reference system.
type PositionSystemConfig struct {
	IRI    string    `yaml:"iri"`
	Name   string    `yaml:"name,omitempty"`
	Origin time.Time `yaml:"origin"`
	Unit   string    `yaml:"unit"`
}

// OutputConfig holds report output settings.
type OutputConfig struct {
	Format  string `yaml:"format"`
	Profile string `yaml:"profile"`
}

// NATSConfig holds NATS publishing settings. An empty URL disables publishing.
type NATSConfig struct {
	URL     string        `yaml:"url,omitempty"`
	Subject string        `yaml:"subject"`
	Timeout time.Duration `yaml:"timeout"`
	// Store keeps every report in the SEMOWL_REPORTS KV bucket as well.
	Store bool `yaml:"store,omitempty"`
}

// WatchConfig holds file watching settings.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Formats lists the accepted output formats.
var Formats = []string{"table", "json", "yaml", "turtle", "ntriples", "jsonld"}

// Profiles lists the accepted export profiles.
var Profiles = []string{"minimal", "bfo", "cco"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Validator: ValidatorConfig{
			FailOn: "error",
		},
		Output: OutputConfig{
			Format:  "table",
			Profile: "minimal",
		},
		NATS: NATSConfig{
			Subject: "semowl.reports",
			Timeout: 5 * time.Second,
		},
		Watch: WatchConfig{
			Debounce: 250 * time.Millisecond,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := c.Validator.RuleIDs(); err != nil {
		return err
	}
	if _, _, err := c.Validator.Threshold(); err != nil {
		return err
	}
	if !contains(Formats, c.Output.Format) {
		return fmt.Errorf("output.format %q is not one of %s", c.Output.Format, strings.Join(Formats, ", "))
	}
	if !contains(Profiles, c.Output.Profile) {
		return fmt.Errorf("output.profile %q is not one of %s", c.Output.Profile, strings.Join(Profiles, ", "))
	}
	if c.NATS.URL != "" && c.NATS.Subject == "" {
		return errors.New("nats.subject is required when nats.url is set")
	}
	if c.NATS.Store && c.NATS.URL == "" {
		return errors.New("nats.store requires nats.url")
	}
	if c.NATS.Timeout < 0 {
		return errors.New("nats.timeout must not be negative")
	}
	if c.Watch.Debounce < 0 {
		return errors.New("watch.debounce must not be negative")
	}
	// Dry run so bad calendars fail at load time rather than on first use.
	if err := c.Temporal.Apply(owltime.NewRegistry()); err != nil {
		return fmt.Errorf("temporal: %w", err)
	}
	return nil
}

// RuleIDs resolves the configured rule names. A nil slice means all rules.
func (v ValidatorConfig) RuleIDs() ([]rules.ID, error) {
	if len(v.Rules) == 0 {
		return nil, nil
	}
	ids := make([]rules.ID, 0, len(v.Rules))
	for _, name := range v.Rules {
		id, err := rules.ParseID(name)
		if err != nil {
			return nil, fmt.Errorf("validator.rules: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Threshold returns the severity that fails a run. ok is false for "none".
func (v ValidatorConfig) Threshold() (report.Severity, bool, error) {
	if strings.EqualFold(strings.TrimSpace(v.FailOn), "none") {
		return 0, false, nil
	}
	s, err := report.ParseSeverity(v.FailOn)
	if err != nil {
		return 0, false, fmt.Errorf("validator.fail_on: %w", err)
	}
	return s, true, nil
}

// Apply registers the configured units, calendars and position systems in
// reg. Units go first so position systems can count in custom units.
func (t TemporalConfig) Apply(reg *owltime.Registry) error {
	for _, u := range t.Units {
		typ, err := owltime.ParseUnitType(u.Type)
		if err != nil {
			return fmt.Errorf("unit %s: %w", u.IRI, err)
		}
		if err := reg.AddUnit(owltime.Unit{IRI: u.IRI, Type: typ, Factor: u.Factor}); err != nil {
			return err
		}
	}
	for _, c := range t.Calendars {
		cal, err := c.calendar()
		if err != nil {
			return err
		}
		if err := reg.AddTRS(cal); err != nil {
			return err
		}
	}
	for _, p := range t.PositionSystems {
		if err := reg.AddTRS(&owltime.PositionSystem{
			IRI:    p.IRI,
			Name:   p.Name,
			Origin: p.Origin.UTC(),
			Unit:   p.Unit,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (c CalendarConfig) calendar() (*owltime.Calendar, error) {
	rule, err := owltime.ParseLeapYearRule(c.LeapYearRule)
	if err != nil {
		return nil, fmt.Errorf("calendar %s: %w", c.IRI, err)
	}
	return &owltime.Calendar{
		IRI:       c.IRI,
		Name:      c.Name,
		Epoch:     c.Epoch.UTC(),
		EpochYear: c.EpochYear,
		Metrics: owltime.CalendarMetrics{
			SecondsInMinute: c.SecondsInMinute,
			MinutesInHour:   c.MinutesInHour,
			HoursInDay:      c.HoursInDay,
			DaysInWeek:      c.DaysInWeek,
			MonthDays:       c.MonthDays,
			LeapYearRule:    rule,
			LeapMonth:       c.LeapMonth,
		},
		MonthNames:   c.MonthNames,
		DayNames:     c.DayNames,
		EpochWeekday: c.EpochWeekday,
	}, nil
}

// LoadFromFile loads configuration from a YAML file. Settings the file
// leaves out keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	layer, err := readLayer(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Merge(layer)
	return cfg, nil
}

// readLayer parses a YAML file without applying defaults, so that merging
// it only overrides what the file sets.
func readLayer(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	layer := &Config{}
	if err := yaml.Unmarshal(data, layer); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return layer, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one.
// Non-zero values from other override values in c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if len(other.Validator.Rules) > 0 {
		c.Validator.Rules = other.Validator.Rules
	}
	if other.Validator.FailOn != "" {
		c.Validator.FailOn = other.Validator.FailOn
	}

	// Reference systems accumulate across layers; later layers replace
	// earlier entries with the same IRI when applied.
	c.Temporal.Units = append(c.Temporal.Units, other.Temporal.Units...)
	c.Temporal.Calendars = append(c.Temporal.Calendars, other.Temporal.Calendars...)
	c.Temporal.PositionSystems = append(c.Temporal.PositionSystems, other.Temporal.PositionSystems...)

	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Profile != "" {
		c.Output.Profile = other.Output.Profile
	}

	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Subject != "" {
		c.NATS.Subject = other.NATS.Subject
	}
	if other.NATS.Timeout != 0 {
		c.NATS.Timeout = other.NATS.Timeout
	}
	if other.NATS.Store {
		c.NATS.Store = true
	}

	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
