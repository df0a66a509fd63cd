package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"regexp"
	"strings"
)

// QueryPlaceholder is replaced by the escaped model name in search URLs
const QueryPlaceholder = "{query}"

// Config to store JSON configuration
type Config struct {
	Source           SourceConfig `json:"source"`
	BrowserAddress   string       `json:"browser_address"`
	OutlierDeviation float64      `json:"outlier_deviation"`
}

// SourceConfig describes where and how prices are scraped
type SourceConfig struct {
	Name            string `json:"name"`
	SearchURL       string `json:"search_url"`
	CurrencyPattern string `json:"currency_pattern"`
	NumberFormat
	ShippingPrefix string `json:"shipping_prefix"`
	IncludeRegex   string `json:"include_regex"`
	ExcludeRegex   string `json:"exclude_regex"`
	Driver         string `json:"driver"`
	UserAgent      string `json:"user_agent"`
	Timeout        int    `json:"timeout"`
}

// GermanGoogleShopping searches Google Shopping and reads prices in euros
var GermanGoogleShopping = SourceConfig{
	Name:            "google.de",
	SearchURL:       "https://www.google.com/search?q=" + QueryPlaceholder + "&tbm=shop",
	CurrencyPattern: "€",
	NumberFormat:    GermanNumberFormat,
	ShippingPrefix:  DefaultShippingPrefix,
	Driver:          HTTPDriver,
}

// NewConfig creates a Config struct with default values
func NewConfig() *Config {
	return &Config{
		Source:           GermanGoogleShopping,
		OutlierDeviation: DefaultOutlierDeviation,
	}
}

// Read Config from configuration file
// Values missing from the file keep their defaults
func (c *Config) Read(file string) error {
	file, err := filepath.Abs(file)
	if err != nil {
		return err
	}

	jsonFile, err := ioutil.ReadFile(file)
	if err != nil {
		return err
	}

	err = json.Unmarshal(jsonFile, &c)
	if err != nil {
		return err
	}
	return c.Validate()
}

// Validate returns an error when the configuration cannot be used
func (c *Config) Validate() error {
	if c.OutlierDeviation <= 0 {
		return fmt.Errorf("outlier_deviation must be positive (got %v)", c.OutlierDeviation)
	}
	return c.Source.Validate()
}

// Validate returns an error when the source cannot be scraped
func (s *SourceConfig) Validate() error {
	if !strings.Contains(s.SearchURL, QueryPlaceholder) {
		return fmt.Errorf("search_url of source %s must contain %s", s.Name, QueryPlaceholder)
	}
	if s.CurrencyPattern == "" {
		return fmt.Errorf("currency_pattern of source %s is required", s.Name)
	}
	for _, regex := range []string{s.CurrencyPattern, s.IncludeRegex, s.ExcludeRegex} {
		if _, err := regexp.Compile(regex); err != nil {
			return fmt.Errorf("invalid regex for source %s: %w", s.Name, err)
		}
	}
	if s.Thousands == s.Decimal {
		return fmt.Errorf("thousands and decimal separators of source %s must differ", s.Name)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("timeout of source %s cannot be negative", s.Name)
	}
	switch s.Driver {
	case "", HTTPDriver, BrowserDriver:
		return nil
	default:
		return fmt.Errorf("driver %s not supported (expect one of %s, %s)", s.Driver, HTTPDriver, BrowserDriver)
	}
}
