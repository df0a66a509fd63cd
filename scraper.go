package main

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// PriceScraper interface to look up the prices of a phone
type PriceScraper interface {
	LookupPrice(ctx context.Context, info PhoneInfo) (*Phone, error)
}

// Scraper looks up prices on the search engine described by a SourceConfig
type Scraper struct {
	source    SourceConfig
	fetcher   Fetcher
	currency  *regexp.Regexp
	filters   []Filter
	extractor *Extractor
	deviation float64
}

// NewScraper creates a Scraper for a source
func NewScraper(source SourceConfig, fetcher Fetcher, deviation float64) (*Scraper, error) {
	if err := source.Validate(); err != nil {
		return nil, err
	}

	currency, err := regexp.Compile(source.CurrencyPattern)
	if err != nil {
		return nil, err
	}

	parser, err := NewPriceParser(source.NumberFormat)
	if err != nil {
		return nil, err
	}

	includeFilter, err := NewIncludeFilter(source.IncludeRegex)
	if err != nil {
		return nil, err
	}
	excludeFilter, err := NewExcludeFilter(source.ExcludeRegex)
	if err != nil {
		return nil, err
	}

	if source.Name == "" {
		source.Name, err = ExtractSourceName(source.SearchURL)
		if err != nil {
			return nil, err
		}
	}

	if deviation <= 0 {
		deviation = DefaultOutlierDeviation
	}

	return &Scraper{
		source:    source,
		fetcher:   fetcher,
		currency:  currency,
		filters:   []Filter{includeFilter, excludeFilter},
		extractor: NewExtractor(parser, source.ShippingPrefix),
		deviation: deviation,
	}, nil
}

// SearchURL returns the search URL for a phone
// spaces in the model name are replaced by "+"
func (s *Scraper) SearchURL(info PhoneInfo) string {
	return strings.ReplaceAll(s.source.SearchURL, QueryPlaceholder, url.QueryEscape(info.ModelName))
}

// LookupPrice fetches the search results of a phone and extracts its prices
// Implements the PriceScraper interface
func (s *Scraper) LookupPrice(ctx context.Context, info PhoneInfo) (*Phone, error) {
	log.Infof("looking up price for '%s'", info.ModelName)

	page, err := s.fetcher.Fetch(ctx, s.SearchURL(info))
	if err != nil {
		return nil, err
	}

	fragments, err := ExtractFragments(page, s.currency)
	if err != nil {
		return nil, err
	}
	log.Debugf("found %d fragments matching '%s'", len(fragments), s.source.CurrencyPattern)

	prices, err := s.extractor.ExtractPrices(applyFilters(fragments, s.filters))
	if err != nil {
		return nil, fmt.Errorf("cannot extract prices for '%s': %w", info.ModelName, err)
	}

	phone := &Phone{Info: info, Prices: prices, Deviation: s.deviation}
	log.Infof("determined price range of %s - %s", formatAmount(phone.Cheapest()), formatAmount(phone.MostExpensive()))
	return phone, nil
}

// String to print Scraper
func (s *Scraper) String() string {
	return fmt.Sprintf("Scraper<%s@%s>", s.source.Name, s.fetcher)
}
