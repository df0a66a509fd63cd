package main

import (
	"context"
	"fmt"
)

// Fetcher interface to download a search results page
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
	String() string
}

// Supported fetcher drivers
const (
	HTTPDriver    = "http"
	BrowserDriver = "browser"
)

// NewFetcherFromConfig creates the Fetcher matching the source driver
func NewFetcherFromConfig(source SourceConfig, browserAddress string) (Fetcher, error) {
	switch source.Driver {
	case "", HTTPDriver:
		return NewHTTPFetcher(source.UserAgent, source.Timeout), nil
	case BrowserDriver:
		if browserAddress == "" {
			return nil, fmt.Errorf("browser address required for source %s", source.Name)
		}
		return NewBrowserFetcher(browserAddress), nil
	default:
		return nil, fmt.Errorf("driver %s not supported (expect one of %s, %s)", source.Driver, HTTPDriver, BrowserDriver)
	}
}
