package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

// HTTPFetcher downloads pages with plain HTTP requests
type HTTPFetcher struct {
	client    *resty.Client
	userAgent string
}

// NewHTTPFetcher creates an HTTPFetcher
// A timeout of 0 second disables the timeout
func NewHTTPFetcher(userAgent string, timeout int) *HTTPFetcher {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(time.Duration(timeout) * time.Second)
	}
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &HTTPFetcher{
		client:    client,
		userAgent: userAgent,
	}
}

// Fetch returns the body of the page
// Implements the Fetcher interface
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	log.Debugf("requesting %s", url)
	res, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to request %s: %w", url, err)
	}
	if res.IsError() {
		log.Debugf("%s", res.Body())
		return "", fmt.Errorf("%s returned %d", url, res.StatusCode())
	}
	return string(res.Body()), nil
}

// String to print HTTPFetcher
// Implements the Fetcher interface
func (f *HTTPFetcher) String() string {
	if f.userAgent == "" {
		return "HTTPFetcher"
	}
	return fmt.Sprintf("HTTPFetcher<%s>", f.userAgent)
}
