package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MontFerret/ferret/pkg/compiler"
	"github.com/MontFerret/ferret/pkg/drivers"
	"github.com/MontFerret/ferret/pkg/drivers/cdp"
	"github.com/MontFerret/ferret/pkg/drivers/http"
	log "github.com/sirupsen/logrus"
)

// BrowserFetcher renders pages with a headless browser, for search engines
// building their results with JavaScript
type BrowserFetcher struct {
	address string
}

// NewBrowserFetcher creates a BrowserFetcher connected to a Chrome DevTools address
// ex: http://127.0.0.1:9222
func NewBrowserFetcher(address string) *BrowserFetcher {
	return &BrowserFetcher{address: address}
}

// Fetch returns the rendered page
// Implements the Fetcher interface
func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (string, error) {
	log.Debugf("creating context with headless browser drivers")
	ctx = drivers.WithContext(ctx, cdp.NewDriver(cdp.WithAddress(f.address)))
	ctx = drivers.WithContext(ctx, http.NewDriver(), drivers.AsDefault())

	program, err := compiler.New().Compile(createBodyQuery(url))
	if err != nil {
		return "", err
	}

	log.Debugf("rendering %s", url)
	out, err := program.Run(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", url, err)
	}

	var body string
	if err = json.Unmarshal(out, &body); err != nil {
		return "", fmt.Errorf("failed to decode rendered page %s: %w", url, err)
	}
	return "<html><body>" + body + "</body></html>", nil
}

// String to print BrowserFetcher
// Implements the Fetcher interface
func (f *BrowserFetcher) String() string {
	return fmt.Sprintf("BrowserFetcher<%s>", f.address)
}

// createBodyQuery returns the FQL query extracting the page body once rendered
func createBodyQuery(url string) string {
	q := `
LET doc = DOCUMENT('` + strings.ReplaceAll(url, "'", `\'`) + `', {driver: "cdp"})
RETURN INNER_HTML(ELEMENT(doc, "body"))
`
	return q
}
