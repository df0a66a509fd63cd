package main

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var leadingWWW = regexp.MustCompile(`^www\.`)

// ExtractSourceName parses a search URL to extract the hostname, then remove leading www
// "https://www.google.com/search?q={query}&tbm=shop" -> "google.com"
func ExtractSourceName(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", err
	}
	return strings.ToLower(leadingWWW.ReplaceAllString(u.Hostname(), "")), nil
}

// formatAmount prints an amount in its shortest form ("24.98", "100", "0")
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
