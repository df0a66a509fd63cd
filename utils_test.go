package main

import (
	"fmt"
	"testing"
)

func TestExtractSourceName(t *testing.T) {
	tests := []struct {
		link string // search url to parse
		name string // expected name
	}{
		{"https://www.google.com/search?q={query}&tbm=shop", "google.com"},
		{"https://www.idealo.de/preisvergleich/MainSearchProductCategory.html?q={query}", "idealo.de"},
		{"https://Geizhals.DE/?fs={query}", "geizhals.de"},
	}

	for i, tc := range tests {
		t.Run(fmt.Sprintf("TestExtractSourceName#%d", i), func(t *testing.T) {
			name, err := ExtractSourceName(tc.link)
			if err != nil {
				t.Errorf("for %s: got %s, want %s", tc.link, err, tc.name)
			} else if name != tc.name {
				t.Errorf("for %s: got %s, want %s", tc.link, name, tc.name)
			} else {
				t.Logf("for %s: got %s, want %s", tc.link, name, tc.name)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "0"},
		{100, "100"},
		{24.98, "24.98"},
		{1299.5, "1299.5"},
	}

	for i, tc := range tests {
		t.Run(fmt.Sprintf("TestFormatAmount#%d", i), func(t *testing.T) {
			got := formatAmount(tc.amount)
			if got != tc.expected {
				t.Errorf("for %v: got %s, want %s", tc.amount, got, tc.expected)
			} else {
				t.Logf("for %v: got %s, want %s", tc.amount, got, tc.expected)
			}
		})
	}
}
