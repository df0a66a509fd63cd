package main

import (
	"fmt"
	"testing"
)

func TestExcludeFilter(t *testing.T) {
	tests := []struct {
		regex    string // exclusive regex
		fragment string // text fragment
		included bool   // should be included or not
	}{
		{"(?i)versandkosten", "+ 4,99 € Versandkosten", false},
		{"(?i)versandkosten", "19,99 €", true},
		{"", "+ 4,99 € Versandkosten", true}, // do nothing when the exclude regex is empty
	}

	for i, tc := range tests {
		t.Run(fmt.Sprintf("TestExcludeFilter#%d", i), func(t *testing.T) {
			filter, err := NewExcludeFilter(tc.regex)
			if err != nil {
				t.Fatalf("cannot create filter with regex '%s': %s", tc.regex, err)
			}

			included := filter.Include(tc.fragment)

			if included != tc.included {
				t.Errorf("regex '%s' for fragment '%s': got included=%t, want included=%t", tc.regex, tc.fragment, included, tc.included)
			} else {
				if included {
					t.Logf("regex '%s' includes fragment '%s'", tc.regex, tc.fragment)
				} else {
					t.Logf("regex '%s' excludes fragment '%s'", tc.regex, tc.fragment)
				}
			}
		})
	}
}

func TestIncludeFilter(t *testing.T) {
	tests := []struct {
		regex    string // inclusive regex
		fragment string // text fragment
		included bool   // should be included or not
	}{
		{`\d`, "19,99 €", true},
		{`\d`, "€", false},
		{"", "€", true}, // do nothing when the include regex is empty
	}

	for i, tc := range tests {
		t.Run(fmt.Sprintf("TestIncludeFilter#%d", i), func(t *testing.T) {
			filter, err := NewIncludeFilter(tc.regex)
			if err != nil {
				t.Fatalf("cannot create filter with regex '%s': %s", tc.regex, err)
			}
			if included := filter.Include(tc.fragment); included != tc.included {
				t.Errorf("regex '%s' for fragment '%s': got included=%t, want included=%t", tc.regex, tc.fragment, included, tc.included)
			}
		})
	}
}

func TestApplyFilters(t *testing.T) {
	include, _ := NewIncludeFilter(`\d`)
	exclude, _ := NewExcludeFilter("(?i)versand")
	fragments := []string{"19,99 €", "€", "+ 4,99 € Versand", "29,99 €"}

	got := applyFilters(fragments, []Filter{include, exclude})
	expected := []string{"19,99 €", "29,99 €"}
	if fmt.Sprint(got) != fmt.Sprint(expected) {
		t.Errorf("got %q, want %q", got, expected)
	}

	if got := applyFilters(fragments, nil); len(got) != len(fragments) {
		t.Errorf("without filters: got %q, want %q", got, fragments)
	}
}

func TestInvalidFilterRegex(t *testing.T) {
	if _, err := NewIncludeFilter("("); err == nil {
		t.Errorf("include filter: got no error for an invalid regex")
	}
	if _, err := NewExcludeFilter("("); err == nil {
		t.Errorf("exclude filter: got no error for an invalid regex")
	}
}
