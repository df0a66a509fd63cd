package main

import (
	"fmt"
	"regexp"
	"strconv"
)

// NumberFormat describes how a locale writes decimal numbers
type NumberFormat struct {
	Thousands string `json:"thousands_separator"`
	Decimal   string `json:"decimal_separator"`
}

// GermanNumberFormat groups thousands with "." and separates the fraction with ","
var GermanNumberFormat = NumberFormat{Thousands: ".", Decimal: ","}

// ParseError is returned when a text fragment doesn't contain any price
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no price found in '%s'", e.Text)
}

// PriceParser converts text fragments to amounts
type PriceParser struct {
	format  NumberFormat
	pattern *regexp.Regexp
	digits  *regexp.Regexp
}

// NewPriceParser to create a PriceParser for a number format
func NewPriceParser(format NumberFormat) (*PriceParser, error) {
	if format.Thousands == format.Decimal {
		return nil, fmt.Errorf("thousands and decimal separators must differ (got '%s')", format.Decimal)
	}
	expr := `(\d+`
	if format.Thousands != "" {
		expr += `(?:` + regexp.QuoteMeta(format.Thousands) + `\d+)*`
	}
	expr += `)`
	if format.Decimal != "" {
		expr += `(?:` + regexp.QuoteMeta(format.Decimal) + `(\d+))?`
	}
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &PriceParser{
		format:  format,
		pattern: pattern,
		digits:  regexp.MustCompile(`\d+`),
	}, nil
}

// ParsePrice returns the first amount found in text
func (p *PriceParser) ParsePrice(text string) (float64, error) {
	match := p.pattern.FindStringSubmatch(text)
	if match == nil {
		return 0, &ParseError{Text: text}
	}

	integer := ""
	for _, group := range p.digits.FindAllString(match[1], -1) {
		integer += group
	}
	fraction := "0"
	if len(match) > 2 && match[2] != "" {
		fraction = match[2]
	}

	amount, err := strconv.ParseFloat(integer+"."+fraction, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot convert '%s' to a price: %w", text, err)
	}
	return amount, nil
}

// String to print a PriceParser
func (p *PriceParser) String() string {
	return fmt.Sprintf("PriceParser<%s%s>", p.format.Thousands, p.format.Decimal)
}
