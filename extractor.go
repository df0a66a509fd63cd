package main

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DefaultShippingPrefix marks a fragment as the shipping costs of the preceding price
const DefaultShippingPrefix = "+"

// OrderingError is returned when shipping costs are found before any price
type OrderingError struct {
	Text string
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("shipping costs '%s' found without a preceding price", e.Text)
}

// Extractor turns the fragments of a page into a list of prices
type Extractor struct {
	parser         *PriceParser
	shippingPrefix string
}

// NewExtractor to create an Extractor
func NewExtractor(parser *PriceParser, shippingPrefix string) *Extractor {
	if shippingPrefix == "" {
		shippingPrefix = DefaultShippingPrefix
	}
	return &Extractor{parser: parser, shippingPrefix: shippingPrefix}
}

// ExtractPrices folds fragments in document order. Any fragment other than a
// shipping one appends a new price; a shipping fragment sets the shipping costs
// of the last appended price, replacing earlier ones.
func (e *Extractor) ExtractPrices(fragments []string) ([]Price, error) {
	var prices []Price

	for _, fragment := range fragments {
		shipping := e.isShipping(fragment)
		if shipping && len(prices) == 0 {
			return nil, &OrderingError{Text: fragment}
		}

		amount, err := e.parser.ParsePrice(fragment)
		if err != nil {
			return nil, err
		}

		if shipping {
			prices[len(prices)-1].Shipping = amount
			continue
		}
		prices = append(prices, Price{Base: amount})
	}

	log.Debugf("extracted %d prices from %d fragments", len(prices), len(fragments))
	return prices, nil
}

func (e *Extractor) isShipping(fragment string) bool {
	return strings.HasPrefix(strings.TrimSpace(fragment), e.shippingPrefix)
}
