package main

import (
	"fmt"
)

// PhoneInfo describes a device as listed in the input file
type PhoneInfo struct {
	Manufacturer       string
	ModelName          string
	ModelCode          string
	RAM                string
	FormFactor         string
	SoC                string
	ScreenSizes        string
	ScreenDensities    string
	ABIs               string
	AndroidSDKVersions string
	OpenGLESVersions   string
}

// Price is a single listing found for a phone
type Price struct {
	Base     float64
	Shipping float64
}

// Total returns the base price plus shipping costs
func (p Price) Total() float64 {
	return p.Base + p.Shipping
}

// String to print a Price nicely
func (p Price) String() string {
	if p.Shipping > 0 {
		return fmt.Sprintf("%.2f + %.2f", p.Base, p.Shipping)
	}
	return fmt.Sprintf("%d", int64(p.Base))
}

// Phone pairs a device with the prices scraped for it
type Phone struct {
	Info      PhoneInfo
	Prices    []Price
	Deviation float64 // outlier deviation, DefaultOutlierDeviation when zero
}

// NewPhone creates a Phone using the default outlier deviation
func NewPhone(info PhoneInfo, prices []Price) *Phone {
	return &Phone{
		Info:      info,
		Prices:    prices,
		Deviation: DefaultOutlierDeviation,
	}
}

// Normalized returns prices without outliers
func (p *Phone) Normalized() []Price {
	deviation := p.Deviation
	if deviation == 0 {
		deviation = DefaultOutlierDeviation
	}
	return RemoveOutliers(p.Prices, deviation)
}

// Cheapest returns the lowest total price once outliers are removed, 0 without prices
func (p *Phone) Cheapest() float64 {
	return foldTotals(p.Normalized(), func(a, b float64) bool { return a < b })
}

// MostExpensive returns the highest total price once outliers are removed, 0 without prices
func (p *Phone) MostExpensive() float64 {
	return foldTotals(p.Normalized(), func(a, b float64) bool { return a > b })
}

// String to print a Phone with its price range
func (p *Phone) String() string {
	return fmt.Sprintf("%s %s - %s", p.Info.ModelName, formatAmount(p.Cheapest()), formatAmount(p.MostExpensive()))
}

// foldTotals keeps the total for which better(total, kept) holds
func foldTotals(prices []Price, better func(float64, float64) bool) float64 {
	if len(prices) == 0 {
		return 0
	}
	kept := prices[0].Total()
	for _, price := range prices[1:] {
		if total := price.Total(); better(total, kept) {
			kept = total
		}
	}
	return kept
}
