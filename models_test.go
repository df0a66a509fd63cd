package main

import (
	"fmt"
	"testing"
)

func TestPhonePriceRange(t *testing.T) {
	tests := []struct {
		prices        []Price
		cheapest      float64
		mostExpensive float64
	}{
		{nil, 0, 0},
		{[]Price{}, 0, 0},
		{pricesOf(100, 102, 98, 1000), 0, 0}, // everything is an outlier
		{pricesOf(100, 100, 100, 400), 100, 100},
		{pricesOf(300, 320, 900, 310, 20), 300, 320},
		{[]Price{{Base: 200, Shipping: 10}, {Base: 190}, {Base: 205, Shipping: 4}}, 190, 210},
		{pricesOf(499), 499, 499},
	}

	for i, tc := range tests {
		t.Run(fmt.Sprintf("TestPhonePriceRange#%d", i), func(t *testing.T) {
			phone := NewPhone(PhoneInfo{ModelName: "Pixel 4"}, tc.prices)
			cheapest, mostExpensive := phone.Cheapest(), phone.MostExpensive()
			if cheapest != tc.cheapest || mostExpensive != tc.mostExpensive {
				t.Errorf("for %v: got [%v-%v], want [%v-%v]", tc.prices, cheapest, mostExpensive, tc.cheapest, tc.mostExpensive)
			} else {
				t.Logf("for %v: got [%v-%v]", tc.prices, cheapest, mostExpensive)
			}
		})
	}
}

func TestPhoneDeviation(t *testing.T) {
	prices := pricesOf(100, 100, 100, 400)
	phone := &Phone{Info: PhoneInfo{ModelName: "Pixel 4"}, Prices: prices, Deviation: 2}
	if got := phone.MostExpensive(); got != 400 {
		t.Errorf("with deviation 2: got %v, want 400", got)
	}
	phone.Deviation = 0
	if got := phone.MostExpensive(); got != 100 {
		t.Errorf("with default deviation: got %v, want 100", got)
	}
}

func TestPriceString(t *testing.T) {
	tests := []struct {
		price    Price
		expected string
	}{
		{Price{Base: 19.99, Shipping: 4.99}, "19.99 + 4.99"},
		{Price{Base: 349}, "349"},
		{Price{Base: 19.99}, "19"},
	}

	for i, tc := range tests {
		t.Run(fmt.Sprintf("TestPriceString#%d", i), func(t *testing.T) {
			if got := tc.price.String(); got != tc.expected {
				t.Errorf("got %s, want %s", got, tc.expected)
			}
		})
	}
}

func TestPhoneString(t *testing.T) {
	phone := NewPhone(PhoneInfo{ModelName: "Galaxy S10"}, pricesOf(500, 520.5))
	expected := "Galaxy S10 500 - 520.5"
	if got := phone.String(); got != expected {
		t.Errorf("got %s, want %s", got, expected)
	}
}
