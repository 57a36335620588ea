// Package http provides the HTTP handler layer for the offer normalization API.
package http

import (
	"strings"

	"github.com/travel-checkout/offer-normalization-engine/internal/usecase"
)

// ToTransformOptions converts request display preferences to
// usecase.TransformOptions, falling back to the configured defaults.
func ToTransformOptions(currency, locale string, defaults usecase.TransformOptions) usecase.TransformOptions {
	opts := defaults

	if currency != "" {
		opts.PreferredCurrency = strings.ToUpper(currency)
	}
	if locale != "" {
		opts.Locale = locale
	}

	return opts
}

// ToCheckoutSelection converts a CheckoutSummaryRequest to a
// usecase.CheckoutSelection.
func ToCheckoutSelection(req *CheckoutSummaryRequest) usecase.CheckoutSelection {
	return usecase.CheckoutSelection{
		FlightOfferIDs: req.FlightOfferIDs,
		HotelOfferIDs:  req.HotelOfferIDs,
	}
}
