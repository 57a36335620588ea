// Package http provides the HTTP handler layer for the offer normalization API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/travel-checkout/offer-normalization-engine/internal/domain"
)

// EnhanceOffersRequest represents the request body for offer enhancement.
// Raw offer payloads are passed through unchanged from the upstream pricing
// provider; the engine treats every substructure as optional.
type EnhanceOffersRequest struct {
	// FlightOffers are the raw priced flight offers to normalize
	FlightOffers []domain.RawFlightOffer `json:"flightOffers,omitempty"`

	// HotelOffers are the raw priced hotel offers to normalize
	HotelOffers []domain.RawHotelOffer `json:"hotelOffers,omitempty"`

	// Ratings maps hotel ids to sentiment payloads, when already fetched
	Ratings domain.RatingsMap `json:"ratings,omitempty"`

	// PreferredCurrency overrides the configured display currency
	PreferredCurrency string `json:"preferredCurrency,omitempty"`

	// Locale overrides the configured display locale
	Locale string `json:"locale,omitempty"`
}

// AggregateRequirementsRequest represents the request body for booking
// requirements aggregation.
type AggregateRequirementsRequest struct {
	// FlightOffers are the raw flight offers whose booking requirements
	// should be merged
	FlightOffers []domain.RawFlightOffer `json:"flightOffers"`
}

// CheckoutSummaryRequest represents the request body for checkout assembly.
type CheckoutSummaryRequest struct {
	// FlightOfferIDs identify the flight offers to confirm and price
	FlightOfferIDs []string `json:"flightOfferIds,omitempty"`

	// HotelOfferIDs identify the hotel offers to confirm and price
	HotelOfferIDs []string `json:"hotelOfferIds,omitempty"`

	// PreferredCurrency overrides the configured display currency
	PreferredCurrency string `json:"preferredCurrency,omitempty"`

	// Locale overrides the configured display locale
	Locale string `json:"locale,omitempty"`
}

// currencyCodePattern validates 3-letter ISO 4217 currency codes.
var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the enhancement request and returns any validation errors.
func (r *EnhanceOffersRequest) Validate() error {
	errs := &ValidationErrors{}

	if len(r.FlightOffers) == 0 && len(r.HotelOffers) == 0 {
		errs.Add("flightOffers", "at least one flight or hotel offer is required")
	}

	validatePreferredCurrency(errs, &r.PreferredCurrency)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the aggregation request. An empty offer list is valid
// and yields the zero requirement set.
func (r *AggregateRequirementsRequest) Validate() error {
	return nil
}

// Validate validates the checkout request and returns any validation errors.
func (r *CheckoutSummaryRequest) Validate() error {
	errs := &ValidationErrors{}

	if len(r.FlightOfferIDs) == 0 && len(r.HotelOfferIDs) == 0 {
		errs.Add("flightOfferIds", "at least one offer id is required")
	}

	for i, id := range r.FlightOfferIDs {
		if id == "" {
			errs.Add(fmt.Sprintf("flightOfferIds[%d]", i), "offer id cannot be empty")
		}
	}
	for i, id := range r.HotelOfferIDs {
		if id == "" {
			errs.Add(fmt.Sprintf("hotelOfferIds[%d]", i), "offer id cannot be empty")
		}
	}

	validatePreferredCurrency(errs, &r.PreferredCurrency)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validatePreferredCurrency checks the optional currency override and
// normalizes it to uppercase.
func validatePreferredCurrency(errs *ValidationErrors, currency *string) {
	if *currency == "" {
		return
	}

	normalized := strings.ToUpper(*currency)
	if !currencyCodePattern.MatchString(normalized) {
		errs.Add("preferredCurrency", "preferredCurrency must be a 3-letter ISO 4217 code")
		return
	}
	*currency = normalized
}
