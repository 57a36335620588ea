// Package usecase contains the business logic for offer normalization.
// It turns heterogeneous raw provider payloads into canonical records and
// orchestrates the checkout assembly over external pricing collaborators.
package usecase

import "github.com/travel-checkout/offer-normalization-engine/internal/domain"

// TransformOptions contains the caller preferences threaded through every
// transformation entry point. Currency preference is always explicit; the
// transformer never reads ambient state.
type TransformOptions struct {
	// PreferredCurrency is the ISO 4217 code prices are converted to
	PreferredCurrency string

	// Locale controls number grouping when formatting prices
	Locale string
}

// DefaultTransformOptions returns TransformOptions with sensible defaults.
func DefaultTransformOptions() TransformOptions {
	return TransformOptions{
		PreferredCurrency: domain.DefaultCurrency,
		Locale:            domain.DefaultLocale,
	}
}

// normalize fills in defaults for unset fields.
func (o TransformOptions) normalize() TransformOptions {
	if o.PreferredCurrency == "" {
		o.PreferredCurrency = domain.DefaultCurrency
	}
	if o.Locale == "" {
		o.Locale = domain.DefaultLocale
	}
	return o
}
