package domain

import "context"

// Collaborator source interfaces. The engine itself never performs network
// I/O; implementations live at the boundary (fixture adapters in this repo,
// remote clients elsewhere) and are invoked concurrently by the checkout
// assembly before any transformation runs.

// FlightPricingSource prices a selected flight offer.
type FlightPricingSource interface {
	// Name returns the source's unique identifier for logging and errors.
	Name() string

	// PriceFlightOffer returns the confirmed raw offer payload for the id.
	// Implementations must respect context cancellation.
	PriceFlightOffer(ctx context.Context, offerID string) (*RawFlightOffer, error)
}

// HotelPricingSource prices a selected hotel offer.
type HotelPricingSource interface {
	Name() string

	// PriceHotelOffer returns the confirmed raw offer payload for the id.
	PriceHotelOffer(ctx context.Context, offerID string) (*RawHotelOffer, error)
}

// HotelRatingsSource fetches guest ratings for a set of hotels.
type HotelRatingsSource interface {
	Name() string

	// RatingsByHotelIDs returns ratings keyed by hotel id. Missing entries
	// mean no rating was fetched for that hotel, which is distinct from an
	// entry with Unavailable set.
	RatingsByHotelIDs(ctx context.Context, hotelIDs []string) (RatingsMap, error)
}
