// Package fixture provides file-backed implementations of the pricing and
// ratings source interfaces. Each source reads a JSON fixture once, lazily,
// and serves lookups from memory. They stand in for remote provider clients
// and keep the assembly path fully exercisable without network access.
package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/travel-checkout/offer-normalization-engine/internal/domain"
	"github.com/travel-checkout/offer-normalization-engine/internal/infrastructure/retry"
)

// FlightSourceName is the unique identifier for the fixture flight source.
const FlightSourceName = "flight_pricing"

// FlightSource serves priced flight offers from a JSON fixture file. The
// fixture holds an array of raw flight offers; lookups are by offer id.
type FlightSource struct {
	path string

	once    sync.Once
	loadErr error
	offers  map[string]domain.RawFlightOffer
}

// NewFlightSource creates a FlightSource reading from the given fixture path.
// The file is not touched until the first pricing call.
func NewFlightSource(path string) *FlightSource {
	return &FlightSource{path: path}
}

// Name implements domain.FlightPricingSource.
func (s *FlightSource) Name() string {
	return FlightSourceName
}

// PriceFlightOffer implements domain.FlightPricingSource.
func (s *FlightSource) PriceFlightOffer(ctx context.Context, offerID string) (*domain.RawFlightOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.once.Do(s.load)
	if s.loadErr != nil {
		return nil, s.loadErr
	}

	offer, ok := s.offers[offerID]
	if !ok {
		// An unknown id will not become known on retry
		return nil, retry.NewPermanent(fmt.Errorf("flight offer %q not found", offerID))
	}

	return &offer, nil
}

// load reads and indexes the fixture file.
func (s *FlightSource) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.loadErr = retry.NewPermanent(fmt.Errorf("read flight fixture: %w", err))
		return
	}

	var offers []domain.RawFlightOffer
	if err := json.Unmarshal(data, &offers); err != nil {
		s.loadErr = retry.NewPermanent(fmt.Errorf("parse flight fixture: %w", err))
		return
	}

	s.offers = make(map[string]domain.RawFlightOffer, len(offers))
	for _, offer := range offers {
		if offer.ID != "" {
			s.offers[offer.ID] = offer
		}
	}

	log.Debug().
		Str("source", FlightSourceName).
		Str("path", s.path).
		Int("offers", len(s.offers)).
		Msg("Loaded flight fixture")
}

// Ensure FlightSource implements the source interface at compile time.
var _ domain.FlightPricingSource = (*FlightSource)(nil)
