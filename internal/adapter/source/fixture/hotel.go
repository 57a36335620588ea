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

// HotelSourceName is the unique identifier for the fixture hotel source.
const HotelSourceName = "hotel_pricing"

// HotelSource serves priced hotel offers from a JSON fixture file. The
// fixture holds an array of hotel offer payloads; lookups match either a
// room offer id or the hotel id.
type HotelSource struct {
	path string

	once    sync.Once
	loadErr error
	offers  map[string]domain.RawHotelOffer
}

// NewHotelSource creates a HotelSource reading from the given fixture path.
// The file is not touched until the first pricing call.
func NewHotelSource(path string) *HotelSource {
	return &HotelSource{path: path}
}

// Name implements domain.HotelPricingSource.
func (s *HotelSource) Name() string {
	return HotelSourceName
}

// PriceHotelOffer implements domain.HotelPricingSource.
func (s *HotelSource) PriceHotelOffer(ctx context.Context, offerID string) (*domain.RawHotelOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.once.Do(s.load)
	if s.loadErr != nil {
		return nil, s.loadErr
	}

	offer, ok := s.offers[offerID]
	if !ok {
		return nil, retry.NewPermanent(fmt.Errorf("hotel offer %q not found", offerID))
	}

	return &offer, nil
}

// load reads and indexes the fixture file. A payload is indexed under every
// id that can select it so callers may reference either level.
func (s *HotelSource) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.loadErr = retry.NewPermanent(fmt.Errorf("read hotel fixture: %w", err))
		return
	}

	var offers []domain.RawHotelOffer
	if err := json.Unmarshal(data, &offers); err != nil {
		s.loadErr = retry.NewPermanent(fmt.Errorf("parse hotel fixture: %w", err))
		return
	}

	s.offers = make(map[string]domain.RawHotelOffer, len(offers))
	for _, offer := range offers {
		if offer.Hotel != nil && offer.Hotel.HotelID != "" {
			s.offers[offer.Hotel.HotelID] = offer
		}
		for _, detail := range offer.Offers {
			if detail.ID != "" {
				s.offers[detail.ID] = offer
			}
		}
	}

	log.Debug().
		Str("source", HotelSourceName).
		Str("path", s.path).
		Int("offers", len(s.offers)).
		Msg("Loaded hotel fixture")
}

// Ensure HotelSource implements the source interface at compile time.
var _ domain.HotelPricingSource = (*HotelSource)(nil)
