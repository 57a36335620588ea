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

// RatingsSourceName is the unique identifier for the fixture ratings source.
const RatingsSourceName = "hotel_ratings"

// RatingsSource serves hotel guest ratings from a JSON fixture file. The
// fixture is an object keyed by hotel id.
type RatingsSource struct {
	path string

	once    sync.Once
	loadErr error
	ratings domain.RatingsMap
}

// NewRatingsSource creates a RatingsSource reading from the given fixture
// path. The file is not touched until the first lookup.
func NewRatingsSource(path string) *RatingsSource {
	return &RatingsSource{path: path}
}

// Name implements domain.HotelRatingsSource.
func (s *RatingsSource) Name() string {
	return RatingsSourceName
}

// RatingsByHotelIDs implements domain.HotelRatingsSource. Hotels without a
// fixture entry are simply absent from the result, which downstream code
// treats as "rating never fetched".
func (s *RatingsSource) RatingsByHotelIDs(ctx context.Context, hotelIDs []string) (domain.RatingsMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.once.Do(s.load)
	if s.loadErr != nil {
		return nil, s.loadErr
	}

	result := make(domain.RatingsMap, len(hotelIDs))
	for _, id := range hotelIDs {
		if rating, ok := s.ratings[id]; ok {
			result[id] = rating
		}
	}

	return result, nil
}

// load reads the fixture file.
func (s *RatingsSource) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.loadErr = retry.NewPermanent(fmt.Errorf("read ratings fixture: %w", err))
		return
	}

	var ratings domain.RatingsMap
	if err := json.Unmarshal(data, &ratings); err != nil {
		s.loadErr = retry.NewPermanent(fmt.Errorf("parse ratings fixture: %w", err))
		return
	}

	s.ratings = ratings

	log.Debug().
		Str("source", RatingsSourceName).
		Str("path", s.path).
		Int("hotels", len(s.ratings)).
		Msg("Loaded ratings fixture")
}

// Ensure RatingsSource implements the source interface at compile time.
var _ domain.HotelRatingsSource = (*RatingsSource)(nil)
