package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/travel-checkout/offer-normalization-engine/internal/domain"
	"github.com/travel-checkout/offer-normalization-engine/internal/infrastructure/retry"
	"github.com/travel-checkout/offer-normalization-engine/internal/infrastructure/timeutil"
)

// Default timeout values for checkout assembly.
const (
	DefaultGlobalTimeout = 10 * time.Second
	DefaultSourceTimeout = 3 * time.Second
)

// CheckoutSelection identifies the offers a user wants to book together.
type CheckoutSelection struct {
	FlightOfferIDs []string
	HotelOfferIDs  []string
}

// CheckoutSummary is everything the checkout page needs in one payload:
// the normalized offers, the merged booking requirements, and metadata on
// how the assembly went.
type CheckoutSummary struct {
	Flights      []domain.EnhancedFlight       `json:"flights"`
	Hotels       []domain.EnhancedHotel        `json:"hotels"`
	Requirements domain.AggregatedRequirements `json:"requirements"`

	// SourcesDegraded lists sources that failed without blocking the
	// summary (currently only the ratings source)
	SourcesDegraded []string `json:"sourcesDegraded,omitempty"`

	AssemblyDurationMs int64 `json:"assemblyDurationMs"`
}

// CheckoutAssembler defines the interface for building a checkout summary
// from a selection. It confirms pricing with the external sources, fetches
// ratings, and runs the normalization core over the results.
type CheckoutAssembler interface {
	// Assemble prices all selected offers concurrently and returns the
	// normalized summary. Pricing failures are hard errors; a ratings
	// failure degrades the summary instead.
	Assemble(ctx context.Context, selection CheckoutSelection, opts TransformOptions) (*CheckoutSummary, error)
}

// AssemblerConfig contains configuration options for the assembler.
type AssemblerConfig struct {
	GlobalTimeout time.Duration
	SourceTimeout time.Duration
	Retry         *retry.Config
	Clock         timeutil.Clock
}

// DefaultAssemblerConfig returns the default configuration.
func DefaultAssemblerConfig() AssemblerConfig {
	return AssemblerConfig{
		GlobalTimeout: DefaultGlobalTimeout,
		SourceTimeout: DefaultSourceTimeout,
	}
}

// checkoutAssembler implements CheckoutAssembler using the Scatter-Gather
// pattern over the pricing sources.
type checkoutAssembler struct {
	flightSource  domain.FlightPricingSource
	hotelSource   domain.HotelPricingSource
	ratingsSource domain.HotelRatingsSource

	transformer OfferTransformer
	aggregator  RequirementsAggregator

	globalTimeout time.Duration
	sourceTimeout time.Duration
	retryCfg      retry.Config
	clock         timeutil.Clock
}

// NewCheckoutAssembler creates a new CheckoutAssembler with the given
// sources and configuration. If config is nil, defaults are used.
func NewCheckoutAssembler(
	flightSource domain.FlightPricingSource,
	hotelSource domain.HotelPricingSource,
	ratingsSource domain.HotelRatingsSource,
	config *AssemblerConfig,
) CheckoutAssembler {
	cfg := DefaultAssemblerConfig()
	if config != nil {
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.SourceTimeout > 0 {
			cfg.SourceTimeout = config.SourceTimeout
		}
		cfg.Retry = config.Retry
		cfg.Clock = config.Clock
	}

	retryCfg := retry.SourceConfig
	if cfg.Retry != nil {
		retryCfg = *cfg.Retry
	}
	retryCfg = retryCfg.WithRetryIf(retryableSourceError)

	clock := cfg.Clock
	if clock == nil {
		clock = timeutil.NewRealClock()
	}

	return &checkoutAssembler{
		flightSource:  flightSource,
		hotelSource:   hotelSource,
		ratingsSource: ratingsSource,
		transformer:   NewOfferTransformer(nil),
		aggregator:    NewRequirementsAggregator(),
		globalTimeout: cfg.GlobalTimeout,
		sourceTimeout: cfg.SourceTimeout,
		retryCfg:      retryCfg,
		clock:         clock,
	}
}

// retryableSourceError reports whether a source failure is worth retrying.
// SourceError carries an explicit flag; other errors retry unless marked
// permanent.
func retryableSourceError(err error) bool {
	var se *domain.SourceError
	if errors.As(err, &se) {
		return se.Retryable
	}
	return retry.SkipPermanent(err)
}

// pricingResult holds the outcome of pricing a single selected offer.
type pricingResult struct {
	Index  int
	Flight *domain.RawFlightOffer
	Hotel  *domain.RawHotelOffer
	Error  error
}

// Assemble implements CheckoutAssembler.Assemble.
func (a *checkoutAssembler) Assemble(ctx context.Context, selection CheckoutSelection, opts TransformOptions) (*CheckoutSummary, error) {
	startTime := a.clock.Now()

	if len(selection.FlightOfferIDs) == 0 && len(selection.HotelOfferIDs) == 0 {
		return nil, domain.ErrInvalidSelection
	}
	if len(selection.FlightOfferIDs) > 0 && a.flightSource == nil {
		return nil, domain.NewSourceError("flight_pricing", errors.New("no source configured"))
	}
	if len(selection.HotelOfferIDs) > 0 && a.hotelSource == nil {
		return nil, domain.NewSourceError("hotel_pricing", errors.New("no source configured"))
	}

	ctx, cancel := context.WithTimeout(ctx, a.globalTimeout)
	defer cancel()

	total := len(selection.FlightOfferIDs) + len(selection.HotelOfferIDs)
	resultsChan := make(chan pricingResult, total)

	var wg sync.WaitGroup

	// Scatter: price every selected offer concurrently.
	for i, offerID := range selection.FlightOfferIDs {
		wg.Add(1)
		go func(index int, id string) {
			defer wg.Done()
			a.priceFlight(ctx, index, id, resultsChan)
		}(i, offerID)
	}
	for i, offerID := range selection.HotelOfferIDs {
		wg.Add(1)
		go func(index int, id string) {
			defer wg.Done()
			a.priceHotel(ctx, index, id, resultsChan)
		}(i, offerID)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	// Gather, preserving selection order.
	rawFlights := make([]*domain.RawFlightOffer, len(selection.FlightOfferIDs))
	rawHotels := make([]*domain.RawHotelOffer, len(selection.HotelOfferIDs))
	received := 0

	for result := range resultsChan {
		received++
		if result.Error != nil {
			// A pricing failure means the user cannot book the selection;
			// there is no partial checkout.
			return nil, result.Error
		}
		if result.Flight != nil {
			rawFlights[result.Index] = result.Flight
		}
		if result.Hotel != nil {
			rawHotels[result.Index] = result.Hotel
		}
	}

	if received < total {
		if ctx.Err() != nil {
			return nil, domain.ErrSourceTimeout
		}
		return nil, domain.ErrAllSourcesFailed
	}

	flights := make([]domain.RawFlightOffer, 0, len(rawFlights))
	for _, f := range rawFlights {
		if f != nil {
			flights = append(flights, *f)
		}
	}
	hotels := make([]domain.RawHotelOffer, 0, len(rawHotels))
	for _, h := range rawHotels {
		if h != nil {
			hotels = append(hotels, *h)
		}
	}

	summary := &CheckoutSummary{}

	// Ratings are additive: a failure here degrades the summary rather
	// than blocking the booking.
	ratings, degraded := a.fetchRatings(ctx, hotels)
	if degraded != "" {
		summary.SourcesDegraded = append(summary.SourcesDegraded, degraded)
	}

	enhancedFlights, enhancedHotels, err := a.transformer.Transform(flights, hotels, ratings, opts)
	if err != nil {
		return nil, err
	}

	summary.Flights = enhancedFlights
	summary.Hotels = enhancedHotels
	summary.Requirements = a.aggregator.Aggregate(flights)
	summary.AssemblyDurationMs = a.clock.Now().Sub(startTime).Milliseconds()

	return summary, nil
}

// priceFlight prices one flight offer with timeout, retry and panic recovery.
func (a *checkoutAssembler) priceFlight(ctx context.Context, index int, offerID string, results chan<- pricingResult) {
	ctx, cancel := context.WithTimeout(ctx, a.sourceTimeout)
	defer cancel()

	sourceName := a.flightSource.Name()

	defer func() {
		if r := recover(); r != nil {
			results <- pricingResult{
				Index: index,
				Error: domain.NewSourceError(sourceName, fmt.Errorf("source panic: %v", r)),
			}
		}
	}()

	offer, err := retry.DoWithResult(ctx, func() (*domain.RawFlightOffer, error) {
		return a.flightSource.PriceFlightOffer(ctx, offerID)
	}, a.retryCfg)
	if err != nil {
		results <- pricingResult{Index: index, Error: domain.NewSourceError(sourceName, err)}
		return
	}

	results <- pricingResult{Index: index, Flight: offer}
}

// priceHotel prices one hotel offer with timeout, retry and panic recovery.
func (a *checkoutAssembler) priceHotel(ctx context.Context, index int, offerID string, results chan<- pricingResult) {
	ctx, cancel := context.WithTimeout(ctx, a.sourceTimeout)
	defer cancel()

	sourceName := a.hotelSource.Name()

	defer func() {
		if r := recover(); r != nil {
			results <- pricingResult{
				Index: index,
				Error: domain.NewSourceError(sourceName, fmt.Errorf("source panic: %v", r)),
			}
		}
	}()

	offer, err := retry.DoWithResult(ctx, func() (*domain.RawHotelOffer, error) {
		return a.hotelSource.PriceHotelOffer(ctx, offerID)
	}, a.retryCfg)
	if err != nil {
		results <- pricingResult{Index: index, Error: domain.NewSourceError(sourceName, err)}
		return
	}

	results <- pricingResult{Index: index, Hotel: offer}
}

// fetchRatings fetches ratings for the priced hotels. Returns the ratings
// map and the name of the degraded source, if any.
func (a *checkoutAssembler) fetchRatings(ctx context.Context, hotels []domain.RawHotelOffer) (domain.RatingsMap, string) {
	if a.ratingsSource == nil || len(hotels) == 0 {
		return nil, ""
	}

	hotelIDs := make([]string, 0, len(hotels))
	for _, h := range hotels {
		if h.Hotel != nil && h.Hotel.HotelID != "" {
			hotelIDs = append(hotelIDs, h.Hotel.HotelID)
		}
	}
	if len(hotelIDs) == 0 {
		return nil, ""
	}

	ctx, cancel := context.WithTimeout(ctx, a.sourceTimeout)
	defer cancel()

	sourceName := a.ratingsSource.Name()

	ratings, err := retry.DoWithResult(ctx, func() (domain.RatingsMap, error) {
		return a.ratingsSource.RatingsByHotelIDs(ctx, hotelIDs)
	}, a.retryCfg)
	if err != nil {
		return nil, sourceName
	}

	return ratings, ""
}

// Ensure checkoutAssembler implements CheckoutAssembler at compile time.
var _ CheckoutAssembler = (*checkoutAssembler)(nil)
