package http

import (
	"github.com/travel-checkout/offer-normalization-engine/internal/domain"
	"github.com/travel-checkout/offer-normalization-engine/internal/usecase"
)

// EnhanceOffersResponseDTO is the data transfer object for enhancement
// responses. Enhanced offers serialize with their canonical camelCase
// fields; the envelope adds counts so callers can spot dropped offers.
type EnhanceOffersResponseDTO struct {
	Metadata EnhanceMetadataDTO      `json:"metadata"`
	Flights  []domain.EnhancedFlight `json:"flights"`
	Hotels   []domain.EnhancedHotel  `json:"hotels"`
}

// EnhanceMetadataDTO contains metadata about the enhancement run.
type EnhanceMetadataDTO struct {
	FlightOffersReceived int `json:"flightOffersReceived"`
	HotelOffersReceived  int `json:"hotelOffersReceived"`
	FlightsEnhanced      int `json:"flightsEnhanced"`
	HotelsEnhanced       int `json:"hotelsEnhanced"`
}

// RequirementsResponseDTO is the data transfer object for aggregation
// responses.
type RequirementsResponseDTO struct {
	OffersConsidered int                           `json:"offersConsidered"`
	Requirements     domain.AggregatedRequirements `json:"requirements"`
}

// ToEnhanceOffersResponseDTO builds the enhancement response envelope.
func ToEnhanceOffersResponseDTO(req *EnhanceOffersRequest, flights []domain.EnhancedFlight, hotels []domain.EnhancedHotel) *EnhanceOffersResponseDTO {
	if flights == nil {
		flights = []domain.EnhancedFlight{}
	}
	if hotels == nil {
		hotels = []domain.EnhancedHotel{}
	}

	return &EnhanceOffersResponseDTO{
		Metadata: EnhanceMetadataDTO{
			FlightOffersReceived: len(req.FlightOffers),
			HotelOffersReceived:  len(req.HotelOffers),
			FlightsEnhanced:      len(flights),
			HotelsEnhanced:       len(hotels),
		},
		Flights: flights,
		Hotels:  hotels,
	}
}

// ToRequirementsResponseDTO builds the aggregation response envelope.
func ToRequirementsResponseDTO(req *AggregateRequirementsRequest, agg domain.AggregatedRequirements) *RequirementsResponseDTO {
	if agg.PerTraveler == nil {
		agg.PerTraveler = []domain.TravelerRequirement{}
	}
	return &RequirementsResponseDTO{
		OffersConsidered: len(req.FlightOffers),
		Requirements:     agg,
	}
}

// ToCheckoutSummaryDTO normalizes a checkout summary for serialization.
// The usecase type already carries its wire tags; nil slices become empty
// arrays so the JSON shape is stable.
func ToCheckoutSummaryDTO(summary *usecase.CheckoutSummary) *usecase.CheckoutSummary {
	if summary == nil {
		return nil
	}
	if summary.Flights == nil {
		summary.Flights = []domain.EnhancedFlight{}
	}
	if summary.Hotels == nil {
		summary.Hotels = []domain.EnhancedHotel{}
	}
	if summary.Requirements.PerTraveler == nil {
		summary.Requirements.PerTraveler = []domain.TravelerRequirement{}
	}
	return summary
}
