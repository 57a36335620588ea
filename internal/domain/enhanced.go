package domain

import "strconv"

// Display sentinels for fields that could not be derived. Presentation code
// renders these distinctly from real values so a normalization gap is never
// mistaken for a real zero-cost item.
const (
	PriceTBD      = "Price TBD"
	PolicyTBD     = "TBD"
	TaxesIncluded = "Included"
)

// EnhancedFlight is the canonical, presentation-agnostic record for a
// priced flight offer. Immutable after construction; the raw payload is
// preserved so presentation code can recompute breakdowns.
type EnhancedFlight struct {
	// ID is the offer id, or a generated one when the provider sent none
	ID string `json:"id"`

	// Itineraries are the normalized legs of the journey
	Itineraries []EnhancedItinerary `json:"itineraries"`

	// Price is the canonical price summary
	Price FlightPriceSummary `json:"price"`

	// Baggage summarizes the included baggage allowance
	Baggage BaggageSummary `json:"baggage"`

	// FareType is the provider fare type, when declared
	FareType string `json:"fareType,omitempty"`

	// LastTicketingDate is the ticketing deadline, when declared
	LastTicketingDate string `json:"lastTicketingDate,omitempty"`

	// Refundable and Changeable mirror the offer's fare rules
	Refundable bool `json:"refundable"`
	Changeable bool `json:"changeable"`

	// TravelerCount is the number of travelers priced on the offer
	TravelerCount int `json:"travelerCount"`

	// BookingRequirements passes through the provider's declared
	// requirements for the aggregator and presentation code
	BookingRequirements *RawBookingRequirements `json:"bookingRequirements,omitempty"`

	// Raw preserves the original pricing payload
	Raw *RawFlightOffer `json:"raw,omitempty"`
}

// EnhancedItinerary is one normalized leg of an enhanced flight.
type EnhancedItinerary struct {
	Duration DurationInfo    `json:"duration"`
	Segments []FlightSegment `json:"segments"`
}

// FlightSegment is one normalized flown segment.
type FlightSegment struct {
	CarrierCode  string       `json:"carrierCode"`
	FlightNumber string       `json:"flightNumber"`
	Departure    SegmentPoint `json:"departure"`
	Arrival      SegmentPoint `json:"arrival"`
	Duration     DurationInfo `json:"duration"`
}

// SegmentPoint is a departure or arrival point of a segment.
type SegmentPoint struct {
	AirportCode string `json:"airportCode"`
	Terminal    string `json:"terminal,omitempty"`
	At          string `json:"at,omitempty"`
}

// FlightPriceSummary is the canonical price breakdown for a flight offer.
// Nil Money pointers mean the amount was not derivable; the matching label
// carries the display sentinel instead.
type FlightPriceSummary struct {
	Total             *Money                 `json:"total,omitempty"`
	Base              *Money                 `json:"base,omitempty"`
	TaxesAndFees      *Money                 `json:"taxesAndFees,omitempty"`
	TaxesAndFeesLabel string                 `json:"taxesAndFeesLabel,omitempty"`
	FormattedTotal    string                 `json:"formattedTotal"`
	PerTraveler       []TravelerPriceSummary `json:"perTraveler,omitempty"`
}

// TravelerPriceSummary is one traveler's share of the price.
type TravelerPriceSummary struct {
	TravelerID   string `json:"travelerId,omitempty"`
	TravelerType string `json:"travelerType,omitempty"`
	Total        *Money `json:"total,omitempty"`
	Base         *Money `json:"base,omitempty"`
}

// BaggageSummary is a human-readable baggage allowance.
type BaggageSummary struct {
	CarryOn string `json:"carryOn,omitempty"`
	Checked string `json:"checked,omitempty"`
}

// EnhancedHotel is the canonical, presentation-agnostic record for a
// priced hotel offer.
type EnhancedHotel struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	ChainCode   string `json:"chainCode,omitempty"`
	ChainName   string `json:"chainName,omitempty"`
	CityCode    string `json:"cityCode,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`

	// RoomType and Bed carry extraction metadata so callers can decide
	// whether to show the value as fact or hide it
	RoomType Extraction[string]    `json:"roomType"`
	Bed      Extraction[BedConfig] `json:"bed"`

	// RoomSize is advisory free-text size info (e.g. "50sqm / 538sqft")
	RoomSize string `json:"roomSize,omitempty"`

	// Amenities are room-level amenities, deduplicated and title-cased
	Amenities []string `json:"amenities,omitempty"`

	// HotelAmenities come from the hotel descriptor, untouched
	HotelAmenities []string `json:"hotelAmenities,omitempty"`

	// BoardType is the readable meal-plan label
	BoardType string `json:"boardType,omitempty"`

	CheckInDate  string `json:"checkInDate,omitempty"`
	CheckOutDate string `json:"checkOutDate,omitempty"`

	// Nights is nil when either stay date is missing
	Nights *int `json:"nights,omitempty"`

	Guests       int `json:"guests,omitempty"`
	RoomQuantity int `json:"roomQuantity,omitempty"`

	Price  HotelPriceSummary  `json:"price"`
	Policy HotelPolicySummary `json:"policy"`

	// Rating is nil when no rating payload was supplied for the hotel
	Rating *RatingSummary `json:"rating,omitempty"`

	// RatingUnavailable is true when the hotel is explicitly unrated;
	// it takes precedence over any numeric rating in the payload
	RatingUnavailable bool `json:"ratingUnavailable"`

	// Raw preserves the original offer payload
	Raw *RawHotelOffer `json:"raw,omitempty"`
}

// HotelPriceSummary is the canonical price breakdown for a hotel offer.
type HotelPriceSummary struct {
	Total              *Money `json:"total,omitempty"`
	Base               *Money `json:"base,omitempty"`
	PerNight           *Money `json:"perNight,omitempty"`
	TaxesAndFees       *Money `json:"taxesAndFees,omitempty"`
	TaxesAndFeesLabel  string `json:"taxesAndFeesLabel,omitempty"`
	FormattedTotal     string `json:"formattedTotal"`
	HasExcludedTaxes   bool   `json:"hasExcludedTaxes,omitempty"`
	ExcludedTaxesTotal *Money `json:"excludedTaxesTotal,omitempty"`
}

// HotelPolicySummary is the normalized policy block of a hotel offer.
type HotelPolicySummary struct {
	CancellationPolicy string `json:"cancellationPolicy"`
	FreeCancellation   bool   `json:"freeCancellation"`
	PaymentType        string `json:"paymentType,omitempty"`
	CheckInFrom        string `json:"checkInFrom,omitempty"`
	CheckOutUntil      string `json:"checkOutUntil,omitempty"`
}

// RatingSummary is the derived rating block of an enhanced hotel.
type RatingSummary struct {
	// Overall is the raw 0-100 score
	Overall float64 `json:"overall"`

	// Stars is the 0-5 star bucket derived from Overall
	Stars int `json:"stars"`

	// Label is the readable quality label for Overall
	Label string `json:"label"`

	Reviews    int                `json:"reviews,omitempty"`
	Sentiments map[string]float64 `json:"sentiments,omitempty"`
}

// DurationInfo is a flight duration in minutes plus its readable form.
type DurationInfo struct {
	TotalMinutes int    `json:"totalMinutes"`
	Formatted    string `json:"formatted"`
}

// NewDurationInfo creates a DurationInfo from total minutes.
func NewDurationInfo(totalMinutes int) DurationInfo {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	var formatted string
	switch {
	case hours > 0 && mins > 0:
		formatted = strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		formatted = strconv.Itoa(hours) + "h"
	default:
		formatted = strconv.Itoa(mins) + "m"
	}

	return DurationInfo{
		TotalMinutes: totalMinutes,
		Formatted:    formatted,
	}
}

// StarsFromRating buckets a 0-100 rating into 0-5 stars.
func StarsFromRating(rating float64) int {
	switch {
	case rating < 20:
		return 0
	case rating < 40:
		return 1
	case rating < 60:
		return 2
	case rating < 80:
		return 3
	case rating < 90:
		return 4
	default:
		return 5
	}
}

// RatingLabel maps a 0-100 rating to its readable quality label.
func RatingLabel(rating float64) string {
	switch {
	case rating < 20:
		return "Poor"
	case rating < 40:
		return "Disappointing"
	case rating < 60:
		return "Fair"
	case rating < 80:
		return "Good"
	case rating < 90:
		return "Very Good"
	default:
		return "Exceptional"
	}
}
