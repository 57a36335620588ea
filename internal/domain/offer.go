package domain

// Raw offer shapes as delivered by upstream pricing providers. Monetary
// amounts arrive as decimal strings; every substructure is optional and
// must be accessed defensively.

// RawFlightOffer is a priced flight offer payload.
type RawFlightOffer struct {
	ID                  string                  `json:"id,omitempty"`
	LastTicketingDate   string                  `json:"lastTicketingDate,omitempty"`
	Itineraries         []RawItinerary          `json:"itineraries,omitempty"`
	Price               *RawPrice               `json:"price,omitempty"`
	PricingOptions      *RawPricingOptions      `json:"pricingOptions,omitempty"`
	TravelerPricings    []RawTravelerPricing    `json:"travelerPricings,omitempty"`
	BookingRequirements *RawBookingRequirements `json:"bookingRequirements,omitempty"`
	FareRules           *RawFareRules           `json:"fareRules,omitempty"`
}

// RawItinerary is one leg of a flight offer.
type RawItinerary struct {
	Duration string       `json:"duration,omitempty"` // ISO 8601, e.g. "PT7H30M"
	Segments []RawSegment `json:"segments,omitempty"`
}

// RawSegment is one flown segment within an itinerary.
type RawSegment struct {
	CarrierCode string          `json:"carrierCode,omitempty"`
	Number      string          `json:"number,omitempty"`
	Duration    string          `json:"duration,omitempty"`
	Departure   *RawFlightPoint `json:"departure,omitempty"`
	Arrival     *RawFlightPoint `json:"arrival,omitempty"`
}

// RawFlightPoint is a departure or arrival point.
type RawFlightPoint struct {
	IATACode string `json:"iataCode,omitempty"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at,omitempty"` // ISO 8601 local datetime
}

// RawPrice is a price block with amounts as decimal strings.
type RawPrice struct {
	Currency   string   `json:"currency,omitempty"`
	Total      string   `json:"total,omitempty"`
	Base       string   `json:"base,omitempty"`
	GrandTotal string   `json:"grandTotal,omitempty"`
	Taxes      []RawTax `json:"taxes,omitempty"`
}

// RawTax is a single itemized tax entry.
type RawTax struct {
	Amount   string `json:"amount,omitempty"`
	Code     string `json:"code,omitempty"`
	Included bool   `json:"included,omitempty"`
}

// RawPricingOptions carries fare metadata on a flight offer.
type RawPricingOptions struct {
	FareType                []string `json:"fareType,omitempty"`
	IncludedCheckedBagsOnly bool     `json:"includedCheckedBagsOnly,omitempty"`
}

// RawFareRules carries refund/change flags on a flight offer.
type RawFareRules struct {
	Refundable bool `json:"refundable,omitempty"`
	Changeable bool `json:"changeable,omitempty"`
}

// RawTravelerPricing is one traveler's share of a flight offer price.
type RawTravelerPricing struct {
	TravelerID           string           `json:"travelerId,omitempty"`
	TravelerType         string           `json:"travelerType,omitempty"`
	FareOption           string           `json:"fareOption,omitempty"`
	Price                *RawPrice        `json:"price,omitempty"`
	FareDetailsBySegment []RawFareDetails `json:"fareDetailsBySegment,omitempty"`
}

// RawFareDetails is per-segment fare information for one traveler.
type RawFareDetails struct {
	SegmentID           string      `json:"segmentId,omitempty"`
	Cabin               string      `json:"cabin,omitempty"`
	Class               string      `json:"class,omitempty"`
	IncludedCheckedBags *RawBaggage `json:"includedCheckedBags,omitempty"`
}

// RawBaggage is an included-baggage allowance.
type RawBaggage struct {
	Quantity   int    `json:"quantity,omitempty"`
	Weight     int    `json:"weight,omitempty"`
	WeightUnit string `json:"weightUnit,omitempty"`
}

// RawBookingRequirements is the provider-declared set of data fields that
// must be collected before an offer can be booked.
type RawBookingRequirements struct {
	EmailAddressRequired          bool                     `json:"emailAddressRequired,omitempty"`
	MobilePhoneNumberRequired     bool                     `json:"mobilePhoneNumberRequired,omitempty"`
	HomePhoneRequired             bool                     `json:"homePhoneRequired,omitempty"`
	WorkPhoneRequired             bool                     `json:"workPhoneRequired,omitempty"`
	AlternateEmailRequired        bool                     `json:"alternateEmailRequired,omitempty"`
	EmergencyContactRequired      bool                     `json:"emergencyContactRequired,omitempty"`
	EmergencyContactPhoneRequired bool                     `json:"emergencyContactPhoneRequired,omitempty"`
	TravelerRequirements          []RawTravelerRequirement `json:"travelerRequirements,omitempty"`
}

// RawTravelerRequirement is one traveler's declared requirement flags.
// Nationality and document use pointers: nil means the provider did not
// say, which the aggregator treats as required.
type RawTravelerRequirement struct {
	TravelerID           string `json:"travelerId,omitempty"`
	GenderRequired       bool   `json:"genderRequired,omitempty"`
	DateOfBirthRequired  bool   `json:"dateOfBirthRequired,omitempty"`
	RedressRequiredIfAny bool   `json:"redressRequiredIfAny,omitempty"`
	ResidenceRequired    bool   `json:"residenceRequired,omitempty"`
	NationalityRequired  *bool  `json:"nationalityRequired,omitempty"`
	DocumentRequired     *bool  `json:"documentRequired,omitempty"`
}

// RawHotelOffer is a hotel descriptor plus its priced offers.
type RawHotelOffer struct {
	Hotel  *RawHotel             `json:"hotel,omitempty"`
	Offers []RawHotelOfferDetail `json:"offers,omitempty"`
}

// RawHotel is the hotel descriptor on a hotel offer payload.
type RawHotel struct {
	HotelID   string      `json:"hotelId,omitempty"`
	Name      string      `json:"name,omitempty"`
	ChainCode string      `json:"chainCode,omitempty"`
	CityCode  string      `json:"cityCode,omitempty"`
	Address   *RawAddress `json:"address,omitempty"`
	Amenities []string    `json:"amenities,omitempty"`
}

// RawAddress holds the address fields the engine cares about.
type RawAddress struct {
	CountryCode string `json:"countryCode,omitempty"`
}

// RawHotelOfferDetail is one bookable room offer at a hotel.
type RawHotelOfferDetail struct {
	ID           string          `json:"id,omitempty"`
	CheckInDate  string          `json:"checkInDate,omitempty"`  // "2006-01-02"
	CheckOutDate string          `json:"checkOutDate,omitempty"` // "2006-01-02"
	RoomQuantity int             `json:"roomQuantity,omitempty"`
	RateCode     string          `json:"rateCode,omitempty"`
	BoardType    string          `json:"boardType,omitempty"` // e.g. "BREAKFAST", "ROOM_ONLY"
	Category     string          `json:"category,omitempty"`
	Guests       *RawGuests      `json:"guests,omitempty"`
	Room         *RawRoom        `json:"room,omitempty"`
	Price        *RawHotelPrice  `json:"price,omitempty"`
	Policies     *RawPolicies    `json:"policies,omitempty"`
	Commission   *RawCommission  `json:"commission,omitempty"`
	Description  *RawText        `json:"description,omitempty"`
}

// RawGuests is the guest count on a hotel offer.
type RawGuests struct {
	Adults int `json:"adults,omitempty"`
}

// RawRoom describes the room on a hotel offer.
type RawRoom struct {
	Type          string                `json:"type,omitempty"` // raw provider room code
	TypeEstimated *RawRoomTypeEstimated `json:"typeEstimated,omitempty"`
	Description   *RawText              `json:"description,omitempty"`
}

// RawRoomTypeEstimated is the provider's structured estimate of the room.
type RawRoomTypeEstimated struct {
	Category string `json:"category,omitempty"` // e.g. "DELUXE_ROOM"
	BedType  string `json:"bedType,omitempty"`  // e.g. "KING"
	Beds     int    `json:"beds,omitempty"`
}

// RawText is a wrapped free-text field.
type RawText struct {
	Text string `json:"text,omitempty"`
}

// RawHotelPrice is a hotel price block with amounts as decimal strings.
type RawHotelPrice struct {
	Currency     string              `json:"currency,omitempty"`
	Base         string              `json:"base,omitempty"`
	Total        string              `json:"total,omitempty"`
	SellingTotal string              `json:"sellingTotal,omitempty"`
	Taxes        []RawTax            `json:"taxes,omitempty"`
	Variations   *RawPriceVariations `json:"variations,omitempty"`
}

// RawPriceVariations carries per-night average prices when present.
type RawPriceVariations struct {
	Average *RawPriceAverage `json:"average,omitempty"`
}

// RawPriceAverage is the average nightly price block.
type RawPriceAverage struct {
	Base  string `json:"base,omitempty"`
	Total string `json:"total,omitempty"`
}

// RawCommission is an itemized commission entry on a hotel offer.
type RawCommission struct {
	Amount string `json:"amount,omitempty"`
}

// RawPolicies holds a hotel offer's policy block.
type RawPolicies struct {
	PaymentType   string            `json:"paymentType,omitempty"` // "deposit", "prepay", "guarantee"
	Refundable    *RawRefundable    `json:"refundable,omitempty"`
	Cancellation  *RawCancellation  `json:"cancellation,omitempty"`
	Cancellations []RawCancellation `json:"cancellations,omitempty"`
	Deposit       *RawDeposit       `json:"deposit,omitempty"`
	CheckIn       *RawCheckIn       `json:"checkInOut,omitempty"`
	CheckOut      *RawCheckOut      `json:"checkOut,omitempty"`
}

// RawRefundable is the structured refundability flag.
type RawRefundable struct {
	CancellationRefund string `json:"cancellationRefund,omitempty"` // e.g. "NON_REFUNDABLE"
}

// RawCancellation is one cancellation policy entry.
type RawCancellation struct {
	Type        string   `json:"type,omitempty"` // e.g. "FULL_STAY"
	Deadline    string   `json:"deadline,omitempty"`
	Description *RawText `json:"description,omitempty"`
}

// RawDeposit is a deposit policy entry.
type RawDeposit struct {
	Deadline string `json:"deadline,omitempty"`
}

// RawCheckIn carries the earliest check-in time.
type RawCheckIn struct {
	From string `json:"from,omitempty"`
}

// RawCheckOut carries the latest check-out time.
type RawCheckOut struct {
	Until string `json:"until,omitempty"`
}

// HotelRating is the ratings payload for one hotel, on a 0-100 scale.
// Unavailable set to true means the hotel is explicitly unrated, which is
// semantically different from a rating that was never fetched.
type HotelRating struct {
	OverallRating   float64            `json:"overallRating,omitempty"`
	NumberOfReviews int                `json:"numberOfReviews,omitempty"`
	Sentiments      map[string]float64 `json:"sentiments,omitempty"`
	Unavailable     bool               `json:"unavailable,omitempty"`
}

// RatingsMap maps hotel ids to their rating payloads.
type RatingsMap map[string]HotelRating
