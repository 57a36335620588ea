package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/travel-checkout/offer-normalization-engine/internal/domain"
	"github.com/travel-checkout/offer-normalization-engine/internal/infrastructure/timeutil"
)

// OfferTransformer defines the interface for composing raw offer payloads,
// parsed descriptions, policy data and ratings into canonical records.
type OfferTransformer interface {
	// Transform normalizes all offers in one pass. Only a structurally
	// unusable top-level offer is a hard error; missing data inside a
	// field degrades to a sentinel value instead.
	Transform(flights []domain.RawFlightOffer, hotels []domain.RawHotelOffer, ratings domain.RatingsMap, opts TransformOptions) ([]domain.EnhancedFlight, []domain.EnhancedHotel, error)
}

// offerTransformer implements OfferTransformer.
type offerTransformer struct {
	parser OfferDescriptionParser
}

// NewOfferTransformer creates a new OfferTransformer using the given
// description parser. If parser is nil, the default parser is used.
func NewOfferTransformer(parser OfferDescriptionParser) OfferTransformer {
	if parser == nil {
		parser = NewOfferDescriptionParser()
	}
	return &offerTransformer{parser: parser}
}

var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// Transform implements OfferTransformer.Transform.
func (t *offerTransformer) Transform(flights []domain.RawFlightOffer, hotels []domain.RawHotelOffer, ratings domain.RatingsMap, opts TransformOptions) ([]domain.EnhancedFlight, []domain.EnhancedHotel, error) {
	opts = opts.normalize()

	enhancedFlights := make([]domain.EnhancedFlight, 0, len(flights))
	for i := range flights {
		ef, err := t.transformFlight(&flights[i], i, opts)
		if err != nil {
			return nil, nil, err
		}
		enhancedFlights = append(enhancedFlights, ef)
	}

	enhancedHotels := make([]domain.EnhancedHotel, 0, len(hotels))
	for i := range hotels {
		eh, err := t.transformHotel(&hotels[i], i, ratings, opts)
		if err != nil {
			return nil, nil, err
		}
		enhancedHotels = append(enhancedHotels, eh)
	}

	return enhancedFlights, enhancedHotels, nil
}

// transformFlight normalizes one flight offer.
func (t *offerTransformer) transformFlight(offer *domain.RawFlightOffer, index int, opts TransformOptions) (domain.EnhancedFlight, error) {
	if len(offer.Itineraries) == 0 && offer.Price == nil && len(offer.TravelerPricings) == 0 {
		return domain.EnhancedFlight{}, domain.NewMalformedOfferError("flight", index, "no itineraries, price, or traveler pricings")
	}

	ef := domain.EnhancedFlight{
		ID:                  offer.ID,
		LastTicketingDate:   offer.LastTicketingDate,
		TravelerCount:       len(offer.TravelerPricings),
		BookingRequirements: offer.BookingRequirements,
		Raw:                 offer,
	}
	if ef.ID == "" {
		ef.ID = uuid.NewString()
	}

	for _, itin := range offer.Itineraries {
		ef.Itineraries = append(ef.Itineraries, transformItinerary(itin))
	}

	ef.Price = flightPriceSummary(offer, opts)
	ef.Baggage = baggageSummary(offer)

	if offer.PricingOptions != nil && len(offer.PricingOptions.FareType) > 0 {
		ef.FareType = offer.PricingOptions.FareType[0]
	}
	if offer.FareRules != nil {
		ef.Refundable = offer.FareRules.Refundable
		ef.Changeable = offer.FareRules.Changeable
	}

	return ef, nil
}

// transformItinerary normalizes one itinerary and its segments.
func transformItinerary(itin domain.RawItinerary) domain.EnhancedItinerary {
	result := domain.EnhancedItinerary{
		Duration: parseISODuration(itin.Duration),
	}

	for _, seg := range itin.Segments {
		fs := domain.FlightSegment{
			CarrierCode:  seg.CarrierCode,
			FlightNumber: seg.Number,
			Duration:     parseISODuration(seg.Duration),
		}
		if seg.Departure != nil {
			fs.Departure = domain.SegmentPoint{
				AirportCode: seg.Departure.IATACode,
				Terminal:    seg.Departure.Terminal,
				At:          seg.Departure.At,
			}
		}
		if seg.Arrival != nil {
			fs.Arrival = domain.SegmentPoint{
				AirportCode: seg.Arrival.IATACode,
				Terminal:    seg.Arrival.Terminal,
				At:          seg.Arrival.At,
			}
		}
		result.Segments = append(result.Segments, fs)
	}

	return result
}

// parseISODuration converts an ISO 8601 duration ("PT7H30M") to minutes.
// Unparseable input yields a zero duration rather than an error.
func parseISODuration(raw string) domain.DurationInfo {
	m := isoDurationPattern.FindStringSubmatch(raw)
	if m == nil {
		return domain.NewDurationInfo(0)
	}

	hours, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	return domain.NewDurationInfo(hours*60 + mins)
}

// flightPriceSummary derives the canonical price breakdown for a flight.
func flightPriceSummary(offer *domain.RawFlightOffer, opts TransformOptions) domain.FlightPriceSummary {
	summary := domain.FlightPriceSummary{FormattedTotal: domain.PriceTBD}
	if offer.Price == nil {
		return summary
	}

	currency := offer.Price.Currency
	totalStr := offer.Price.GrandTotal
	if totalStr == "" {
		totalStr = offer.Price.Total
	}

	total := moneyFromAmount(totalStr, currency, opts)
	base := moneyFromAmount(offer.Price.Base, currency, opts)
	summary.Total = total
	summary.Base = base

	taxes, label := taxBreakdown(total, base, offer.Price.Taxes, nil, currency, opts)
	summary.TaxesAndFees = taxes
	summary.TaxesAndFeesLabel = label

	if total != nil {
		summary.FormattedTotal = total.Format(opts.Locale)
	}

	for _, tp := range offer.TravelerPricings {
		tps := domain.TravelerPriceSummary{
			TravelerID:   tp.TravelerID,
			TravelerType: tp.TravelerType,
		}
		if tp.Price != nil {
			cur := tp.Price.Currency
			if cur == "" {
				cur = currency
			}
			tps.Total = moneyFromAmount(tp.Price.Total, cur, opts)
			tps.Base = moneyFromAmount(tp.Price.Base, cur, opts)
		}
		summary.PerTraveler = append(summary.PerTraveler, tps)
	}

	return summary
}

// baggageSummary derives a readable baggage allowance from the first
// traveler's fare details. Providers never itemize carry-on, so it gets
// the standard cabin allowance.
func baggageSummary(offer *domain.RawFlightOffer) domain.BaggageSummary {
	summary := domain.BaggageSummary{CarryOn: "1x 7kg"}

	if offer.PricingOptions != nil && offer.PricingOptions.IncludedCheckedBagsOnly {
		summary.Checked = "Included"
	}

	if len(offer.TravelerPricings) == 0 {
		return summary
	}

	for _, fd := range offer.TravelerPricings[0].FareDetailsBySegment {
		bags := fd.IncludedCheckedBags
		if bags == nil {
			continue
		}
		switch {
		case bags.Quantity > 0:
			unit := "bags"
			if bags.Quantity == 1 {
				unit = "bag"
			}
			summary.Checked = strconv.Itoa(bags.Quantity) + " checked " + unit
		case bags.Weight > 0:
			unit := bags.WeightUnit
			if unit == "" {
				unit = "KG"
			}
			summary.Checked = strconv.Itoa(bags.Weight) + " " + unit
		}
		if summary.Checked != "" {
			break
		}
	}

	return summary
}

// transformHotel normalizes one hotel offer using the first priced room.
func (t *offerTransformer) transformHotel(offer *domain.RawHotelOffer, index int, ratings domain.RatingsMap, opts TransformOptions) (domain.EnhancedHotel, error) {
	if offer.Hotel == nil && len(offer.Offers) == 0 {
		return domain.EnhancedHotel{}, domain.NewMalformedOfferError("hotel", index, "no hotel descriptor and no offers")
	}

	eh := domain.EnhancedHotel{Raw: offer}

	var detail *domain.RawHotelOfferDetail
	if len(offer.Offers) > 0 {
		detail = &offer.Offers[0]
	}

	if offer.Hotel != nil {
		eh.Name = offer.Hotel.Name
		eh.ChainCode = offer.Hotel.ChainCode
		eh.ChainName = domain.HotelChainName(offer.Hotel.ChainCode)
		eh.CityCode = offer.Hotel.CityCode
		eh.HotelAmenities = offer.Hotel.Amenities
		if offer.Hotel.Address != nil {
			eh.CountryCode = offer.Hotel.Address.CountryCode
		}
		eh.ID = offer.Hotel.HotelID
	}
	if detail != nil && detail.ID != "" {
		eh.ID = detail.ID
	}
	if eh.ID == "" {
		eh.ID = uuid.NewString()
	}

	eh.RoomType = domain.Absent[string]()
	eh.Bed = domain.Absent[domain.BedConfig]()
	eh.Policy = domain.HotelPolicySummary{CancellationPolicy: domain.PolicyTBD}
	eh.Price = domain.HotelPriceSummary{FormattedTotal: domain.PriceTBD}

	if detail != nil {
		var descText string
		if detail.Description != nil {
			descText = detail.Description.Text
		}
		details := t.parser.ParseRoomDetails(detail.Room, descText, detail.BoardType)
		eh.RoomType = details.RoomType
		eh.Bed = details.Bed
		eh.RoomSize = details.RoomSize
		eh.Amenities = details.Amenities

		if detail.BoardType != "" {
			eh.BoardType = domain.BoardTypeLabel(detail.BoardType)
		}

		eh.CheckInDate = detail.CheckInDate
		eh.CheckOutDate = detail.CheckOutDate
		eh.Nights = nightsBetween(detail.CheckInDate, detail.CheckOutDate)

		if detail.Guests != nil {
			eh.Guests = detail.Guests.Adults
		}
		eh.RoomQuantity = detail.RoomQuantity
		if eh.RoomQuantity == 0 {
			eh.RoomQuantity = 1
		}

		eh.Price = hotelPriceSummary(detail, eh.Nights, opts)
		eh.Policy = policySummary(detail.Policies)
	}

	if ratings != nil {
		hotelID := ""
		if offer.Hotel != nil {
			hotelID = offer.Hotel.HotelID
		}
		if rating, ok := ratings[hotelID]; ok {
			// The explicit unavailable flag wins over any numeric rating.
			if rating.Unavailable {
				eh.RatingUnavailable = true
			} else {
				eh.Rating = &domain.RatingSummary{
					Overall:    rating.OverallRating,
					Stars:      domain.StarsFromRating(rating.OverallRating),
					Label:      domain.RatingLabel(rating.OverallRating),
					Reviews:    rating.NumberOfReviews,
					Sentiments: rating.Sentiments,
				}
			}
		}
	}

	return eh, nil
}

// nightsBetween computes the stay length in nights, or nil when either
// date is missing or unparseable.
func nightsBetween(checkIn, checkOut string) *int {
	if checkIn == "" || checkOut == "" {
		return nil
	}

	in, err := timeutil.ParseStayDate(checkIn)
	if err != nil {
		return nil
	}
	out, err := timeutil.ParseStayDate(checkOut)
	if err != nil {
		return nil
	}

	nights := timeutil.NightsBetween(in, out)
	return &nights
}

// hotelPriceSummary derives the canonical price breakdown for a hotel.
func hotelPriceSummary(detail *domain.RawHotelOfferDetail, nights *int, opts TransformOptions) domain.HotelPriceSummary {
	summary := domain.HotelPriceSummary{FormattedTotal: domain.PriceTBD}
	if detail.Price == nil {
		return summary
	}

	currency := detail.Price.Currency
	totalStr := detail.Price.Total
	if totalStr == "" {
		totalStr = detail.Price.SellingTotal
	}

	total := moneyFromAmount(totalStr, currency, opts)
	base := moneyFromAmount(detail.Price.Base, currency, opts)
	summary.Total = total
	summary.Base = base

	taxes, label := taxBreakdown(total, base, detail.Price.Taxes, detail.Commission, currency, opts)
	summary.TaxesAndFees = taxes
	summary.TaxesAndFeesLabel = label

	if excluded := excludedTaxesTotal(detail.Price.Taxes, currency, opts); excluded != nil {
		summary.HasExcludedTaxes = true
		summary.ExcludedTaxesTotal = excluded
	}

	if total != nil {
		summary.FormattedTotal = total.Format(opts.Locale)
	}

	summary.PerNight = perNightPrice(detail.Price, total, nights, currency, opts)

	return summary
}

// perNightPrice prefers the provider's average variation, falling back to
// total divided by the night count.
func perNightPrice(price *domain.RawHotelPrice, total *domain.Money, nights *int, currency string, opts TransformOptions) *domain.Money {
	if price.Variations != nil && price.Variations.Average != nil {
		avgStr := price.Variations.Average.Total
		if avgStr == "" {
			avgStr = price.Variations.Average.Base
		}
		if avg := moneyFromAmount(avgStr, currency, opts); avg != nil {
			return avg
		}
	}

	if total == nil || nights == nil || *nights == 0 {
		return nil
	}

	perNight := domain.Money{
		Amount:   total.Amount.Div(decimal.NewFromInt(int64(*nights))),
		Currency: total.Currency,
	}
	return &perNight
}

// taxBreakdown computes taxes and fees as total minus base when both are
// present and positive, else the sum of itemized tax and commission
// entries, else the "Included" label. A missing breakdown is reported as
// included rather than zero so a normalization gap never looks like a
// knowable zero cost.
func taxBreakdown(total, base *domain.Money, itemized []domain.RawTax, commission *domain.RawCommission, currency string, opts TransformOptions) (*domain.Money, string) {
	if total != nil && base != nil && total.Currency == base.Currency {
		diff := total.Amount.Sub(base.Amount)
		if diff.IsPositive() {
			m := domain.Money{Amount: diff, Currency: total.Currency}
			return &m, m.Format(opts.Locale)
		}
	}

	if commission != nil && commission.Amount != "" {
		itemized = append(append([]domain.RawTax(nil), itemized...),
			domain.RawTax{Amount: commission.Amount, Included: true})
	}

	if sum := sumTaxes(itemized, currency, opts, false); sum != nil {
		return sum, sum.Format(opts.Locale)
	}

	return nil, domain.TaxesIncluded
}

// excludedTaxesTotal sums the itemized entries not included in the total.
func excludedTaxesTotal(itemized []domain.RawTax, currency string, opts TransformOptions) *domain.Money {
	return sumTaxes(itemized, currency, opts, true)
}

// sumTaxes adds up itemized tax amounts, optionally only the excluded
// ones. Returns nil when nothing summable is present.
func sumTaxes(itemized []domain.RawTax, currency string, opts TransformOptions, excludedOnly bool) *domain.Money {
	sum := decimal.Zero
	counted := 0

	for _, tax := range itemized {
		if excludedOnly && tax.Included {
			continue
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(tax.Amount))
		if err != nil {
			continue
		}
		sum = sum.Add(amount)
		counted++
	}

	if counted == 0 || !sum.IsPositive() {
		return nil
	}

	m := domain.Money{Amount: sum, Currency: currency}.Convert(opts.PreferredCurrency)
	return &m
}

// policySummary normalizes the policy block of a hotel offer.
func policySummary(policies *domain.RawPolicies) domain.HotelPolicySummary {
	summary := domain.HotelPolicySummary{CancellationPolicy: domain.PolicyTBD}
	if policies == nil {
		return summary
	}

	if policies.PaymentType != "" {
		summary.PaymentType = domain.TitleCase(policies.PaymentType)
	}
	if policies.CheckIn != nil {
		summary.CheckInFrom = policies.CheckIn.From
	}
	if policies.CheckOut != nil {
		summary.CheckOutUntil = policies.CheckOut.Until
	}

	nonRefundable := policies.Refundable != nil &&
		policies.Refundable.CancellationRefund == "NON_REFUNDABLE"

	cancellation := policies.Cancellation
	if cancellation == nil && len(policies.Cancellations) > 0 {
		cancellation = &policies.Cancellations[0]
	}

	switch {
	case nonRefundable:
		summary.CancellationPolicy = "Non-refundable"
	case cancellation != nil && cancellation.Description != nil && cancellation.Description.Text != "":
		summary.CancellationPolicy = cancellation.Description.Text
	case cancellation != nil && cancellation.Deadline != "":
		summary.CancellationPolicy = "Free cancellation until " + cancellation.Deadline
		summary.FreeCancellation = true
	}

	if !nonRefundable && cancellation != nil && cancellation.Deadline != "" {
		summary.FreeCancellation = true
	}

	return summary
}

// moneyFromAmount builds a Money from a raw decimal string and converts it
// to the preferred currency. Returns nil when the amount is not usable.
func moneyFromAmount(amount, currency string, opts TransformOptions) *domain.Money {
	if amount == "" || currency == "" {
		return nil
	}

	m, err := domain.NewMoney(strings.TrimSpace(amount), currency)
	if err != nil {
		return nil
	}

	converted := m.Convert(opts.PreferredCurrency)
	return &converted
}

// Ensure offerTransformer implements OfferTransformer at compile time.
var _ OfferTransformer = (*offerTransformer)(nil)
