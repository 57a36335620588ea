package usecase

import (
	"github.com/travel-checkout/offer-normalization-engine/internal/domain"
)

// RequirementsAggregator defines the interface for merging booking
// requirements across flight offers into one unified requirement set.
type RequirementsAggregator interface {
	// Aggregate merges the booking requirements of all given offers with
	// union semantics: the checkout form must satisfy the strictest offer.
	Aggregate(offers []domain.RawFlightOffer) domain.AggregatedRequirements
}

// requirementsAggregator implements RequirementsAggregator.
type requirementsAggregator struct{}

// NewRequirementsAggregator creates a new RequirementsAggregator.
func NewRequirementsAggregator() RequirementsAggregator {
	return &requirementsAggregator{}
}

// Aggregate implements RequirementsAggregator.Aggregate.
//
// Per-traveler requirements merge position-wise by traveler index. An offer
// with no requirement metadata contributes a full default set for each of
// its travelers: absent metadata must never be read as "nothing required".
func (a *requirementsAggregator) Aggregate(offers []domain.RawFlightOffer) domain.AggregatedRequirements {
	result := domain.AggregatedRequirements{
		PerTraveler: []domain.TravelerRequirement{},
	}

	for _, offer := range offers {
		count := travelerCount(offer)
		if count > result.MaxTravelers {
			result.MaxTravelers = count
		}

		br := offer.BookingRequirements
		if br != nil {
			result.Shared = result.Shared.Merge(sharedFromRaw(br))
		}

		for i := 0; i < count; i++ {
			var tr domain.TravelerRequirement
			if br != nil && i < len(br.TravelerRequirements) {
				tr = travelerFromRaw(br.TravelerRequirements[i])
			} else if br != nil {
				// Metadata present but silent on this traveler: names and
				// contact details are still a baseline, nationality and
				// document default on.
				tr = domain.TravelerRequirement{
					FirstName:           true,
					LastName:            true,
					NationalityRequired: true,
					DocumentRequired:    true,
					EmailRequired:       true,
					PhoneNumberRequired: true,
					NationalIDRequired:  true,
				}
			} else {
				tr = domain.DefaultTravelerRequirement()
			}

			if i < len(result.PerTraveler) {
				result.PerTraveler[i] = result.PerTraveler[i].Merge(tr)
			} else {
				result.PerTraveler = append(result.PerTraveler, tr)
			}
		}
	}

	// Non-empty input always yields at least one traveler.
	if len(offers) > 0 && result.MaxTravelers == 0 {
		result.MaxTravelers = 1
	}

	for len(result.PerTraveler) < result.MaxTravelers {
		result.PerTraveler = append(result.PerTraveler, domain.DefaultTravelerRequirement())
	}

	return result
}

// travelerCount determines how many travelers an offer covers: requirement
// metadata length first, then the traveler-pricing count, then 1.
func travelerCount(offer domain.RawFlightOffer) int {
	if offer.BookingRequirements != nil && len(offer.BookingRequirements.TravelerRequirements) > 0 {
		return len(offer.BookingRequirements.TravelerRequirements)
	}
	if len(offer.TravelerPricings) > 0 {
		return len(offer.TravelerPricings)
	}
	return 1
}

// sharedFromRaw maps a raw booking-requirements block to shared flags.
func sharedFromRaw(br *domain.RawBookingRequirements) domain.SharedRequirement {
	return domain.SharedRequirement{
		EmailAddressRequired:          br.EmailAddressRequired,
		MobilePhoneNumberRequired:     br.MobilePhoneNumberRequired,
		HomePhoneRequired:             br.HomePhoneRequired,
		WorkPhoneRequired:             br.WorkPhoneRequired,
		AlternateEmailRequired:        br.AlternateEmailRequired,
		EmergencyContactRequired:      br.EmergencyContactRequired,
		EmergencyContactPhoneRequired: br.EmergencyContactPhoneRequired,
	}
}

// travelerFromRaw maps one raw traveler requirement to the merged shape.
// First and last name, email, phone number and national id are always
// required regardless of offer metadata: there is no booking without basic
// identity and contact details. Nationality and document are required
// unless the offer explicitly says otherwise; a nil pointer means the
// provider did not say.
func travelerFromRaw(raw domain.RawTravelerRequirement) domain.TravelerRequirement {
	return domain.TravelerRequirement{
		FirstName:            true,
		LastName:             true,
		EmailRequired:        true,
		PhoneNumberRequired:  true,
		NationalIDRequired:   true,
		GenderRequired:       raw.GenderRequired,
		DateOfBirthRequired:  raw.DateOfBirthRequired,
		NationalityRequired:  raw.NationalityRequired == nil || *raw.NationalityRequired,
		DocumentRequired:     raw.DocumentRequired == nil || *raw.DocumentRequired,
		RedressRequiredIfAny: raw.RedressRequiredIfAny,
		ResidenceRequired:    raw.ResidenceRequired,
	}
}

// Ensure requirementsAggregator implements RequirementsAggregator at compile time.
var _ RequirementsAggregator = (*requirementsAggregator)(nil)
