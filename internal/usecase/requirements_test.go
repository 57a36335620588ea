package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-checkout/offer-normalization-engine/internal/domain"
)

func boolPtr(b bool) *bool { return &b }

// offerWithRequirements creates a flight offer carrying explicit booking
// requirement metadata for testing.
func offerWithRequirements(shared domain.RawBookingRequirements, travelers ...domain.RawTravelerRequirement) domain.RawFlightOffer {
	shared.TravelerRequirements = travelers
	return domain.RawFlightOffer{
		ID:                  "offer-1",
		BookingRequirements: &shared,
	}
}

// offerWithTravelerPricings creates a flight offer with no requirement
// metadata but a known traveler count.
func offerWithTravelerPricings(count int) domain.RawFlightOffer {
	pricings := make([]domain.RawTravelerPricing, count)
	for i := range pricings {
		pricings[i] = domain.RawTravelerPricing{TravelerType: "ADULT"}
	}
	return domain.RawFlightOffer{
		ID:               "offer-2",
		TravelerPricings: pricings,
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	agg := NewRequirementsAggregator()

	result := agg.Aggregate(nil)

	assert.Equal(t, domain.SharedRequirement{}, result.Shared)
	assert.Empty(t, result.PerTraveler)
	assert.Equal(t, 0, result.MaxTravelers)
}

func TestAggregate_SharedUnion(t *testing.T) {
	agg := NewRequirementsAggregator()

	offers := []domain.RawFlightOffer{
		offerWithRequirements(domain.RawBookingRequirements{
			EmailAddressRequired: true,
		}, domain.RawTravelerRequirement{}),
		offerWithRequirements(domain.RawBookingRequirements{
			MobilePhoneNumberRequired: true,
			AlternateEmailRequired:    true,
		}, domain.RawTravelerRequirement{}),
	}

	result := agg.Aggregate(offers)

	assert.True(t, result.Shared.EmailAddressRequired)
	assert.True(t, result.Shared.MobilePhoneNumberRequired)
	assert.True(t, result.Shared.AlternateEmailRequired)
	assert.False(t, result.Shared.HomePhoneRequired)
	assert.False(t, result.Shared.EmergencyContactRequired)
}

func TestAggregate_NamesAlwaysRequired(t *testing.T) {
	agg := NewRequirementsAggregator()

	offers := []domain.RawFlightOffer{
		offerWithRequirements(domain.RawBookingRequirements{},
			domain.RawTravelerRequirement{TravelerID: "1"}),
	}

	result := agg.Aggregate(offers)

	require.Len(t, result.PerTraveler, 1)
	assert.True(t, result.PerTraveler[0].FirstName)
	assert.True(t, result.PerTraveler[0].LastName)
}

func TestAggregate_ContactDetailsAlwaysRequired(t *testing.T) {
	agg := NewRequirementsAggregator()

	// A metadata-carrying offer that stays silent on contact fields still
	// requires them: there is no booking without email, phone and id.
	offers := []domain.RawFlightOffer{
		offerWithRequirements(domain.RawBookingRequirements{},
			domain.RawTravelerRequirement{TravelerID: "1", DateOfBirthRequired: true}),
	}

	result := agg.Aggregate(offers)

	require.Len(t, result.PerTraveler, 1)
	assert.True(t, result.PerTraveler[0].EmailRequired)
	assert.True(t, result.PerTraveler[0].PhoneNumberRequired)
	assert.True(t, result.PerTraveler[0].NationalIDRequired)
}

func TestAggregate_NationalityAndDocumentDefaults(t *testing.T) {
	tests := []struct {
		name            string
		traveler        domain.RawTravelerRequirement
		wantNationality bool
		wantDocument    bool
	}{
		{
			name:            "unset flags default to required",
			traveler:        domain.RawTravelerRequirement{},
			wantNationality: true,
			wantDocument:    true,
		},
		{
			name: "explicitly false flags stay false",
			traveler: domain.RawTravelerRequirement{
				NationalityRequired: boolPtr(false),
				DocumentRequired:    boolPtr(false),
			},
			wantNationality: false,
			wantDocument:    false,
		},
		{
			name: "explicitly true flags stay true",
			traveler: domain.RawTravelerRequirement{
				NationalityRequired: boolPtr(true),
				DocumentRequired:    boolPtr(true),
			},
			wantNationality: true,
			wantDocument:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewRequirementsAggregator()
			offers := []domain.RawFlightOffer{
				offerWithRequirements(domain.RawBookingRequirements{}, tt.traveler),
			}

			result := agg.Aggregate(offers)

			require.Len(t, result.PerTraveler, 1)
			assert.Equal(t, tt.wantNationality, result.PerTraveler[0].NationalityRequired)
			assert.Equal(t, tt.wantDocument, result.PerTraveler[0].DocumentRequired)
		})
	}
}

func TestAggregate_MissingMetadataSynthesizesDefaults(t *testing.T) {
	agg := NewRequirementsAggregator()

	// Offer A requires date of birth for traveler 0. Offer B carries no
	// requirement metadata at all but prices two travelers, so it
	// contributes full defaults for both.
	offerA := offerWithRequirements(domain.RawBookingRequirements{},
		domain.RawTravelerRequirement{TravelerID: "1", DateOfBirthRequired: true})
	offerB := offerWithTravelerPricings(2)

	result := agg.Aggregate([]domain.RawFlightOffer{offerA, offerB})

	assert.Equal(t, 2, result.MaxTravelers)
	require.Len(t, result.PerTraveler, 2)

	defaults := domain.DefaultTravelerRequirement()

	first := result.PerTraveler[0]
	assert.True(t, first.DateOfBirthRequired)
	assert.True(t, first.GenderRequired)
	assert.True(t, first.EmailRequired)
	assert.True(t, first.PhoneNumberRequired)
	assert.True(t, first.NationalIDRequired)

	assert.Equal(t, defaults, result.PerTraveler[1])
}

func TestAggregate_OfferWithNoTravelerInfo(t *testing.T) {
	agg := NewRequirementsAggregator()

	result := agg.Aggregate([]domain.RawFlightOffer{{ID: "bare"}})

	assert.Equal(t, 1, result.MaxTravelers)
	require.Len(t, result.PerTraveler, 1)
	assert.Equal(t, domain.DefaultTravelerRequirement(), result.PerTraveler[0])
}

func TestAggregate_Monotonic(t *testing.T) {
	agg := NewRequirementsAggregator()

	base := []domain.RawFlightOffer{
		offerWithRequirements(domain.RawBookingRequirements{
			EmailAddressRequired: true,
		}, domain.RawTravelerRequirement{GenderRequired: true}),
	}
	extra := offerWithRequirements(domain.RawBookingRequirements{
		WorkPhoneRequired: true,
	}, domain.RawTravelerRequirement{
		NationalityRequired: boolPtr(false),
		DocumentRequired:    boolPtr(false),
	})

	before := agg.Aggregate(base)
	after := agg.Aggregate(append(base, extra))

	// Adding an offer can only add requirements, never remove one.
	assert.True(t, after.Shared.EmailAddressRequired)
	assert.True(t, after.Shared.WorkPhoneRequired)

	require.Len(t, after.PerTraveler, 1)
	assert.True(t, after.PerTraveler[0].GenderRequired)
	assert.True(t, after.PerTraveler[0].NationalityRequired, "established requirement must survive a laxer offer")
	assert.True(t, after.PerTraveler[0].DocumentRequired)
	assert.Equal(t, before.PerTraveler[0].GenderRequired, after.PerTraveler[0].GenderRequired)
}

func TestAggregate_PositionWiseMerge(t *testing.T) {
	agg := NewRequirementsAggregator()

	offerA := offerWithRequirements(domain.RawBookingRequirements{},
		domain.RawTravelerRequirement{TravelerID: "1", GenderRequired: true},
		domain.RawTravelerRequirement{TravelerID: "2"},
	)
	offerB := offerWithRequirements(domain.RawBookingRequirements{},
		domain.RawTravelerRequirement{TravelerID: "1", ResidenceRequired: true},
		domain.RawTravelerRequirement{TravelerID: "2", RedressRequiredIfAny: true},
	)

	result := agg.Aggregate([]domain.RawFlightOffer{offerA, offerB})

	require.Len(t, result.PerTraveler, 2)
	assert.True(t, result.PerTraveler[0].GenderRequired)
	assert.True(t, result.PerTraveler[0].ResidenceRequired)
	assert.False(t, result.PerTraveler[0].RedressRequiredIfAny)
	assert.True(t, result.PerTraveler[1].RedressRequiredIfAny)
	assert.False(t, result.PerTraveler[1].GenderRequired)
}

func TestAggregate_MaxTravelersFromLargestOffer(t *testing.T) {
	agg := NewRequirementsAggregator()

	offers := []domain.RawFlightOffer{
		offerWithTravelerPricings(1),
		offerWithTravelerPricings(3),
		offerWithTravelerPricings(2),
	}

	result := agg.Aggregate(offers)

	assert.Equal(t, 3, result.MaxTravelers)
	assert.Len(t, result.PerTraveler, 3)
}
