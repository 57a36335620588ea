package domain

// TravelerRequirement holds the per-traveler data fields the checkout form
// must collect. It is produced by merging booking requirements across all
// selected flight offers; a flag is true when any offer requires it.
type TravelerRequirement struct {
	FirstName            bool `json:"firstName"`
	LastName             bool `json:"lastName"`
	GenderRequired       bool `json:"genderRequired"`
	DateOfBirthRequired  bool `json:"dateOfBirthRequired"`
	NationalityRequired  bool `json:"nationalityRequired"`
	DocumentRequired     bool `json:"documentRequired"`
	EmailRequired        bool `json:"emailRequired"`
	PhoneNumberRequired  bool `json:"phoneNumberRequired"`
	NationalIDRequired   bool `json:"nationalIdRequired"`
	RedressRequiredIfAny bool `json:"redressRequiredIfAny"`
	ResidenceRequired    bool `json:"residenceRequired"`
}

// SharedRequirement holds the booking-level contact fields required across
// the whole order, merged with union semantics.
type SharedRequirement struct {
	EmailAddressRequired          bool `json:"emailAddressRequired"`
	MobilePhoneNumberRequired     bool `json:"mobilePhoneNumberRequired"`
	HomePhoneRequired             bool `json:"homePhoneRequired"`
	WorkPhoneRequired             bool `json:"workPhoneRequired"`
	AlternateEmailRequired        bool `json:"alternateEmailRequired"`
	EmergencyContactRequired      bool `json:"emergencyContactRequired"`
	EmergencyContactPhoneRequired bool `json:"emergencyContactPhoneRequired"`
}

// AggregatedRequirements is the unified requirement set for one checkout
// session. PerTraveler always has exactly MaxTravelers entries.
type AggregatedRequirements struct {
	Shared       SharedRequirement     `json:"shared"`
	PerTraveler  []TravelerRequirement `json:"perTraveler"`
	MaxTravelers int                   `json:"maxTravelers"`
}

// DefaultTravelerRequirement returns the full default requirement set used
// when an offer carries no requirement metadata at all. Absence of metadata
// must never be read as "nothing required".
func DefaultTravelerRequirement() TravelerRequirement {
	return TravelerRequirement{
		FirstName:           true,
		LastName:            true,
		GenderRequired:      true,
		DateOfBirthRequired: true,
		NationalityRequired: true,
		DocumentRequired:    true,
		EmailRequired:       true,
		PhoneNumberRequired: true,
		NationalIDRequired:  true,
	}
}

// Merge returns the union of two traveler requirements: any flag set in
// either side is set in the result. Adding requirements is monotonic.
func (t TravelerRequirement) Merge(o TravelerRequirement) TravelerRequirement {
	return TravelerRequirement{
		FirstName:            t.FirstName || o.FirstName,
		LastName:             t.LastName || o.LastName,
		GenderRequired:       t.GenderRequired || o.GenderRequired,
		DateOfBirthRequired:  t.DateOfBirthRequired || o.DateOfBirthRequired,
		NationalityRequired:  t.NationalityRequired || o.NationalityRequired,
		DocumentRequired:     t.DocumentRequired || o.DocumentRequired,
		EmailRequired:        t.EmailRequired || o.EmailRequired,
		PhoneNumberRequired:  t.PhoneNumberRequired || o.PhoneNumberRequired,
		NationalIDRequired:   t.NationalIDRequired || o.NationalIDRequired,
		RedressRequiredIfAny: t.RedressRequiredIfAny || o.RedressRequiredIfAny,
		ResidenceRequired:    t.ResidenceRequired || o.ResidenceRequired,
	}
}

// Merge returns the union of two shared requirement sets.
func (s SharedRequirement) Merge(o SharedRequirement) SharedRequirement {
	return SharedRequirement{
		EmailAddressRequired:          s.EmailAddressRequired || o.EmailAddressRequired,
		MobilePhoneNumberRequired:     s.MobilePhoneNumberRequired || o.MobilePhoneNumberRequired,
		HomePhoneRequired:             s.HomePhoneRequired || o.HomePhoneRequired,
		WorkPhoneRequired:             s.WorkPhoneRequired || o.WorkPhoneRequired,
		AlternateEmailRequired:        s.AlternateEmailRequired || o.AlternateEmailRequired,
		EmergencyContactRequired:      s.EmergencyContactRequired || o.EmergencyContactRequired,
		EmergencyContactPhoneRequired: s.EmergencyContactPhoneRequired || o.EmergencyContactPhoneRequired,
	}
}
