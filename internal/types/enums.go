// Package types provides type definitions for structured data used throughout the talent-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Availability represents a talent's declared availability state.
type Availability string

const (
	AvailabilityImmediate   Availability = "IMMEDIATE"
	AvailabilityWithin15d   Availability = "SOUS_15_JOURS"
	AvailabilityWithin1mo   Availability = "SOUS_1_MOIS"
	AvailabilityWithin2mo   Availability = "SOUS_2_MOIS"
	AvailabilityWithin3mo   Availability = "SOUS_3_MOIS"
	AvailabilityOnDate      Availability = "DATE_PRECISE"
	AvailabilityUnavailable Availability = "NON_DISPONIBLE"
)

// IsValid reports whether the availability value is a known state.
func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityImmediate, AvailabilityWithin15d, AvailabilityWithin1mo,
		AvailabilityWithin2mo, AvailabilityWithin3mo, AvailabilityOnDate,
		AvailabilityUnavailable:
		return true
	default:
		return false
	}
}

// DelayDays returns the nominal lead time in days implied by a relative
// availability state. Zero for immediate, date-based and unavailable states.
func (a Availability) DelayDays() int {
	switch a {
	case AvailabilityWithin15d:
		return 15
	case AvailabilityWithin1mo:
		return 30
	case AvailabilityWithin2mo:
		return 60
	case AvailabilityWithin3mo:
		return 90
	default:
		return 0
	}
}

// Mobility represents a work-mode preference. The same domain is used for a
// talent's preference and an offer's required work mode.
type Mobility string

const (
	MobilityFullRemote Mobility = "FULL_REMOTE"
	MobilityHybrid     Mobility = "HYBRIDE"
	MobilityOnSite     Mobility = "SUR_SITE"
	MobilityFlexible   Mobility = "FLEXIBLE"

	// MobilityTeleworkAlias is a legacy synonym for FULL_REMOTE still present
	// in older profile rows. Canonical() folds it away.
	MobilityTeleworkAlias Mobility = "TELETRAVAIL"
)

// Canonical maps legacy synonyms onto the canonical mobility values.
func (m Mobility) Canonical() Mobility {
	if m == MobilityTeleworkAlias {
		return MobilityFullRemote
	}
	return m
}

// IsValid reports whether the mobility value is a known work mode.
func (m Mobility) IsValid() bool {
	switch m.Canonical() {
	case MobilityFullRemote, MobilityHybrid, MobilityOnSite, MobilityFlexible:
		return true
	default:
		return false
	}
}

// ExperienceStatus classifies the experience dimension of a match.
type ExperienceStatus string

const (
	ExperienceOK            ExperienceStatus = "OK"
	ExperienceOverqualified ExperienceStatus = "SURQUALIFIE"
	ExperienceInsufficient  ExperienceStatus = "INSUFFISANT"
)

// RateStatus classifies the day-rate dimension of a match.
type RateStatus string

const (
	RateOK          RateStatus = "OK"
	RateTooHigh     RateStatus = "TROP_HAUT"
	RateTooLow      RateStatus = "TROP_BAS"
	RateUnspecified RateStatus = "NON_RENSEIGNE"
)

// AvailabilityStatus classifies the availability dimension of a match.
type AvailabilityStatus string

const (
	AvailabilityStatusAvailable   AvailabilityStatus = "DISPONIBLE"
	AvailabilityStatusSoon        AvailabilityStatus = "BIENTOT"
	AvailabilityStatusOnMission   AvailabilityStatus = "EN_MISSION"
	AvailabilityStatusUnavailable AvailabilityStatus = "NON_DISPONIBLE"
)

// LocationStatus classifies the location/mobility dimension of a match.
type LocationStatus string

const (
	LocationOK           LocationStatus = "OK"
	LocationDistant      LocationStatus = "ELOIGNE"
	LocationIncompatible LocationStatus = "NON_COMPATIBLE"
)

// Recommendation is the tier a match score falls into.
type Recommendation string

const (
	RecommendationExcellent      Recommendation = "EXCELLENT"
	RecommendationGood           Recommendation = "BON"
	RecommendationAverage        Recommendation = "MOYEN"
	RecommendationWeak           Recommendation = "FAIBLE"
	RecommendationNotRecommended Recommendation = "NON_RECOMMANDE"
)

// RecommendationForScore maps an overall score (0-100) to its tier.
// Lower bounds are inclusive: 80, 60, 40, 20.
func RecommendationForScore(score int) Recommendation {
	switch {
	case score >= 80:
		return RecommendationExcellent
	case score >= 60:
		return RecommendationGood
	case score >= 40:
		return RecommendationAverage
	case score >= 20:
		return RecommendationWeak
	default:
		return RecommendationNotRecommended
	}
}
