package matching

import (
	"strings"

	"github.com/mathieu/talent-match/internal/types"
)

// sameCity compares two optional city names, case-insensitive and trimmed.
// Unknown on either side is never a match.
func sameCity(a, b *string) bool {
	if a == nil || b == nil {
		return false
	}
	left := strings.ToLower(strings.TrimSpace(*a))
	right := strings.ToLower(strings.TrimSpace(*b))
	return left != "" && left == right
}

// EvaluateLocation checks the offer's work mode and location against the
// talent's mobility and city. This dimension is a near-hard filter: full
// score when compatible, a low fixed score otherwise. NON_COMPATIBLE is
// reserved for offers requiring presence the talent cannot provide; it gates
// the ability to apply.
func EvaluateLocation(talent *types.TalentProfile, offer *types.OfferRequirements, p Params) types.LocationDetail {
	offerMode := offer.Mobilite.Canonical()
	talentMode := talent.Mobilite.Canonical()

	ok := func(msg string) types.LocationDetail {
		return types.LocationDetail{Status: types.LocationOK, Score: 100, Message: msg}
	}

	if offerMode == types.MobilityFlexible || talentMode == types.MobilityFlexible {
		return ok("Work mode is flexible")
	}

	if offerMode == types.MobilityFullRemote {
		if talentMode == types.MobilityFullRemote {
			return ok("Both sides work full remote")
		}
		// Presence-preferring talent on a remote offer is a preference
		// mismatch, not an impossibility.
		return types.LocationDetail{
			Status:  types.LocationDistant,
			Score:   p.LocationMismatchScore,
			Message: "Offer is full remote but the talent prefers on-site work",
		}
	}

	// Offer requires presence (on-site or hybrid).
	if talentMode == types.MobilityFullRemote {
		return types.LocationDetail{
			Status:  types.LocationIncompatible,
			Score:   p.LocationMismatchScore,
			Message: "Offer requires on-site presence but the talent works full remote",
		}
	}
	if sameCity(offer.Lieu, talent.Ville) {
		return ok("Compatible location")
	}
	if offer.Lieu == nil || talent.Ville == nil {
		return types.LocationDetail{
			Status:  types.LocationDistant,
			Score:   p.LocationMismatchScore,
			Message: "Location compatibility could not be verified",
		}
	}
	return types.LocationDetail{
		Status:  types.LocationIncompatible,
		Score:   p.LocationMismatchScore,
		Message: "Offer requires presence in " + *offer.Lieu + " but the talent is in " + *talent.Ville,
	}
}
