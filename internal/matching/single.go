package matching

import (
	"time"

	"github.com/mathieu/talent-match/internal/types"
)

// Evaluate produces the full compatibility report for one talent/offer pair.
// It is a pure function: identical inputs (including the reference time)
// yield an identical result, and no side effects occur. Structurally invalid
// inputs are rejected before any scoring happens.
func Evaluate(talent *types.TalentProfile, offer *types.OfferRequirements, conflicts []types.Commitment, p Params, now time.Time) (*types.MatchResult, error) {
	if talent == nil {
		return nil, &Error{Message: "talent profile is required"}
	}
	if offer == nil {
		return nil, &Error{Message: "offer requirements are required"}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := talent.Validate(); err != nil {
		return nil, invalidInput("talent profile", err)
	}
	if err := offer.Validate(); err != nil {
		return nil, invalidInput("offer requirements", err)
	}

	details := types.MatchDetails{
		Competences:   EvaluateSkills(talent, offer),
		Experience:    EvaluateExperience(talent, offer, p),
		TJM:           EvaluateRate(talent, offer, p),
		Disponibilite: EvaluateAvailability(talent, offer, conflicts, p, now),
		Localisation:  EvaluateLocation(talent, offer, p),
	}

	result := Aggregate(details, p)
	result.TalentID = talent.ID
	return &result, nil
}
