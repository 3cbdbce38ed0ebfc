package matching

import (
	"time"

	"github.com/google/uuid"

	"github.com/mathieu/talent-match/internal/types"
)

// refNow anchors date-relative scoring so tests are reproducible.
var refNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }
func tptr(v time.Time) *time.Time {
	return &v
}

// remoteTalent builds a valid full-remote talent profile with the given skills.
func remoteTalent(skills ...string) *types.TalentProfile {
	return &types.TalentProfile{
		ID:               uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Competences:      skills,
		AnneesExperience: 5,
		Disponibilite:    types.AvailabilityImmediate,
		Mobilite:         types.MobilityFullRemote,
	}
}

// remoteOffer builds a valid full-remote offer requiring the given skills.
func remoteOffer(required ...string) *types.OfferRequirements {
	return &types.OfferRequirements{
		ID:                  uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		CompetencesRequises: required,
		Mobilite:            types.MobilityFullRemote,
	}
}
