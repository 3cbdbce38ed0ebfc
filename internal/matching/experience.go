package matching

import (
	"fmt"

	"github.com/mathieu/talent-match/internal/types"
)

// EvaluateExperience compares a talent's years of experience against an
// offer's minimum. No declared minimum means a full score; being well above
// the minimum is flagged as overqualified but never penalized.
func EvaluateExperience(talent *types.TalentProfile, offer *types.OfferRequirements, p Params) types.ExperienceDetail {
	detail := types.ExperienceDetail{
		Required: offer.ExperienceMin,
		Yours:    talent.AnneesExperience,
	}

	if offer.ExperienceMin == nil {
		detail.Status = types.ExperienceOK
		detail.Score = 100
		detail.Message = "No minimum experience required"
		return detail
	}

	minYears := *offer.ExperienceMin
	switch {
	case talent.AnneesExperience >= minYears+p.OverqualifiedMargin:
		detail.Status = types.ExperienceOverqualified
		detail.Score = 100
		detail.Message = fmt.Sprintf("%d years of experience, well above the %d required", talent.AnneesExperience, minYears)
	case talent.AnneesExperience >= minYears:
		detail.Status = types.ExperienceOK
		detail.Score = 100
		detail.Message = fmt.Sprintf("%d years of experience meets the %d required", talent.AnneesExperience, minYears)
	default:
		shortfall := minYears - talent.AnneesExperience
		score := 100 - shortfall*p.ExperienceShortfallPenalty
		if score < 0 {
			score = 0
		}
		detail.Status = types.ExperienceInsufficient
		detail.Score = score
		detail.Message = fmt.Sprintf("%d years of experience, %d short of the %d required", talent.AnneesExperience, shortfall, minYears)
	}
	return detail
}
