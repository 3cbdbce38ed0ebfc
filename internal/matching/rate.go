package matching

import (
	"fmt"
	"math"

	"github.com/mathieu/talent-match/internal/types"
)

// talentRateBounds resolves the talent's declared rate into a [low, high]
// band. A single TJM value collapses the band to a point; a declared range
// takes precedence over the single value on its side.
func talentRateBounds(t *types.TalentProfile) (low, high *float64) {
	low, high = t.TJMMin, t.TJMMax
	if low == nil {
		low = t.TJM
	}
	if high == nil {
		high = t.TJM
	}
	if high == nil {
		high = low
	}
	if low == nil {
		low = high
	}
	return low, high
}

// EvaluateRate compares the talent's day-rate against the offer's budget.
// An undeclared rate on either side is neutral, never blocking; being
// cheaper than the budget is informational, never a mismatch.
func EvaluateRate(talent *types.TalentProfile, offer *types.OfferRequirements, p Params) types.RateDetail {
	detail := types.RateDetail{
		OffreMin: offer.TJMMin,
		OffreMax: offer.TJMMax,
		Yours:    talent.TJM,
	}
	if detail.Yours == nil {
		detail.Yours = talent.TJMMin
	}

	low, high := talentRateBounds(talent)
	if low == nil {
		detail.Status = types.RateUnspecified
		detail.Score = p.RateNeutralScore
		detail.Message = "No day rate declared"
		return detail
	}
	if offer.TJMMin == nil && offer.TJMMax == nil {
		detail.Status = types.RateUnspecified
		detail.Score = p.RateNeutralScore
		detail.Message = "Offer declares no budget"
		return detail
	}

	if offer.TJMMax != nil && *low > *offer.TJMMax {
		overshootPct := (*low - *offer.TJMMax) / *offer.TJMMax * 100
		score := 100 - int(math.Round(overshootPct))*p.RateOvershootFactor
		if score < 0 {
			score = 0
		}
		detail.Status = types.RateTooHigh
		detail.Score = score
		detail.Message = fmt.Sprintf("Day rate %.0f exceeds the offer budget of %.0f", *low, *offer.TJMMax)
		return detail
	}

	if offer.TJMMin != nil && *high < *offer.TJMMin {
		detail.Status = types.RateTooLow
		detail.Score = 100
		detail.Message = fmt.Sprintf("Day rate %.0f is below the offer budget floor of %.0f", *high, *offer.TJMMin)
		return detail
	}

	detail.Status = types.RateOK
	detail.Score = 100
	detail.Message = "Day rate fits the offer budget"
	return detail
}
