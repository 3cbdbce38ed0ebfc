package matching

import (
	"fmt"
	"math"

	"github.com/mathieu/talent-match/internal/types"
)

// notRecommendedCeiling is the highest overall score a match can carry when a
// hard gate fails: the tier function then always lands on NON_RECOMMANDE.
const notRecommendedCeiling = 19

// Aggregate combines the five dimension results into the overall match
// result. The score is a weighted sum of the sub-scores; the apply gate is
// independent of the numeric thresholds and trips on an incompatible
// location or a talent who is unavailable, whether declared outright or
// engaged on a running mission. A tripped gate also caps the score so
// the recommendation tier reflects that the match is not actionable.
func Aggregate(details types.MatchDetails, p Params) types.MatchResult {
	weighted := float64(p.Weights.Skills)*float64(details.Competences.Score) +
		float64(p.Weights.Experience)*float64(details.Experience.Score) +
		float64(p.Weights.Rate)*float64(details.TJM.Score) +
		float64(p.Weights.Availability)*float64(details.Disponibilite.Score) +
		float64(p.Weights.Location)*float64(details.Localisation.Score)
	score := int(math.Round(weighted / 100))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	canApply := details.Localisation.Status != types.LocationIncompatible &&
		details.Disponibilite.Status != types.AvailabilityStatusUnavailable &&
		details.Disponibilite.Status != types.AvailabilityStatusOnMission
	if !canApply && score > notRecommendedCeiling {
		score = notRecommendedCeiling
	}

	recommendation := types.RecommendationForScore(score)
	return types.MatchResult{
		Score:          score,
		CanApply:       canApply,
		Recommendation: recommendation,
		Message:        summarize(recommendation, details, p),
		Details:        details,
	}
}

var tierPhrases = map[types.Recommendation]string{
	types.RecommendationExcellent:      "Excellent match",
	types.RecommendationGood:           "Good match",
	types.RecommendationAverage:        "Average match",
	types.RecommendationWeak:           "Weak match",
	types.RecommendationNotRecommended: "Not recommended",
}

// summarize builds a one-line summary from the tier and the weakest
// dimension. Dimensions are walked in weight order so ties resolve the same
// way on every call.
func summarize(rec types.Recommendation, details types.MatchDetails, p Params) string {
	dims := []struct {
		name  string
		score int
	}{
		{"required skills", details.Competences.Score},
		{"experience", details.Experience.Score},
		{"day rate", details.TJM.Score},
		{"availability", details.Disponibilite.Score},
		{"location", details.Localisation.Score},
	}

	weakest := dims[0]
	for _, d := range dims[1:] {
		if d.score < weakest.score {
			weakest = d
		}
	}

	phrase := tierPhrases[rec]
	if weakest.score >= 100 {
		return phrase + ": strong fit on every dimension"
	}
	return fmt.Sprintf("%s: weakest dimension is %s (%d/100)", phrase, weakest.name, weakest.score)
}
