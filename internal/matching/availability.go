package matching

import (
	"fmt"
	"time"

	"github.com/mathieu/talent-match/internal/types"
)

// availableFrom resolves the date a talent can start, relative to the
// reference time. Returns nil when the state carries no usable date
// (immediate availability resolves to the reference time itself).
func availableFrom(t *types.TalentProfile, now time.Time) *time.Time {
	switch t.Disponibilite {
	case types.AvailabilityImmediate:
		return &now
	case types.AvailabilityOnDate:
		return t.DisponibleLe
	case types.AvailabilityUnavailable:
		return nil
	default:
		d := now.AddDate(0, 0, t.Disponibilite.DelayDays())
		return &d
	}
}

// EvaluateAvailability compares the talent's availability against the offer's
// desired start date. The conflicts list comes from the caller (confirmed
// commitments overlapping the mission start) and is informational only: it is
// surfaced on the result, always non-nil, and never changes the score.
func EvaluateAvailability(talent *types.TalentProfile, offer *types.OfferRequirements, conflicts []types.Commitment, p Params, now time.Time) types.AvailabilityDetail {
	detail := types.AvailabilityDetail{Conflits: conflicts}
	if detail.Conflits == nil {
		detail.Conflits = []types.Commitment{}
	}

	if talent.Disponibilite == types.AvailabilityUnavailable {
		if len(detail.Conflits) > 0 {
			detail.Status = types.AvailabilityStatusOnMission
			detail.Message = "Currently engaged on a mission"
		} else {
			detail.Status = types.AvailabilityStatusUnavailable
			detail.Message = "Not available"
		}
		detail.Score = p.UnavailableScore
		return detail
	}

	from := availableFrom(talent, now)
	if from == nil {
		// DATE_PRECISE with no date set degrades to "soon" rather than failing.
		detail.Status = types.AvailabilityStatusSoon
		detail.Score = p.AvailabilityLateFloor
		detail.Message = "Availability date not set"
		return detail
	}

	start := now
	if offer.DateDebut != nil {
		start = *offer.DateDebut
	}

	if !from.After(start) {
		detail.Status = types.AvailabilityStatusAvailable
		detail.Score = 100
		detail.Message = "Available for the desired start date"
		return detail
	}

	lateDays := int(from.Sub(start).Hours() / 24)
	if lateDays <= p.AvailabilityGraceDays {
		detail.Status = types.AvailabilityStatusSoon
		detail.Score = 100 - (100-p.AvailabilityLateFloor)*lateDays/(2*p.AvailabilityGraceDays)
		detail.Message = fmt.Sprintf("Available %d days after the desired start", lateDays)
		return detail
	}

	score := 100 - (100-p.AvailabilityLateFloor)/2 - (lateDays-p.AvailabilityGraceDays)*p.AvailabilityLateDecay
	if score < p.AvailabilityLateFloor {
		score = p.AvailabilityLateFloor
	}
	detail.Status = types.AvailabilityStatusSoon
	detail.Score = score
	detail.Message = fmt.Sprintf("Available %d days after the desired start", lateDays)
	return detail
}
