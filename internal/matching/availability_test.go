package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mathieu/talent-match/internal/types"
)

func TestEvaluateAvailability_ImmediateIsAvailable(t *testing.T) {
	talent := remoteTalent("Go")
	offer := remoteOffer("Go")

	detail := EvaluateAvailability(talent, offer, nil, DefaultParams(), refNow)

	assert.Equal(t, types.AvailabilityStatusAvailable, detail.Status)
	assert.Equal(t, 100, detail.Score)
	assert.NotNil(t, detail.Conflits)
	assert.Empty(t, detail.Conflits)
}

func TestEvaluateAvailability_TargetDateBeforeStartIsAvailable(t *testing.T) {
	talent := remoteTalent("Go")
	talent.Disponibilite = types.AvailabilityOnDate
	talent.DisponibleLe = tptr(refNow.AddDate(0, 0, 10))
	offer := remoteOffer("Go")
	offer.DateDebut = tptr(refNow.AddDate(0, 0, 20))

	detail := EvaluateAvailability(talent, offer, nil, DefaultParams(), refNow)

	assert.Equal(t, types.AvailabilityStatusAvailable, detail.Status)
	assert.Equal(t, 100, detail.Score)
}

func TestEvaluateAvailability_SoonWithinGraceWindow(t *testing.T) {
	talent := remoteTalent("Go")
	talent.Disponibilite = types.AvailabilityWithin1mo
	offer := remoteOffer("Go")
	offer.DateDebut = tptr(refNow.AddDate(0, 0, 15))

	detail := EvaluateAvailability(talent, offer, nil, DefaultParams(), refNow)

	// 15 days late, inside the 30-day grace window.
	assert.Equal(t, types.AvailabilityStatusSoon, detail.Status)
	assert.Equal(t, 78, detail.Score)
}

func TestEvaluateAvailability_FarPastWindowFloorsLow(t *testing.T) {
	talent := remoteTalent("Go")
	talent.Disponibilite = types.AvailabilityWithin3mo
	offer := remoteOffer("Go")
	offer.DateDebut = tptr(refNow)

	detail := EvaluateAvailability(talent, offer, nil, DefaultParams(), refNow)

	assert.Equal(t, types.AvailabilityStatusSoon, detail.Status)
	assert.Equal(t, 10, detail.Score)
}

func TestEvaluateAvailability_UnavailableScoresNearZero(t *testing.T) {
	talent := remoteTalent("Go")
	talent.Disponibilite = types.AvailabilityUnavailable
	offer := remoteOffer("Go")

	detail := EvaluateAvailability(talent, offer, nil, DefaultParams(), refNow)

	assert.Equal(t, types.AvailabilityStatusUnavailable, detail.Status)
	assert.Equal(t, 10, detail.Score)
}

func TestEvaluateAvailability_UnavailableWithConflictsIsOnMission(t *testing.T) {
	talent := remoteTalent("Go")
	talent.Disponibilite = types.AvailabilityUnavailable
	offer := remoteOffer("Go")
	conflicts := []types.Commitment{
		{Title: "Mission BNP", Start: refNow.AddDate(0, -2, 0), End: refNow.AddDate(0, 4, 0)},
	}

	detail := EvaluateAvailability(talent, offer, conflicts, DefaultParams(), refNow)

	assert.Equal(t, types.AvailabilityStatusOnMission, detail.Status)
	assert.Equal(t, 10, detail.Score)
	assert.Len(t, detail.Conflits, 1)
}

func TestEvaluateAvailability_ConflictsDoNotAffectScore(t *testing.T) {
	talent := remoteTalent("Go")
	offer := remoteOffer("Go")
	conflicts := []types.Commitment{
		{Title: "Part-time retainer", Start: refNow.AddDate(0, -1, 0)},
	}

	with := EvaluateAvailability(talent, offer, conflicts, DefaultParams(), refNow)
	without := EvaluateAvailability(talent, offer, nil, DefaultParams(), refNow)

	assert.Equal(t, without.Score, with.Score)
	assert.Equal(t, without.Status, with.Status)
	assert.Len(t, with.Conflits, 1)
}

func TestEvaluateAvailability_MissingPreciseDateDegrades(t *testing.T) {
	talent := remoteTalent("Go")
	talent.Disponibilite = types.AvailabilityOnDate
	talent.DisponibleLe = nil
	offer := remoteOffer("Go")

	detail := EvaluateAvailability(talent, offer, nil, DefaultParams(), refNow)

	assert.Equal(t, types.AvailabilityStatusSoon, detail.Status)
	assert.Equal(t, 10, detail.Score)
}

func TestCommitmentOverlaps(t *testing.T) {
	c := types.Commitment{Start: refNow, End: refNow.AddDate(0, 3, 0)}

	assert.True(t, c.Overlaps(refNow.AddDate(0, 1, 0)))
	assert.False(t, c.Overlaps(refNow.AddDate(0, 4, 0)))

	open := types.Commitment{Start: refNow}
	assert.True(t, open.Overlaps(refNow.AddDate(1, 0, 0)))
	assert.False(t, open.Overlaps(refNow.AddDate(0, 0, -1)))
}
