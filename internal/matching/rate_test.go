package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mathieu/talent-match/internal/types"
)

func TestEvaluateRate_WithinBudget(t *testing.T) {
	talent := remoteTalent("Go")
	talent.TJM = fptr(500)
	offer := remoteOffer("Go")
	offer.TJMMin = fptr(400)
	offer.TJMMax = fptr(600)

	detail := EvaluateRate(talent, offer, DefaultParams())

	assert.Equal(t, types.RateOK, detail.Status)
	assert.Equal(t, 100, detail.Score)
}

func TestEvaluateRate_NoRateDeclaredIsNeutral(t *testing.T) {
	talent := remoteTalent("Go")
	offer := remoteOffer("Go")
	offer.TJMMax = fptr(600)

	detail := EvaluateRate(talent, offer, DefaultParams())

	assert.Equal(t, types.RateUnspecified, detail.Status)
	assert.Equal(t, 70, detail.Score)
}

func TestEvaluateRate_NoBudgetDeclaredIsNeutral(t *testing.T) {
	talent := remoteTalent("Go")
	talent.TJM = fptr(500)
	offer := remoteOffer("Go")

	detail := EvaluateRate(talent, offer, DefaultParams())

	assert.Equal(t, types.RateUnspecified, detail.Status)
	assert.Equal(t, 70, detail.Score)
}

func TestEvaluateRate_TooHighDecaysWithOvershoot(t *testing.T) {
	talent := remoteTalent("Go")
	talent.TJM = fptr(650)
	offer := remoteOffer("Go")
	offer.TJMMax = fptr(600)

	detail := EvaluateRate(talent, offer, DefaultParams())

	// 8% over budget costs 16 points.
	assert.Equal(t, types.RateTooHigh, detail.Status)
	assert.Equal(t, 84, detail.Score)
}

func TestEvaluateRate_FarTooHighFloorsAtZero(t *testing.T) {
	talent := remoteTalent("Go")
	talent.TJM = fptr(900)
	offer := remoteOffer("Go")
	offer.TJMMax = fptr(600)

	detail := EvaluateRate(talent, offer, DefaultParams())

	assert.Equal(t, types.RateTooHigh, detail.Status)
	assert.Equal(t, 0, detail.Score)
}

func TestEvaluateRate_TooLowIsInformationalOnly(t *testing.T) {
	talent := remoteTalent("Go")
	talent.TJM = fptr(300)
	offer := remoteOffer("Go")
	offer.TJMMin = fptr(400)
	offer.TJMMax = fptr(600)

	detail := EvaluateRate(talent, offer, DefaultParams())

	assert.Equal(t, types.RateTooLow, detail.Status)
	assert.Equal(t, 100, detail.Score)
}

func TestEvaluateRate_RangeUsesTalentMinimumAgainstBudgetMax(t *testing.T) {
	talent := remoteTalent("Go")
	talent.TJMMin = fptr(700)
	talent.TJMMax = fptr(800)
	offer := remoteOffer("Go")
	offer.TJMMax = fptr(600)

	detail := EvaluateRate(talent, offer, DefaultParams())

	assert.Equal(t, types.RateTooHigh, detail.Status)
}

func TestEvaluateRate_OverlappingRangesAreCompatible(t *testing.T) {
	talent := remoteTalent("Go")
	talent.TJMMin = fptr(450)
	talent.TJMMax = fptr(700)
	offer := remoteOffer("Go")
	offer.TJMMin = fptr(400)
	offer.TJMMax = fptr(600)

	detail := EvaluateRate(talent, offer, DefaultParams())

	assert.Equal(t, types.RateOK, detail.Status)
	assert.Equal(t, 100, detail.Score)
}
