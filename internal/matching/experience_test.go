package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mathieu/talent-match/internal/types"
)

func TestEvaluateExperience_NoMinimumRequired(t *testing.T) {
	talent := remoteTalent("Go")
	talent.AnneesExperience = 0
	offer := remoteOffer("Go")

	detail := EvaluateExperience(talent, offer, DefaultParams())

	assert.Equal(t, types.ExperienceOK, detail.Status)
	assert.Equal(t, 100, detail.Score)
	assert.Nil(t, detail.Required)
}

func TestEvaluateExperience_MeetsMinimum(t *testing.T) {
	talent := remoteTalent("Go")
	talent.AnneesExperience = 5
	offer := remoteOffer("Go")
	offer.ExperienceMin = iptr(3)

	detail := EvaluateExperience(talent, offer, DefaultParams())

	assert.Equal(t, types.ExperienceOK, detail.Status)
	assert.Equal(t, 100, detail.Score)
	assert.Equal(t, 5, detail.Yours)
}

func TestEvaluateExperience_Overqualified(t *testing.T) {
	talent := remoteTalent("Go")
	talent.AnneesExperience = 12
	offer := remoteOffer("Go")
	offer.ExperienceMin = iptr(3)

	detail := EvaluateExperience(talent, offer, DefaultParams())

	// Informational only: flagged but never penalized.
	assert.Equal(t, types.ExperienceOverqualified, detail.Status)
	assert.Equal(t, 100, detail.Score)
}

func TestEvaluateExperience_Insufficient(t *testing.T) {
	talent := remoteTalent("Go")
	talent.AnneesExperience = 1
	offer := remoteOffer("Go")
	offer.ExperienceMin = iptr(3)

	detail := EvaluateExperience(talent, offer, DefaultParams())

	assert.Equal(t, types.ExperienceInsufficient, detail.Status)
	assert.Equal(t, 60, detail.Score)
}

func TestEvaluateExperience_ShortfallFloorsAtZero(t *testing.T) {
	talent := remoteTalent("Go")
	talent.AnneesExperience = 0
	offer := remoteOffer("Go")
	offer.ExperienceMin = iptr(10)

	detail := EvaluateExperience(talent, offer, DefaultParams())

	assert.Equal(t, types.ExperienceInsufficient, detail.Status)
	assert.Equal(t, 0, detail.Score)
}
