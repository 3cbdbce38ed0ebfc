package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParams_Valid(t *testing.T) {
	p := DefaultParams()
	assert.NoError(t, p.Validate())
	assert.Equal(t, 100, p.Weights.Sum())
	assert.Equal(t, 50, p.Weights.Skills)
}

func TestParamsValidate_WeightsMustSumTo100(t *testing.T) {
	p := DefaultParams()
	p.Weights.Skills = 60

	err := p.Validate()
	assert.ErrorContains(t, err, "sum to 100")
}

func TestParamsValidate_NegativeDecayRejected(t *testing.T) {
	p := DefaultParams()
	p.RateOvershootFactor = -1

	assert.Error(t, p.Validate())
}

func TestParamsValidate_NeutralScoreRange(t *testing.T) {
	p := DefaultParams()
	p.RateNeutralScore = 130

	assert.ErrorContains(t, p.Validate(), "out of range")
}
