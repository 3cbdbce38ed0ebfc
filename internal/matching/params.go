package matching

import "fmt"

// Weights holds the relative weight of each dimension in the overall score.
// Values are percentages and must sum to 100.
type Weights struct {
	Skills       int `json:"skills"`
	Experience   int `json:"experience"`
	Rate         int `json:"rate"`
	Availability int `json:"availability"`
	Location     int `json:"location"`
}

// Sum returns the total of all weights.
func (w Weights) Sum() int {
	return w.Skills + w.Experience + w.Rate + w.Availability + w.Location
}

// Params holds every tunable of the scoring engine in one place, so the
// weighting and decay curves can be adjusted without touching evaluator code.
type Params struct {
	Weights Weights `json:"weights"`

	// Experience: points lost per missing year below the offer minimum, and
	// the margin above the minimum (in years) past which a talent is flagged
	// as overqualified (informational, never penalized).
	ExperienceShortfallPenalty int `json:"experience_shortfall_penalty"`
	OverqualifiedMargin        int `json:"overqualified_margin"`

	// Rate: neutral score when either side declares nothing, and points lost
	// per percent of overshoot above the offer's maximum budget.
	RateNeutralScore    int `json:"rate_neutral_score"`
	RateOvershootFactor int `json:"rate_overshoot_factor"`

	// Availability: days past the desired start still considered "soon", and
	// points lost per day beyond that window.
	AvailabilityGraceDays int `json:"availability_grace_days"`
	AvailabilityLateDecay int `json:"availability_late_decay"`
	AvailabilityLateFloor int `json:"availability_late_floor"`
	UnavailableScore      int `json:"unavailable_score"`
	LocationMismatchScore int `json:"location_mismatch_score"`
}

// DefaultParams returns the engine defaults: skill fit dominates, a single
// unspecified dimension cannot alone sink a strong match.
func DefaultParams() Params {
	return Params{
		Weights: Weights{
			Skills:       50,
			Experience:   15,
			Rate:         15,
			Availability: 10,
			Location:     10,
		},
		ExperienceShortfallPenalty: 20,
		OverqualifiedMargin:        5,
		RateNeutralScore:           70,
		RateOvershootFactor:        2,
		AvailabilityGraceDays:      30,
		AvailabilityLateDecay:      2,
		AvailabilityLateFloor:      10,
		UnavailableScore:           10,
		LocationMismatchScore:      20,
	}
}

// Validate checks the params for internal consistency.
func (p Params) Validate() error {
	if s := p.Weights.Sum(); s != 100 {
		return &Error{Message: fmt.Sprintf("dimension weights must sum to 100, got %d", s)}
	}
	if p.ExperienceShortfallPenalty < 0 || p.RateOvershootFactor < 0 || p.AvailabilityLateDecay < 0 {
		return &Error{Message: "decay factors must be non-negative"}
	}
	if p.RateNeutralScore < 0 || p.RateNeutralScore > 100 {
		return &Error{Message: fmt.Sprintf("rate neutral score out of range: %d", p.RateNeutralScore)}
	}
	return nil
}
