package types

import (
	"time"

	"github.com/google/uuid"
)

// SkillsDetail is the skills dimension of a match result.
type SkillsDetail struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Bonus   []string `json:"bonus"`
	Score   int      `json:"score"`
}

// ExperienceDetail is the experience dimension of a match result.
type ExperienceDetail struct {
	Required *int             `json:"required,omitempty"`
	Yours    int              `json:"yours"`
	Status   ExperienceStatus `json:"status"`
	Score    int              `json:"score"`
	Message  string           `json:"message"`
}

// RateDetail is the day-rate dimension of a match result.
type RateDetail struct {
	OffreMin *float64   `json:"offreMin,omitempty"`
	OffreMax *float64   `json:"offreMax,omitempty"`
	Yours    *float64   `json:"yours,omitempty"`
	Status   RateStatus `json:"status"`
	Score    int        `json:"score"`
	Message  string     `json:"message"`
}

// AvailabilityDetail is the availability dimension of a match result.
// Conflits is informational only and is always present, never nil.
type AvailabilityDetail struct {
	Status   AvailabilityStatus `json:"status"`
	Score    int                `json:"score"`
	Message  string             `json:"message"`
	Conflits []Commitment       `json:"conflits"`
}

// LocationDetail is the location/mobility dimension of a match result.
type LocationDetail struct {
	Status  LocationStatus `json:"status"`
	Score   int            `json:"score"`
	Message string         `json:"message"`
}

// MatchDetails groups the five dimension results. All five are always
// populated; a missing optional input degrades a dimension's score instead
// of dropping it.
type MatchDetails struct {
	Competences   SkillsDetail       `json:"competences"`
	Experience    ExperienceDetail   `json:"experience"`
	TJM           RateDetail         `json:"tjm"`
	Disponibilite AvailabilityDetail `json:"disponibilite"`
	Localisation  LocationDetail     `json:"localisation"`
}

// MatchResult is the full compatibility report for one talent/offer pair.
type MatchResult struct {
	TalentID       uuid.UUID      `json:"talentId,omitempty"`
	Score          int            `json:"score"`
	CanApply       bool           `json:"canApply"`
	Recommendation Recommendation `json:"recommendation"`
	Message        string         `json:"message"`
	Details        MatchDetails   `json:"details"`
}

// RankedMatch is one entry of a bulk matching run, in the shape consumed by
// the persistence and notification collaborators.
type RankedMatch struct {
	TalentID              uuid.UUID `json:"talentId"`
	Score                 int       `json:"score"`
	CompetencesMatchees   []string  `json:"competencesMatchees"`
	CompetencesManquantes []string  `json:"competencesManquantes"`
}

// MatchEvent is emitted by the bulk matcher for each retained match. It is
// the hand-off boundary to the notification/persistence collaborators; the
// engine never performs that I/O itself.
type MatchEvent struct {
	OfferID  uuid.UUID `json:"offerId"`
	TalentID uuid.UUID `json:"talentId"`
	Score    int       `json:"score"`
	Matched  []string  `json:"matched"`
	Missing  []string  `json:"missing"`
}

// Match is the persisted record linking a talent to an offer with its
// computed score.
type Match struct {
	ID                    uuid.UUID `json:"id"`
	OfferID               uuid.UUID `json:"offerId"`
	TalentID              uuid.UUID `json:"talentId"`
	Score                 int       `json:"score"`
	CompetencesMatchees   []string  `json:"competencesMatchees"`
	CompetencesManquantes []string  `json:"competencesManquantes"`
	VuParTalent           bool      `json:"vuParTalent"`
	CreatedAt             time.Time `json:"createdAt"`
}
