package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TalentProfile is the matching snapshot of a freelancer profile. It is a
// read-only input to the scoring engine; the owning talent record lives in
// the store.
type TalentProfile struct {
	ID               uuid.UUID    `json:"id"`
	Competences      []string     `json:"competences" validate:"required,min=1,dive,required"`
	AnneesExperience int          `json:"anneesExperience" validate:"min=0"`
	TJM              *float64     `json:"tjm,omitempty" validate:"omitempty,gt=0"`
	TJMMin           *float64     `json:"tjmMin,omitempty" validate:"omitempty,gt=0"`
	TJMMax           *float64     `json:"tjmMax,omitempty" validate:"omitempty,gt=0"`
	Disponibilite    Availability `json:"disponibilite" validate:"required,oneof=IMMEDIATE SOUS_15_JOURS SOUS_1_MOIS SOUS_2_MOIS SOUS_3_MOIS DATE_PRECISE NON_DISPONIBLE"`
	DisponibleLe     *time.Time   `json:"disponibleLe,omitempty"`
	Mobilite         Mobility     `json:"mobilite" validate:"required,oneof=FULL_REMOTE TELETRAVAIL HYBRIDE SUR_SITE FLEXIBLE"`
	Ville            *string      `json:"ville,omitempty"`
}

// OfferRequirements is the matching snapshot of a published offer. Read-only
// input to the scoring engine.
type OfferRequirements struct {
	ID                    uuid.UUID  `json:"id"`
	// CompetencesRequises may be empty: an offer declaring no required
	// skills matches every talent on the skill dimension.
	CompetencesRequises   []string   `json:"competencesRequises" validate:"dive,required"`
	CompetencesSouhaitees []string   `json:"competencesSouhaitees,omitempty"`
	ExperienceMin         *int       `json:"experienceMin,omitempty" validate:"omitempty,min=0"`
	TJMMin                *float64   `json:"tjmMin,omitempty" validate:"omitempty,gt=0"`
	TJMMax                *float64   `json:"tjmMax,omitempty" validate:"omitempty,gt=0"`
	DateDebut             *time.Time `json:"dateDebut,omitempty"`
	Mobilite              Mobility   `json:"mobilite" validate:"required,oneof=FULL_REMOTE TELETRAVAIL HYBRIDE SUR_SITE FLEXIBLE"`
	Lieu                  *string    `json:"lieu,omitempty"`
}

// Commitment is a confirmed engagement of a talent, used to surface schedule
// conflicts alongside the availability dimension.
type Commitment struct {
	OfferID uuid.UUID `json:"offerId"`
	Title   string    `json:"title"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

// Overlaps reports whether the commitment overlaps a mission starting at the
// given date. A commitment with a zero end date is treated as open-ended.
func (c Commitment) Overlaps(start time.Time) bool {
	if c.End.IsZero() {
		return !start.Before(c.Start)
	}
	return !start.Before(c.Start) && !start.After(c.End)
}

// Validate validates the TalentProfile using the validator.
func (t *TalentProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}

// Validate validates the OfferRequirements using the validator.
func (o *OfferRequirements) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}
