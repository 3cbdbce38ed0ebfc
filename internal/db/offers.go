package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mathieu/talent-match/internal/types"
)

// GetOffer retrieves the matching snapshot of one published offer.
func (s *Store) GetOffer(ctx context.Context, offerID uuid.UUID) (*types.OfferRequirements, error) {
	var o types.OfferRequirements
	err := s.pool.QueryRow(ctx,
		`SELECT id, competences_requises, competences_souhaitees, experience_min,
		        tjm_min, tjm_max, date_debut, mobilite, lieu
		 FROM offres WHERE id = $1 AND statut = 'PUBLIEE'`,
		offerID,
	).Scan(&o.ID, &o.CompetencesRequises, &o.CompetencesSouhaitees, &o.ExperienceMin,
		&o.TJMMin, &o.TJMMax, &o.DateDebut, &o.Mobilite, &o.Lieu)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("offer %s: %w", offerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return &o, nil
}
