package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mathieu/talent-match/internal/types"
)

// GetTalent retrieves the matching snapshot of one talent profile.
func (s *Store) GetTalent(ctx context.Context, talentID uuid.UUID) (*types.TalentProfile, error) {
	var t types.TalentProfile
	err := s.pool.QueryRow(ctx,
		`SELECT id, competences, annees_experience, tjm, tjm_min, tjm_max,
		        disponibilite, disponible_le, mobilite, ville
		 FROM talents WHERE id = $1`,
		talentID,
	).Scan(&t.ID, &t.Competences, &t.AnneesExperience, &t.TJM, &t.TJMMin, &t.TJMMax,
		&t.Disponibilite, &t.DisponibleLe, &t.Mobilite, &t.Ville)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("talent %s: %w", talentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get talent: %w", err)
	}
	return &t, nil
}

// ListSearchableTalents retrieves the talent pool eligible for bulk matching.
// Talents who opted out of search are excluded at the SQL level.
func (s *Store) ListSearchableTalents(ctx context.Context) ([]types.TalentProfile, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, competences, annees_experience, tjm, tjm_min, tjm_max,
		        disponibilite, disponible_le, mobilite, ville
		 FROM talents WHERE visible_dans_recherche ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list talents: %w", err)
	}
	defer rows.Close()

	var talents []types.TalentProfile
	for rows.Next() {
		var t types.TalentProfile
		if err := rows.Scan(&t.ID, &t.Competences, &t.AnneesExperience, &t.TJM, &t.TJMMin, &t.TJMMax,
			&t.Disponibilite, &t.DisponibleLe, &t.Mobilite, &t.Ville); err != nil {
			return nil, fmt.Errorf("failed to scan talent: %w", err)
		}
		talents = append(talents, t)
	}
	return talents, rows.Err()
}

// ListCommitmentsByTalent retrieves the confirmed commitments of the given
// talents, keyed by talent ID. Used to surface schedule conflicts next to
// the availability dimension.
func (s *Store) ListCommitmentsByTalent(ctx context.Context, talentIDs []uuid.UUID) (map[uuid.UUID][]types.Commitment, error) {
	if len(talentIDs) == 0 {
		return map[uuid.UUID][]types.Commitment{}, nil
	}

	rows, err := s.pool.Query(ctx,
		`SELECT talent_id, offer_id, titre, date_debut, date_fin
		 FROM contrats
		 WHERE statut = 'SIGNE' AND talent_id = ANY($1)
		 ORDER BY date_debut`,
		talentIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list commitments: %w", err)
	}
	defer rows.Close()

	commitments := make(map[uuid.UUID][]types.Commitment)
	for rows.Next() {
		var talentID uuid.UUID
		var c types.Commitment
		var end *time.Time
		if err := rows.Scan(&talentID, &c.OfferID, &c.Title, &c.Start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan commitment: %w", err)
		}
		if end != nil {
			c.End = *end
		}
		commitments[talentID] = append(commitments[talentID], c)
	}
	return commitments, rows.Err()
}
