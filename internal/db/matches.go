package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mathieu/talent-match/internal/types"
)

// UpsertMatch persists a computed match, refreshing the score and skill
// lists when the pair already has a record. The seen flag is preserved on
// updates so re-ranking an offer never re-surfaces an already-seen match as
// new.
func (s *Store) UpsertMatch(ctx context.Context, event types.MatchEvent) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO matches (offer_id, talent_id, score, competences_matchees, competences_manquantes, vu_par_talent)
		 VALUES ($1, $2, $3, $4, $5, false)
		 ON CONFLICT (offer_id, talent_id)
		 DO UPDATE SET score = $3, competences_matchees = $4, competences_manquantes = $5`,
		event.OfferID, event.TalentID, event.Score, event.Matched, event.Missing,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert match: %w", err)
	}
	return nil
}

// MarkMatchSeen sets the "seen by talent" flag on a match record.
func (s *Store) MarkMatchSeen(ctx context.Context, offerID, talentID uuid.UUID) error {
	result, err := s.pool.Exec(ctx,
		`UPDATE matches SET vu_par_talent = true WHERE offer_id = $1 AND talent_id = $2`,
		offerID, talentID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark match seen: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("match %s/%s: %w", offerID, talentID, ErrNotFound)
	}
	return nil
}

// ListMatchesForOffer retrieves the persisted matches of an offer, best
// score first.
func (s *Store) ListMatchesForOffer(ctx context.Context, offerID uuid.UUID) ([]types.Match, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, offer_id, talent_id, score, competences_matchees, competences_manquantes, vu_par_talent, created_at
		 FROM matches WHERE offer_id = $1 ORDER BY score DESC, talent_id`,
		offerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []types.Match
	for rows.Next() {
		var m types.Match
		if err := rows.Scan(&m.ID, &m.OfferID, &m.TalentID, &m.Score,
			&m.CompetencesMatchees, &m.CompetencesManquantes, &m.VuParTalent, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
