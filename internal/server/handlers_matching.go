package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mathieu/talent-match/internal/db"
	"github.com/mathieu/talent-match/internal/matching"
	"github.com/mathieu/talent-match/internal/notify"
	"github.com/mathieu/talent-match/internal/types"
)

// handleSingleMatch computes the full compatibility report for one
// talent/offer pair, used to render the explanation and gate the apply
// action.
func (s *Server) handleSingleMatch(w http.ResponseWriter, r *http.Request) {
	offerID, err := uuid.Parse(r.PathValue("offer_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid offer ID")
		return
	}
	talentID, err := uuid.Parse(r.PathValue("talent_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid talent ID")
		return
	}

	offer, err := s.store.GetOffer(r.Context(), offerID)
	if err != nil {
		s.storeError(w, "offer", err)
		return
	}
	talent, err := s.store.GetTalent(r.Context(), talentID)
	if err != nil {
		s.storeError(w, "talent", err)
		return
	}
	conflicts, err := s.store.ListCommitmentsByTalent(r.Context(), []uuid.UUID{talentID})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	result, err := matching.Evaluate(talent, offer, conflicts[talentID], s.params, time.Now())
	if err != nil {
		var matchErr *matching.Error
		if errors.As(err, &matchErr) {
			s.errorResponse(w, http.StatusUnprocessableEntity, matchErr.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// rankRequest is the optional body of a bulk ranking request.
type rankRequest struct {
	MinScore int  `json:"minScore,omitempty"`
	Notify   bool `json:"notify,omitempty"`
}

// rankResponse is the bulk ranking payload.
type rankResponse struct {
	Matches          []types.RankedMatch    `json:"matches"`
	Count            int                    `json:"count"`
	Failures         []matching.TalentError `json:"failures,omitempty"`
	DispatchFailures []notify.ItemError     `json:"dispatchFailures,omitempty"`
}

// handleRankOffer ranks the whole searchable talent pool against one offer,
// persists the retained matches and optionally notifies the talents. The
// ranking is returned even when persistence or notification partially fails.
func (s *Server) handleRankOffer(w http.ResponseWriter, r *http.Request) {
	offerID, err := uuid.Parse(r.PathValue("offer_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid offer ID")
		return
	}

	var req rankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.MinScore < 0 || req.MinScore > 100 {
		s.errorResponse(w, http.StatusBadRequest, "minScore must be in [0, 100]")
		return
	}
	if req.MinScore == 0 {
		req.MinScore = s.minScore
	}

	offer, err := s.store.GetOffer(r.Context(), offerID)
	if err != nil {
		s.storeError(w, "offer", err)
		return
	}
	talents, err := s.store.ListSearchableTalents(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	talentIDs := make([]uuid.UUID, len(talents))
	for i := range talents {
		talentIDs[i] = talents[i].ID
	}
	conflicts, err := s.store.ListCommitmentsByTalent(r.Context(), talentIDs)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	result, err := matching.RankTalents(r.Context(), offer, talents, conflicts, matching.RankOptions{
		MinScore:    req.MinScore,
		Concurrency: s.concurrency,
		Params:      s.params,
		Now:         time.Now(),
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Matching failed: "+err.Error())
		return
	}

	var notifier notify.Notifier
	if req.Notify {
		notifier = s.notifier
	}
	dispatchFailures := notify.Dispatch(r.Context(), s.store, notifier, result.Events, s.log)
	if len(dispatchFailures) > 0 {
		s.log.Warn("bulk match dispatch had failures",
			zap.String("offer_id", offerID.String()),
			zap.Int("failed", len(dispatchFailures)))
	}

	s.jsonResponse(w, http.StatusOK, rankResponse{
		Matches:          result.Entries,
		Count:            len(result.Entries),
		Failures:         result.Failures,
		DispatchFailures: dispatchFailures,
	})
}

// handleListMatches returns the persisted matches of an offer.
func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	offerID, err := uuid.Parse(r.PathValue("offer_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid offer ID")
		return
	}

	matches, err := s.store.ListMatchesForOffer(r.Context(), offerID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"matches": matches,
		"count":   len(matches),
	})
}

// handleMarkSeen flags a match as seen by the talent.
func (s *Server) handleMarkSeen(w http.ResponseWriter, r *http.Request) {
	offerID, err := uuid.Parse(r.PathValue("offer_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid offer ID")
		return
	}
	talentID, err := uuid.Parse(r.PathValue("talent_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid talent ID")
		return
	}

	if err := s.store.MarkMatchSeen(r.Context(), offerID, talentID); err != nil {
		s.storeError(w, "match", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// storeError maps a store failure to the right HTTP status.
func (s *Server) storeError(w http.ResponseWriter, entity string, err error) {
	if errors.Is(err, db.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, entity+" not found")
		return
	}
	s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
}
