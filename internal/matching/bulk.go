package matching

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mathieu/talent-match/internal/types"
)

const (
	// DefaultMinScore is the ranking threshold when the caller supplies none.
	DefaultMinScore = 60

	defaultConcurrency = 8
)

// RankOptions configures a bulk matching run.
type RankOptions struct {
	// MinScore discards matches scoring below it. Zero or negative means
	// DefaultMinScore.
	MinScore int
	// Concurrency bounds the parallel evaluations. Zero means a small
	// default; evaluation order never affects the ranked output.
	Concurrency int
	Params      Params
	// Now anchors date-relative availability scoring for the whole batch.
	Now time.Time
}

// TalentError records a per-talent evaluation failure inside a batch.
type TalentError struct {
	TalentID uuid.UUID `json:"talentId"`
	Err      error     `json:"-"`
	Message  string    `json:"error"`
}

// RankResult is the outcome of ranking a talent pool against one offer.
// Failures holds the talents whose profiles could not be scored; they never
// abort the batch.
type RankResult struct {
	Entries  []types.RankedMatch `json:"matches"`
	Events   []types.MatchEvent  `json:"-"`
	Failures []TalentError       `json:"failures,omitempty"`
}

// RankTalents scores every talent in the pool against the offer, keeps the
// matches at or above the threshold, and returns them ranked by descending
// score with ties broken by talent ID. For each retained match a MatchEvent
// is emitted for the notification/persistence collaborators to consume.
func RankTalents(ctx context.Context, offer *types.OfferRequirements, talents []types.TalentProfile, conflicts map[uuid.UUID][]types.Commitment, opts RankOptions) (*RankResult, error) {
	if offer == nil {
		return nil, &Error{Message: "offer requirements are required"}
	}
	if err := offer.Validate(); err != nil {
		return nil, invalidInput("offer requirements", err)
	}
	if err := opts.Params.Validate(); err != nil {
		return nil, err
	}
	if opts.MinScore <= 0 {
		opts.MinScore = DefaultMinScore
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	results := make([]*types.MatchResult, len(talents))
	errs := make([]error, len(talents))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i := range talents {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			talent := &talents[i]
			results[i], errs[i] = Evaluate(talent, offer, conflicts[talent.ID], opts.Params, opts.Now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &RankResult{
		Entries: make([]types.RankedMatch, 0, len(talents)),
		Events:  make([]types.MatchEvent, 0, len(talents)),
	}
	for i := range talents {
		if errs[i] != nil {
			out.Failures = append(out.Failures, TalentError{
				TalentID: talents[i].ID,
				Err:      errs[i],
				Message:  errs[i].Error(),
			})
			continue
		}
		res := results[i]
		if res.Score < opts.MinScore {
			continue
		}
		out.Entries = append(out.Entries, types.RankedMatch{
			TalentID:              res.TalentID,
			Score:                 res.Score,
			CompetencesMatchees:   res.Details.Competences.Matched,
			CompetencesManquantes: res.Details.Competences.Missing,
		})
	}

	// Descending score, ties broken by talent ID so the ranking is
	// deterministic regardless of evaluation completion order.
	sort.SliceStable(out.Entries, func(i, j int) bool {
		if out.Entries[i].Score != out.Entries[j].Score {
			return out.Entries[i].Score > out.Entries[j].Score
		}
		return out.Entries[i].TalentID.String() < out.Entries[j].TalentID.String()
	})

	for _, e := range out.Entries {
		out.Events = append(out.Events, types.MatchEvent{
			OfferID:  offer.ID,
			TalentID: e.TalentID,
			Score:    e.Score,
			Matched:  e.CompetencesMatchees,
			Missing:  e.CompetencesManquantes,
		})
	}
	return out, nil
}
