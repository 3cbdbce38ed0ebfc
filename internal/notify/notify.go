// Package notify consumes the match events emitted by a bulk matching run.
// It is the boundary between the pure scoring engine and the persistence and
// notification side effects: the engine hands over a list of events, this
// package performs the I/O with per-item failure isolation.
package notify

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mathieu/talent-match/internal/types"
)

// Notifier delivers a "new match" notification to a talent.
type Notifier interface {
	NotifyNewMatch(ctx context.Context, event types.MatchEvent) error
}

// MatchWriter persists a computed match record.
type MatchWriter interface {
	UpsertMatch(ctx context.Context, event types.MatchEvent) error
}

// ItemError records a failed event within a dispatch batch.
type ItemError struct {
	TalentID uuid.UUID `json:"talentId"`
	Stage    string    `json:"stage"` // "persist" or "notify"
	Message  string    `json:"error"`
}

// Dispatch persists and notifies every event. A failure for one talent is
// recorded and the rest of the batch continues; the caller decides how to
// report the collected failures.
func Dispatch(ctx context.Context, writer MatchWriter, notifier Notifier, events []types.MatchEvent, log *zap.Logger) []ItemError {
	var failures []ItemError
	for _, event := range events {
		if err := ctx.Err(); err != nil {
			log.Warn("dispatch interrupted", zap.Error(err), zap.Int("remaining", len(events)-len(failures)))
			return failures
		}
		if writer != nil {
			if err := writer.UpsertMatch(ctx, event); err != nil {
				log.Error("failed to persist match",
					zap.String("talent_id", event.TalentID.String()),
					zap.Error(err))
				failures = append(failures, ItemError{TalentID: event.TalentID, Stage: "persist", Message: err.Error()})
				continue
			}
		}
		if notifier != nil {
			if err := notifier.NotifyNewMatch(ctx, event); err != nil {
				log.Error("failed to notify talent",
					zap.String("talent_id", event.TalentID.String()),
					zap.Error(err))
				failures = append(failures, ItemError{TalentID: event.TalentID, Stage: "notify", Message: err.Error()})
			}
		}
	}
	return failures
}

// LogNotifier is a Notifier that only logs. It stands in for the real
// delivery channel (email/push) owned by the notification service.
type LogNotifier struct {
	Log *zap.Logger
}

// NotifyNewMatch logs the event and always succeeds.
func (n *LogNotifier) NotifyNewMatch(_ context.Context, event types.MatchEvent) error {
	n.Log.Info("new match",
		zap.String("offer_id", event.OfferID.String()),
		zap.String("talent_id", event.TalentID.String()),
		zap.Int("score", event.Score))
	return nil
}
