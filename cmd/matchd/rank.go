package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mathieu/talent-match/internal/db"
	"github.com/mathieu/talent-match/internal/logger"
	"github.com/mathieu/talent-match/internal/matching"
	"github.com/mathieu/talent-match/internal/notify"
)

var (
	rankMinScore int
	rankNotify   bool
	rankPersist  bool
)

var rankCmd = &cobra.Command{
	Use:   "rank <offer-id>",
	Short: "Rank the searchable talent pool against an offer",
	Long:  "Scores every searchable talent against the offer, keeps matches at or above the threshold and prints the ranked list. Optionally persists the matches and notifies the talents.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().IntVar(&rankMinScore, "min-score", 0, "Minimum score to retain a match (default from config)")
	rankCmd.Flags().BoolVar(&rankNotify, "notify", false, "Notify talents of their new matches")
	rankCmd.Flags().BoolVar(&rankPersist, "persist", false, "Persist the retained matches")
	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, args []string) error {
	offerID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid offer ID %s: %w", args[0], err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if rankMinScore == 0 {
		rankMinScore = cfg.MinScore
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	offer, err := store.GetOffer(ctx, offerID)
	if err != nil {
		return fmt.Errorf("failed to load offer: %w", err)
	}
	talents, err := store.ListSearchableTalents(ctx)
	if err != nil {
		return fmt.Errorf("failed to load talent pool: %w", err)
	}
	talentIDs := make([]uuid.UUID, len(talents))
	for i := range talents {
		talentIDs[i] = talents[i].ID
	}
	conflicts, err := store.ListCommitmentsByTalent(ctx, talentIDs)
	if err != nil {
		return fmt.Errorf("failed to load commitments: %w", err)
	}

	result, err := matching.RankTalents(ctx, offer, talents, conflicts, matching.RankOptions{
		MinScore:    rankMinScore,
		Concurrency: cfg.Concurrency,
		Params:      cfg.Params(),
		Now:         time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to rank talents: %w", err)
	}

	if rankPersist || rankNotify {
		var notifier notify.Notifier
		if rankNotify {
			notifier = &notify.LogNotifier{Log: log}
		}
		var writer notify.MatchWriter
		if rankPersist {
			writer = store
		}
		if failures := notify.Dispatch(ctx, writer, notifier, result.Events, log); len(failures) > 0 {
			log.Warn("dispatch had failures", zap.Int("failed", len(failures)))
		}
	}

	out, err := json.MarshalIndent(map[string]any{
		"matches":  result.Entries,
		"count":    len(result.Entries),
		"failures": result.Failures,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
