package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mathieu/talent-match/internal/db"
	"github.com/mathieu/talent-match/internal/matching"
)

var scoreCmd = &cobra.Command{
	Use:   "score <offer-id> <talent-id>",
	Short: "Compute the compatibility report for one talent/offer pair",
	Long:  "Loads the offer and talent from the database, runs the scoring engine and prints the full MatchResult JSON.",
	Args:  cobra.ExactArgs(2),
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, args []string) error {
	offerID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid offer ID %s: %w", args[0], err)
	}
	talentID, err := uuid.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid talent ID %s: %w", args[1], err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

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
	talent, err := store.GetTalent(ctx, talentID)
	if err != nil {
		return fmt.Errorf("failed to load talent: %w", err)
	}
	conflicts, err := store.ListCommitmentsByTalent(ctx, []uuid.UUID{talentID})
	if err != nil {
		return fmt.Errorf("failed to load commitments: %w", err)
	}

	result, err := matching.Evaluate(talent, offer, conflicts[talentID], cfg.Params(), time.Now())
	if err != nil {
		return fmt.Errorf("failed to evaluate match: %w", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
