package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/insights/config"
	"github.com/finance-tracker/insights/internal/domain/entity"
	engine "github.com/finance-tracker/insights/internal/domain/insight"
	"github.com/finance-tracker/insights/internal/infra/dependency"
)

// candidateOutput is the printed form of one insight.
type candidateOutput struct {
	Type       string        `json:"type"`
	Priority   string        `json:"priority"`
	Message    string        `json:"message"`
	Action     *actionOutput `json:"action,omitempty"`
	CategoryID *string       `json:"category_id,omitempty"`
}

type actionOutput struct {
	Type   string `json:"type"`
	Label  string `json:"label"`
	Target string `json:"target"`
}

func generateCmd() *cobra.Command {
	var (
		inputPath   string
		nowValue    string
		savingsRate float64
		microAmount float64
	)

	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate insights from a JSON snapshot",
		Long: `Read a snapshot of transactions, categories, goals, recurring items and
shared-expense participants, then print the ranked insights as JSON.

Use "-" as input to read the snapshot from stdin.`,
		Example: `  insights generate --input snapshot.json --now 2025-03-15`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := time.Now().UTC()
			if nowValue != "" {
				now = parseTime(nowValue)
				if now.IsZero() {
					return fmt.Errorf("invalid --now value %q: expected YYYY-MM-DD or RFC 3339", nowValue)
				}
			}

			snap, err := readSnapshot(cmd, inputPath)
			if err != nil {
				return err
			}

			insightsCfg := cfg.Insights
			insightsCfg.IdealSavingsRate = savingsRate
			insightsCfg.MicroExpenseThreshold = microAmount

			generator := engine.NewGenerator(dependency.Thresholds(insightsCfg))
			candidates := generator.Generate(snap.toInput(now))

			slog.Info("Insights generated",
				"count", len(candidates),
				"now", now.Format(time.RFC3339),
			)

			return writeCandidates(cmd.OutOrStdout(), candidates)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "snapshot file (\"-\" for stdin)")
	cmd.Flags().StringVar(&nowValue, "now", "", "reference time (YYYY-MM-DD or RFC 3339, default: current time)")
	cmd.Flags().Float64Var(&savingsRate, "ideal-savings-rate", cfg.Insights.IdealSavingsRate, "target savings rate in percent")
	cmd.Flags().Float64Var(&microAmount, "micro-expense-threshold", cfg.Insights.MicroExpenseThreshold, "largest amount counted as a micro-expense")

	return cmd
}

func readSnapshot(cmd *cobra.Command, path string) (snapshot, error) {
	var reader io.Reader
	if path == "-" {
		reader = cmd.InOrStdin()
	} else {
		file, err := os.Open(path)
		if err != nil {
			return snapshot{}, fmt.Errorf("failed to open snapshot: %w", err)
		}
		defer file.Close()
		reader = file
	}

	var snap snapshot
	if err := json.NewDecoder(reader).Decode(&snap); err != nil {
		return snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}

func writeCandidates(w io.Writer, candidates []entity.InsightCandidate) error {
	output := make([]candidateOutput, 0, len(candidates))
	for _, c := range candidates {
		item := candidateOutput{
			Type:     string(c.Type),
			Priority: string(c.Priority),
			Message:  c.Message,
		}
		if c.Action != nil {
			item.Action = &actionOutput{
				Type:   string(c.Action.Kind),
				Label:  c.Action.Label,
				Target: string(c.Action.Target),
			}
		}
		if c.CategoryID != nil {
			id := c.CategoryID.String()
			item.CategoryID = &id
		}
		output = append(output, item)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
