package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"endobit.io/pitmaster"
	"endobit.io/table"
)

func newPredictCmd(cfg *sessionConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "predict",
		Short: "Run a Monte Carlo prediction for the configured cook",
		RunE: func(_ *cobra.Command, _ []string) error {
			session, err := cfg.session()
			if err != nil {
				return err
			}

			session.Readings = []pitmaster.ProbeReading{{
				ElapsedMinutes: 0,
				ProbeTempF:     cfg.InitialTempF,
			}}

			result := pitmaster.Predict(context.Background(), session, cfg.Iterations, nil)

			type row struct {
				Field string
				Value string
			}

			rows := []row{
				{"P10 (min)", fmt.Sprintf("%.1f", result.P10Minutes)},
				{"P50 (min)", fmt.Sprintf("%.1f", result.P50Minutes)},
				{"P90 (min)", fmt.Sprintf("%.1f", result.P90Minutes)},
				{"Confidence", result.Confidence.String()},
				{"Stall probability", fmt.Sprintf("%.2f", result.StallProbability)},
				{"State", result.CurrentState.String()},
			}

			tbl := table.New()
			for _, r := range rows {
				tbl.Write(r)
			}

			return tbl.Flush()
		},
	}
}
