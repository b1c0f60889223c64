package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"endobit.io/pitmaster"
	"endobit.io/pitmaster/planning"
)

func newPlanCmd(cfg *sessionConfig) *cobra.Command {
	var (
		dinner         string
		preheatMinutes float64
		restMinutes    float64
	)

	cmd := cobra.Command{
		Use:   "plan",
		Short: "Work backward from a dinner time to a fire-start time",
		RunE: func(_ *cobra.Command, _ []string) error {
			dinnerTime, err := time.Parse(time.RFC3339, dinner)
			if err != nil {
				return fmt.Errorf("invalid dinner time (use RFC3339): %w", err)
			}

			session, err := cfg.session()
			if err != nil {
				return err
			}

			session.Readings = []pitmaster.ProbeReading{{
				ElapsedMinutes: 0,
				ProbeTempF:     cfg.InitialTempF,
			}}

			result := pitmaster.Predict(context.Background(), session, cfg.Iterations, nil)
			plan := planning.Compute(dinnerTime, result, preheatMinutes, restMinutes)

			fmt.Printf("Dinner:      %s\n", plan.DinnerTime.Format(time.RFC3339))
			fmt.Printf("Fire start:  %s\n", plan.FireStartTime.Format(time.RFC3339))
			fmt.Printf("Meat on:     %s\n", plan.MeatOnTime.Format(time.RFC3339))
			fmt.Printf("Cook (P90):  %.1f min\n", plan.EstimatedCookMinutesP90)
			fmt.Printf("Rest:        %.1f min\n", plan.RestMinutes)

			return nil
		},
	}

	cmd.Flags().StringVar(&dinner, "dinner", "", "dinner time (RFC3339)")
	cmd.Flags().Float64Var(&preheatMinutes, "preheat", planning.DefaultPreheatMinutes, "preheat time (min)")
	cmd.Flags().Float64Var(&restMinutes, "rest", planning.DefaultRestMinutes, "rest time (min)")

	if err := cmd.MarkFlagRequired("dinner"); err != nil {
		panic(err)
	}

	return &cmd
}
