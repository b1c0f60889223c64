package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"endobit.io/pitmaster"
	"endobit.io/table"
)

// logEntry is one line of a replay log: a probe reading plus the optional
// smoker temperature sampled at that moment.
type logEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	ProbeTempF  float64   `json:"probe_temp_f"`
	SmokerTempF *float64  `json:"smoker_temp_f,omitempty"`
}

func newReplayCmd(cfg *sessionConfig) *cobra.Command {
	var input string

	cmd := cobra.Command{
		Use:   "replay",
		Short: "Replay a JSONL probe log through the state machine and predictor",
		Long: `The replay command reads a newline-delimited JSON log of probe readings and
shows what state and prediction would have been reported at each point in time, as if the
cook were happening live.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			fin, err := os.Open(input)
			if err != nil {
				return err
			}
			defer fin.Close()

			var entries []logEntry

			scanner := bufio.NewScanner(fin)
			for scanner.Scan() {
				var e logEntry
				if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
					continue
				}

				entries = append(entries, e)
			}

			if err := scanner.Err(); err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println("no readings found in input file")

				return nil
			}

			session, err := cfg.session()
			if err != nil {
				return err
			}

			trust := pitmaster.NewEvaluator()

			type row struct {
				Time       string
				Probe      string `table:"\n(F)"`
				State      string
				Confidence string
				P50        string `table:"\n(min)"`
			}

			tbl := table.New()
			start := entries[0].Timestamp

			for _, e := range entries {
				reading := pitmaster.ProbeReading{
					Timestamp:      e.Timestamp,
					ElapsedMinutes: e.Timestamp.Sub(start).Minutes(),
					ProbeTempF:     e.ProbeTempF,
					SmokerTempF:    e.SmokerTempF,
				}

				session.Readings = append(session.Readings, reading)
				session.State = pitmaster.Advance(session, reading)

				result := pitmaster.Predict(context.Background(), session, cfg.Iterations, nil)
				tier := trust.Evaluate(session, result)

				tbl.Write(row{
					Time:       e.Timestamp.Format(time.TimeOnly),
					Probe:      fmt.Sprintf("%.1f", e.ProbeTempF),
					State:      session.State.String(),
					Confidence: tier.String(),
					P50:        fmt.Sprintf("%.1f", result.P50Minutes),
				})
			}

			return tbl.Flush()
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input JSONL log file")

	if err := cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}

	return &cmd
}
