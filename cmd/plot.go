package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/spf13/cobra"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"endobit.io/pitmaster"
)

func newPlotCmd(cfg *sessionConfig) *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := cobra.Command{
		Use:   "plot",
		Short: "Render the P10/P50/P90 prediction band over a replayed cook",
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

			if len(entries) == 0 {
				return errors.New("no readings found in input file")
			}

			session, err := cfg.session()
			if err != nil {
				return err
			}

			p10 := make(plotter.XYs, len(entries))
			p50 := make(plotter.XYs, len(entries))
			p90 := make(plotter.XYs, len(entries))
			start := entries[0].Timestamp

			for i, e := range entries {
				reading := pitmaster.ProbeReading{
					Timestamp:      e.Timestamp,
					ElapsedMinutes: e.Timestamp.Sub(start).Minutes(),
					ProbeTempF:     e.ProbeTempF,
					SmokerTempF:    e.SmokerTempF,
				}

				session.Readings = append(session.Readings, reading)
				session.State = pitmaster.Advance(session, reading)

				result := pitmaster.Predict(context.Background(), session, cfg.Iterations, nil)

				p10[i].X, p10[i].Y = reading.ElapsedMinutes, result.P10Minutes
				p50[i].X, p50[i].Y = reading.ElapsedMinutes, result.P50Minutes
				p90[i].X, p90[i].Y = reading.ElapsedMinutes, result.P90Minutes
			}

			chart := plot.New()
			chart.Title.Text = "Predicted finish time estimate"
			chart.X.Label.Text = "Elapsed minutes"
			chart.Y.Label.Text = "Predicted finish (minutes from start)"

			if err := addBand(chart, p10, color.Gray{Y: 160}, "P10"); err != nil {
				return fmt.Errorf("p10: %w", err)
			}

			if err := addBand(chart, p50, color.RGBA{B: 255, A: 255}, "P50"); err != nil {
				return fmt.Errorf("p50: %w", err)
			}

			if err := addBand(chart, p90, color.RGBA{R: 255, A: 255}, "P90"); err != nil {
				return fmt.Errorf("p90: %w", err)
			}

			chart.Add(plotter.NewGrid())

			return chart.Save(8*vg.Inch, 5*vg.Inch, output)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input JSONL log file")
	cmd.Flags().StringVarP(&output, "output", "o", "prediction.png", "output image path")

	if err := cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}

	return &cmd
}

func addBand(chart *plot.Plot, data plotter.XYs, col color.Color, legend string) error {
	line, err := plotter.NewLine(data)
	if err != nil {
		return err
	}

	line.Color = col
	chart.Add(line)
	chart.Legend.Add(legend, line)

	return nil
}
