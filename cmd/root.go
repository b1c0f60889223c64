package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"endobit.io/clog"

	applog "endobit.io/app/log"
	"endobit.io/pitmaster"
)

// sessionConfig collects the cook parameters every subcommand needs, either
// from flags or from a config file loaded by viper.
type sessionConfig struct {
	Cut            string  `mapstructure:"cut"`
	ThicknessIn    float64 `mapstructure:"thickness_in"`
	SmokerSetpoint float64 `mapstructure:"smoker_setpoint"`
	InitialTempF   float64 `mapstructure:"initial_temp_f"`
	TargetTempF    float64 `mapstructure:"target_temp_f"`
	AltitudeFt     float64 `mapstructure:"altitude_ft"`
	Equipment      string  `mapstructure:"equipment"`
	Wrap           string  `mapstructure:"wrap"`
	Iterations     int     `mapstructure:"iterations"`
}

func (c sessionConfig) session() (*pitmaster.Session, error) {
	cut, err := pitmaster.CutString(c.Cut)
	if err != nil {
		return nil, err
	}

	equip, err := pitmaster.EquipmentString(c.Equipment)
	if err != nil {
		return nil, err
	}

	w, err := pitmaster.WrapString(c.Wrap)
	if err != nil {
		return nil, err
	}

	return &pitmaster.Session{
		Cut:             cut,
		ThicknessInches: c.ThicknessIn,
		SmokerSetpointF: c.SmokerSetpoint,
		TargetF:         c.TargetTempF,
		AltitudeFt:      c.AltitudeFt,
		Equipment:       equip,
		WrapType:        w,
	}, nil
}

func newRootCmd() *cobra.Command { //nolint:gocognit
	var (
		logLevel string
		cfgFile  string
		cfg      sessionConfig
	)

	v := viper.New() //nolint:varnamelen

	cmd := cobra.Command{
		Use:     "pitmaster",
		Short:   "Barbecue cook-time prediction engine",
		Version: version,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var level slog.Level

			if logLevel == "trace" {
				level = applog.LevelTrace
			} else if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("invalid log level %q", logLevel)
			}

			opts := clog.HandlerOptions{Level: level}
			slog.SetDefault(slog.New(opts.NewHandler(os.Stderr)))

			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
			} else {
				dir, err := os.UserConfigDir()
				if err == nil {
					v.AddConfigPath(filepath.Join(dir, "pitmaster"))
				}

				v.AddConfigPath(".")
				v.SetConfigName("pitmaster")
				v.SetConfigType("yaml")
			}

			if err := v.ReadInConfig(); err != nil {
				slog.Debug("no config file loaded", "error", err)
			}

			return v.Unmarshal(&cfg)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&cfgFile, "config", "", "config file path")
	pf.StringVar(&cfg.Cut, "cut", "brisket", "meat cut")
	pf.Float64Var(&cfg.ThicknessIn, "thickness", 6.0, "thickness in inches")
	pf.Float64Var(&cfg.SmokerSetpoint, "setpoint", 225.0, "smoker setpoint (F)")
	pf.Float64Var(&cfg.InitialTempF, "initial-temp", 40.0, "starting internal temp (F)")
	pf.Float64Var(&cfg.TargetTempF, "target-temp", 203.0, "target internal temp (F)")
	pf.Float64Var(&cfg.AltitudeFt, "altitude", 0.0, "altitude in feet")
	pf.StringVar(&cfg.Equipment, "equipment", "pellet", "smoker type (offset, pellet, kamado, wsm, custom)")
	pf.StringVar(&cfg.Wrap, "wrap", "none", "wrap type (none, foil, butcher_paper, foil_boat)")
	pf.IntVar(&cfg.Iterations, "iterations", pitmaster.DefaultIterations, "Monte Carlo iteration count")

	for _, name := range []string{"cut", "thickness", "setpoint", "initial-temp", "target-temp",
		"altitude", "equipment", "wrap", "iterations"} {
		_ = v.BindPFlag(configKey(name), pf.Lookup(name))
	}

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newPredictCmd(&cfg))
	cmd.AddCommand(newPlanCmd(&cfg))
	cmd.AddCommand(newReplayCmd(&cfg))
	cmd.AddCommand(newPlotCmd(&cfg))

	return &cmd
}

func configKey(flag string) string {
	switch flag {
	case "thickness":
		return "thickness_in"
	case "setpoint":
		return "smoker_setpoint"
	case "initial-temp":
		return "initial_temp_f"
	case "target-temp":
		return "target_temp_f"
	case "altitude":
		return "altitude_ft"
	default:
		return flag
	}
}
