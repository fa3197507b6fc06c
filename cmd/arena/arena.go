package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"arena/internal/app/bootstrap"
	"arena/internal/platform/config"
)

const (
	dsnF      = "dsn"
	logLevelF = "log-level"
	seedDemoF = "seed-demo"

	dsnUsage      = "Postgres DSN. When empty the in-memory stores are used."
	logLevelUsage = "Log level: debug, info, warn or error."
	seedDemoUsage = "Load the demo league data set on start."
)

// session holds the app built for the running command.
type session struct {
	viper *viper.Viper
	app   *bootstrap.App
}

func NewCmd() *cobra.Command {
	s := &session{viper: viper.New()}

	arenaCmd := &cobra.Command{
		Use:           "arena",
		Short:         "Election tally and league lookups.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFrom(s.viper)
			if err != nil {
				return err
			}
			app, err := bootstrap.Build(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}
			s.app = app
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return s.app.Close()
		},
	}

	flags := arenaCmd.PersistentFlags()
	flags.String(dsnF, "", dsnUsage)
	flags.String(logLevelF, "warn", logLevelUsage)
	flags.Bool(seedDemoF, true, seedDemoUsage)
	_ = s.viper.BindPFlag(config.KeyPostgresDSN, flags.Lookup(dsnF))
	_ = s.viper.BindPFlag(config.KeyLogLevel, flags.Lookup(logLevelF))
	_ = s.viper.BindPFlag(config.KeySeedDemo, flags.Lookup(seedDemoF))

	arenaCmd.AddCommand(
		PlayersCmd(s),
		PlayerCmd(s),
		TeamsCmd(s),
		ElectionCmd(s),
	)
	return arenaCmd
}
