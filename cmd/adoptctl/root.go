package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/apiclient"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/config"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/logger"
)

// app carries what every command needs. Fields left nil are filled from the
// environment before the first command runs.
type app struct {
	out     io.Writer
	jsonOut bool

	cfg    *config.ClientConfig
	logger *zap.Logger
	client *apiclient.Client
}

func (a *app) setup() error {
	if a.cfg == nil {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		a.cfg = cfg
	}
	if a.logger == nil {
		log, err := logger.NewNamed(a.cfg.AppEnv, "adoptctl")
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		a.logger = log
	}
	if a.client == nil {
		client, err := apiclient.New(apiclient.Config{
			BaseURL: a.cfg.APIBaseURL,
			Timeout: a.cfg.RequestTimeout,
		}, a.logger.Named("api"))
		if err != nil {
			return err
		}
		a.client = client
	}
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "adoptctl",
		Short: "Browse pets, manage favorites, applications, listings and messages",
		Long: `adoptctl talks to the pet adoption API configured by ADOPT_API_BASE_URL.

Every command prints a table by default; pass --json for machine readable
output.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(a.out)
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print JSON instead of tables")

	root.AddCommand(
		newPetsCmd(a),
		newHomeCmd(a),
		newMeCmd(a),
		newFavoritesCmd(a),
		newApplicationsCmd(a),
		newListingsCmd(a),
		newMessagesCmd(a),
		newWatchCmd(a),
	)
	return root
}
