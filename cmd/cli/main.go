package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/activibe/cmd/cli/commands"
	"github.com/jakechorley/activibe/internal/config"
	"github.com/jakechorley/activibe/pkg/utils/logging"
)

var (
	env    string
	signIn string
	app    = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "activibe",
		Short: "ActiVibe CLI - volunteer drives, verified check-ins and the community feed",
		Long: `A CLI for the ActiVibe prototype. Volunteers check in to drives, share verified
posts and collect endorsements; NGO coordinators create drives, award badges and view analytics.

All state is in memory. Use 'interactive' to keep it across commands.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (selects activibe_config.<env>.yaml)")
	rootCmd.PersistentFlags().StringVar(&signIn, "as", "", "Sign in before running: volunteer or ngo")

	commands.Register(rootCmd, app)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp loads config, sets up the logger and builds the stores from seed data
func initApp() error {
	cfg, err := config.LoadWithEnv(env)
	usingDefaults := errors.Is(err, config.ErrConfigNotFound)
	if usingDefaults {
		cfg = config.Default()
	} else if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.InitLogger(env, cfg.LogsDir)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Starting application", zap.String("environment", env))
	if usingDefaults {
		logger.Debug("No config file found, using defaults")
	}

	app.Init(context.Background(), cfg, nil, logger)
	logger.Debug("Stores loaded from seed data", zap.Duration("tick_interval", app.Driver.Interval()))

	switch signIn {
	case "":
	case "volunteer":
		app.Auth.LoginAsVolunteer()
	case "ngo":
		app.Auth.LoginAsNGO()
	default:
		return fmt.Errorf("--as must be volunteer or ngo, got: %s", signIn)
	}

	return nil
}
