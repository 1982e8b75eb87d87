package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	app := &sharerApp{}
	if err := app.rootCommand().Execute(); err != nil {
		app.fatal("Failed to run command", zap.Error(err))
	}
}

func (a *sharerApp) rootCommand() *cobra.Command {
	var configfile string
	root := &cobra.Command{
		Use:           "sharer",
		Short:         "Share links and popups for social networks and email",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			// Initialize config
			if err := a.loadConfigFile(configfile); err != nil {
				return fmt.Errorf("failed to load config file: %w", err)
			}
			if err := a.initConfig(); err != nil {
				return fmt.Errorf("failed to init config: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configfile, "config", "", "use a specific config file")
	root.AddCommand(
		a.serveCommand(),
		a.healthcheckCommand(),
		a.resolveCommand(),
		a.openCommand(),
	)
	return root
}

func (a *sharerApp) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the share server",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if err := a.startServer(); err != nil {
				return fmt.Errorf("failed to start server(s): %w", err)
			}
			// Wait till everything is shutdown
			a.shutdown.Wait()
			return nil
		},
	}
}

func (a *sharerApp) healthcheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "healthcheck",
		Short: "Check if the server at the public address is up",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			// Connect to public address + "/ping" and exit with 0 when successful
			os.Exit(a.healthcheckExitCode())
		},
	}
}
