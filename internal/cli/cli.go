//-------------------------------------------------------------------------
//
// profiledw - clickstream warehouse builder
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for profiledw.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upcasem/profiledw/internal/config"
	"github.com/upcasem/profiledw/internal/db"
	"github.com/upcasem/profiledw/internal/logging"
	"github.com/upcasem/profiledw/internal/warehouse"
	"github.com/upcasem/profiledw/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "profiledw",
		Short: "Build a user profile warehouse from raw clickstream logs",
		Long: `profiledw loads raw e-commerce clickstream CSV logs into a staging
table and transforms them into a star-schema warehouse: a sampled product
dimension, a cleaned event fact table, reconstructed orders, a calendar
dimension, and a user dimension with synthesized demographics.

The transformation is reproducible: the product sample and every synthesized
attribute are driven by explicit seeds, so identical input and seeds produce
identical warehouse tables.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./profiledw.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(initdbCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(statusCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if connection != "" {
		cfg.Connection = connection
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the staging and warehouse tables",
	Long: `Create the staging table and the five warehouse tables without
importing or transforming any data. The run command does this automatically;
initdb exists for setting up a database ahead of time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		ctx := context.Background()
		pool, err := db.Connect(ctx, cfg.Connection)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		if err := warehouse.CreateSchema(ctx, pool); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		logging.Info().Msg("Schema created")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show metadata from the last completed run",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		ctx := context.Background()
		pool, err := db.Connect(ctx, cfg.Connection)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		metadata, err := db.GetAllMetadata(ctx, pool)
		if err != nil {
			return fmt.Errorf("no run metadata found: %w", err)
		}
		if len(metadata) == 0 {
			cmd.Println("No completed runs recorded.")
			return nil
		}
		for _, key := range []string{"run_id", "version", "completed_at",
			"sample_size", "sample_seed", "faker_seed", "locale"} {
			if value, ok := metadata[key]; ok {
				cmd.Printf("%-13s %s\n", key, value)
			}
		}
		return nil
	},
}

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop all warehouse tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		ctx := context.Background()
		pool, err := db.Connect(ctx, cfg.Connection)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		if err := warehouse.DropSchema(ctx, pool); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
		logging.Info().Msg("Schema dropped")
		return nil
	},
}
