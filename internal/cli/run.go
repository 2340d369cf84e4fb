package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upcasem/profiledw/internal/db"
	"github.com/upcasem/profiledw/internal/logging"
	"github.com/upcasem/profiledw/internal/pipeline"
	"github.com/upcasem/profiledw/internal/synth"
	"github.com/upcasem/profiledw/internal/warehouse"
)

var (
	runInputDir          string
	runSampleSize        int
	runSampleSeed        int64
	runSampleProbability float64
	runFakerSeed         uint64
	runDemographicSeed   int64
	runLocale            string
	runKeepStaging       bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full warehouse build",
	Long: `Run the full pipeline: drop and recreate the warehouse tables, import
the raw CSV logs into staging, sample the product set, populate the five
warehouse tables, and drop the staging table.

Example:
  profiledw run --input ./input/ecommerce_cosmetics --connection "postgres://..."`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runInputDir, "input", "",
		"directory holding the raw clickstream CSV files")
	runCmd.Flags().IntVar(&runSampleSize, "sample-size", 0,
		"maximum number of sampled products (default: 1000)")
	runCmd.Flags().Int64Var(&runSampleSeed, "sample-seed", 0,
		"seed for the product sampler")
	runCmd.Flags().Float64Var(&runSampleProbability, "sample-probability", 0,
		"per-product inclusion probability (default: 0.01)")
	runCmd.Flags().Uint64Var(&runFakerSeed, "faker-seed", 0,
		"seed for fake identity generation (default: 123)")
	runCmd.Flags().Int64Var(&runDemographicSeed, "demographic-seed", 0,
		"seed for gender and age draws (default: 123)")
	runCmd.Flags().StringVar(&runLocale, "locale", "",
		"fake identity locale (default: zh_CN)")
	runCmd.Flags().BoolVar(&runKeepStaging, "keep-staging", false,
		"keep the staging table after a successful run")
}

func runRun(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if runInputDir != "" {
		cfg.Run.InputDir = runInputDir
	}
	if runSampleSize > 0 {
		cfg.Run.SampleSize = runSampleSize
	}
	if cmd.Flags().Changed("sample-seed") {
		cfg.Run.SampleSeed = runSampleSeed
	}
	if runSampleProbability > 0 {
		cfg.Run.SampleProbability = runSampleProbability
	}
	if cmd.Flags().Changed("faker-seed") {
		cfg.Run.FakerSeed = runFakerSeed
	}
	if cmd.Flags().Changed("demographic-seed") {
		cfg.Run.DemographicSeed = runDemographicSeed
	}
	if runLocale != "" {
		cfg.Run.Locale = runLocale
	}
	if runKeepStaging {
		cfg.Run.KeepStaging = true
	}

	if err := cfg.ValidateRun(); err != nil {
		return err
	}

	logging.Info().
		Str("input", cfg.Run.InputDir).
		Int("sample_size", cfg.Run.SampleSize).
		Str("locale", cfg.Run.Locale).
		Msg("Starting warehouse build")

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	// A run always starts from empty tables; the writes are only idempotent
	// after a full reset.
	logging.Info().Msg("Resetting schema")
	if err := warehouse.DropSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	if err := warehouse.CreateSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	result, err := pipeline.Run(ctx, pool, pipeline.Options{
		InputDir:          cfg.Run.InputDir,
		SampleSize:        cfg.Run.SampleSize,
		SampleSeed:        cfg.Run.SampleSeed,
		SampleProbability: cfg.Run.SampleProbability,
		Synth: synth.Config{
			FakerSeed:         cfg.Run.FakerSeed,
			DemographicSeed:   cfg.Run.DemographicSeed,
			Locale:            cfg.Run.Locale,
			MaleProbability:   cfg.Run.MaleProbability,
			AgeMean:           cfg.Run.AgeMean,
			AgeStdDev:         cfg.Run.AgeStdDev,
			AgeNormalFraction: cfg.Run.AgeNormalFraction,
			AgeMin:            cfg.Run.AgeMin,
			AgeMax:            cfg.Run.AgeMax,
		},
		KeepStaging: cfg.Run.KeepStaging,
	})
	if err != nil {
		return err
	}

	logging.Info().
		Str("run_id", result.RunID).
		Int64("staging_rows", result.StagingRows).
		Int("products", result.Products).
		Int("events", result.Events).
		Int("orders", result.Orders).
		Int("time_rows", result.TimeRows).
		Int("users", result.Users).
		Msg("Warehouse build complete")

	return nil
}
