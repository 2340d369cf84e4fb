// Package pipeline runs the warehouse build end to end: staging import,
// product sampling, fact and dimension extraction, order reconstruction,
// calendar derivation, and user synthesis. Stages run strictly in sequence
// and each table is committed as one transaction, so a failed stage aborts
// the run without leaving a partially written table behind.
package pipeline

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/upcasem/profiledw/internal/db"
	"github.com/upcasem/profiledw/internal/logging"
	"github.com/upcasem/profiledw/internal/synth"
	"github.com/upcasem/profiledw/internal/transform"
	"github.com/upcasem/profiledw/internal/warehouse"
)

// Options parameterize one pipeline run.
type Options struct {
	// InputDir holds the raw clickstream CSV files.
	InputDir string

	// SampleSize, SampleSeed and SampleProbability configure the product
	// sampler.
	SampleSize        int
	SampleSeed        int64
	SampleProbability float64

	// Synth configures user synthesis.
	Synth synth.Config

	// KeepStaging leaves staging_events in place after a successful run.
	KeepStaging bool
}

// Result summarizes a completed run.
type Result struct {
	RunID           string
	StagingRows     int64
	SampledProducts int
	Events          int
	Products        int
	Orders          int
	TimeRows        int
	Users           int
}

// Run executes the full pipeline against an empty warehouse schema. The
// sampled product set is materialized once and passed to every extractor,
// so the product dimension and the fact table always agree.
func Run(ctx context.Context, pool *pgxpool.Pool, opts Options) (*Result, error) {
	staged, err := warehouse.ImportLogs(ctx, pool, opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("staging import failed: %w", err)
	}

	rows, err := warehouse.LoadStagingEvents(ctx, pool)
	if err != nil {
		return nil, err
	}

	sampler := transform.NewSampler(opts.SampleSeed, opts.SampleSize, opts.SampleProbability)
	sample := sampler.Sample(rows)
	logging.Info().
		Int("products", len(sample)).
		Int("cap", opts.SampleSize).
		Msg("Sampled product set")

	facts := transform.ExtractEvents(rows, sample)
	if err := writeStage(ctx, pool, "events", func(tx pgx.Tx) (int64, error) {
		return warehouse.InsertEvents(ctx, tx, facts)
	}); err != nil {
		return nil, err
	}

	products := transform.ExtractProducts(rows, sample)
	if err := writeStage(ctx, pool, "products", func(tx pgx.Tx) (int64, error) {
		return warehouse.InsertProducts(ctx, tx, products)
	}); err != nil {
		return nil, err
	}

	orders := transform.ReconstructOrders(facts)
	if err := writeStage(ctx, pool, "orders", func(tx pgx.Tx) (int64, error) {
		return warehouse.InsertOrders(ctx, tx, orders)
	}); err != nil {
		return nil, err
	}

	times := transform.BuildCalendar(facts)
	if err := writeStage(ctx, pool, "time", func(tx pgx.Tx) (int64, error) {
		return warehouse.InsertTimeRows(ctx, tx, times)
	}); err != nil {
		return nil, err
	}

	userIDs := transform.DistinctUserIDs(facts)
	users := synth.NewEnricher(opts.Synth).EnrichUsers(userIDs)
	if err := writeStage(ctx, pool, "users", func(tx pgx.Tx) (int64, error) {
		return warehouse.InsertUsers(ctx, tx, users)
	}); err != nil {
		return nil, err
	}

	info := db.NewRunInfo(opts.SampleSize, opts.SampleSeed, opts.Synth.FakerSeed, opts.Synth.Locale)
	if err := db.SaveRunInfo(ctx, pool, info); err != nil {
		return nil, err
	}

	if !opts.KeepStaging {
		if err := warehouse.DropStaging(ctx, pool); err != nil {
			return nil, fmt.Errorf("failed to drop staging table: %w", err)
		}
		logging.Info().Msg("Staging table dropped")
	}

	return &Result{
		RunID:           info.RunID.String(),
		StagingRows:     staged,
		SampledProducts: len(sample),
		Events:          len(facts),
		Products:        len(products),
		Orders:          len(orders),
		TimeRows:        len(times),
		Users:           len(users),
	}, nil
}

// writeStage commits one output table as a single transaction.
func writeStage(ctx context.Context, pool *pgxpool.Pool, table string, write func(pgx.Tx) (int64, error)) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin %s transaction: %w", table, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	n, err := write(tx)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", table, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table, err)
	}

	logging.Info().
		Str("table", table).
		Int64("rows", n).
		Msg("Table complete")
	return nil
}
