//-------------------------------------------------------------------------
//
// profiledw - clickstream warehouse builder
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/upcasem/profiledw/internal/logging"
	"github.com/upcasem/profiledw/pkg/version"
)

const metadataTable = "profiledw_metadata"

const createMetadataTableSQL = `
CREATE TABLE IF NOT EXISTS profiledw_metadata (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// RunInfo describes one completed pipeline run.
type RunInfo struct {
	RunID      uuid.UUID
	SampleSize int
	SampleSeed int64
	FakerSeed  uint64
	Locale     string
}

// NewRunInfo creates run metadata with a fresh run id.
func NewRunInfo(sampleSize int, sampleSeed int64, fakerSeed uint64, locale string) RunInfo {
	return RunInfo{
		RunID:      uuid.New(),
		SampleSize: sampleSize,
		SampleSeed: sampleSeed,
		FakerSeed:  fakerSeed,
		Locale:     locale,
	}
}

// SaveRunInfo records the run metadata in the warehouse so a later run (or an
// operator) can tell which sample and seeds produced the current tables.
func SaveRunInfo(ctx context.Context, pool *pgxpool.Pool, info RunInfo) error {
	_, err := pool.Exec(ctx, createMetadataTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	metadata := map[string]string{
		"run_id":       info.RunID.String(),
		"version":      version.Short(),
		"completed_at": time.Now().UTC().Format(time.RFC3339),
		"sample_size":  strconv.Itoa(info.SampleSize),
		"sample_seed":  strconv.FormatInt(info.SampleSeed, 10),
		"faker_seed":   strconv.FormatUint(info.FakerSeed, 10),
		"locale":       info.Locale,
	}

	for key, value := range metadata {
		_, err := pool.Exec(ctx, `
            INSERT INTO profiledw_metadata (key, value) VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
        `, key, value)
		if err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	logging.Debug().
		Str("run_id", info.RunID.String()).
		Msg("Saved run metadata")

	return nil
}

// GetMetadataValue retrieves a single metadata value by key.
func GetMetadataValue(ctx context.Context, pool *pgxpool.Pool, key string) (string, error) {
	var value string
	err := pool.QueryRow(ctx, `
        SELECT value FROM profiledw_metadata WHERE key = $1
    `, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// GetAllMetadata retrieves all metadata as a map.
func GetAllMetadata(ctx context.Context, pool *pgxpool.Pool) (map[string]string, error) {
	rows, err := pool.Query(ctx, `SELECT key, value FROM profiledw_metadata`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metadata := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		metadata[key] = value
	}

	return metadata, rows.Err()
}
