package warehouse

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/upcasem/profiledw/internal/logging"
)

var stagingColumns = []string{
	"event_time",
	"event_type",
	"product_id",
	"category_id",
	"category_code",
	"brand",
	"price",
	"user_id",
	"user_session",
}

// Timestamp layouts accepted in the raw logs. The cosmetics clickstream
// exports use "2019-12-01 00:00:00 UTC".
var eventTimeLayouts = []string{
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ImportLogs bulk-loads every *.csv file under dir into staging_events and
// returns the total number of rows imported. The first line of each file is
// treated as a header. A row that cannot be parsed fails the whole import.
func ImportLogs(ctx context.Context, pool *pgxpool.Pool, dir string) (int64, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return 0, fmt.Errorf("failed to list log files: %w", err)
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no csv log files found in %s", dir)
	}

	var total int64
	for _, file := range files {
		n, err := importLogFile(ctx, pool, file)
		if err != nil {
			return total, fmt.Errorf("failed to import %s: %w", filepath.Base(file), err)
		}
		total += n
		logging.Info().
			Str("file", filepath.Base(file)).
			Int64("rows", n).
			Msg("Log file imported")
	}

	logging.Info().
		Int("files", len(files)).
		Int64("rows", total).
		Msg("Staging import complete")

	return total, nil
}

func importLogFile(ctx context.Context, pool *pgxpool.Pool, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(stagingColumns)

	// Skip the header row.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read header: %w", err)
	}

	var rows [][]any
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		line++

		row, err := parseLogRecord(record)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	n, err := pool.CopyFrom(ctx,
		pgx.Identifier{"staging_events"},
		stagingColumns,
		pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy failed: %w", err)
	}
	return n, nil
}

// parseLogRecord converts one CSV record into a staging_events value row in
// stagingColumns order.
func parseLogRecord(record []string) ([]any, error) {
	eventTime, err := parseEventTime(record[0])
	if err != nil {
		return nil, err
	}

	var price float64
	if record[6] != "" {
		price, err = strconv.ParseFloat(record[6], 64)
		if err != nil {
			return nil, fmt.Errorf("unparseable price %q", record[6])
		}
	}

	return []any{
		eventTime,
		record[1], // event_type
		record[2], // product_id
		record[3], // category_id
		record[4], // category_code
		record[5], // brand
		price,
		record[7], // user_id
		record[8], // user_session
	}, nil
}

func parseEventTime(s string) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable event_time %q", s)
}
