package warehouse

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadStagingEvents reads the full staging table in ingestion order and
// assigns each row its stable index. The pipeline transforms rows in memory,
// so the staging table is read exactly once per run.
func LoadStagingEvents(ctx context.Context, pool *pgxpool.Pool) ([]StagingEvent, error) {
	rows, err := pool.Query(ctx, `
        SELECT event_time, event_type, product_id, category_id,
               category_code, brand, price, user_id, user_session
        FROM staging_events
        ORDER BY event_id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to read staging_events: %w", err)
	}
	defer rows.Close()

	var events []StagingEvent
	for rows.Next() {
		var e StagingEvent
		if err := rows.Scan(
			&e.EventTime, &e.EventType, &e.ProductID, &e.CategoryID,
			&e.CategoryCode, &e.Brand, &e.Price, &e.UserID, &e.UserSession,
		); err != nil {
			return nil, fmt.Errorf("failed to scan staging row: %w", err)
		}
		e.Index = len(events)
		events = append(events, e)
	}

	return events, rows.Err()
}
