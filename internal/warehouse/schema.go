package warehouse

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema SQL for the staging area and the five warehouse tables.
const createSchemaSQL = `
-- Staging: raw clickstream rows as ingested, no transformation
CREATE TABLE IF NOT EXISTS staging_events (
    event_id      SERIAL PRIMARY KEY,
    event_time    TIMESTAMP,
    event_type    VARCHAR(20),
    product_id    VARCHAR,
    category_id   VARCHAR,
    category_code VARCHAR,
    brand         VARCHAR,
    price         FLOAT,
    user_id       VARCHAR,
    user_session  VARCHAR
);

-- Users: synthesized profiles, one per distinct fact user
CREATE TABLE IF NOT EXISTS users (
    user_id   VARCHAR PRIMARY KEY,
    user_name VARCHAR NOT NULL,
    name      VARCHAR,
    gender    VARCHAR,
    mail      VARCHAR,
    province  VARCHAR,
    age       INTEGER
);

-- Products: deduplicated catalog dimension
CREATE TABLE IF NOT EXISTS products (
    product_id    VARCHAR PRIMARY KEY,
    category_id   VARCHAR,
    category_code VARCHAR,
    brand         VARCHAR
);

-- Orders: reconstructed purchase lines
CREATE TABLE IF NOT EXISTS orders (
    line_id         SERIAL PRIMARY KEY,
    so_number       VARCHAR NOT NULL,
    product_id      VARCHAR NOT NULL,
    user_id         VARCHAR NOT NULL,
    so_created_time TIMESTAMP,
    so_created_date DATE,
    price           FLOAT,
    qty             INTEGER
);

-- Events: cleaned fact rows restricted to the sampled product set
CREATE TABLE IF NOT EXISTS events (
    event_id     SERIAL PRIMARY KEY,
    event_time   TIMESTAMP,
    event_date   DATE,
    event_type   VARCHAR(20),
    product_id   VARCHAR,
    price        FLOAT,
    user_id      VARCHAR,
    user_session VARCHAR
);

-- Time: calendar dimension, one row per distinct event date
CREATE TABLE IF NOT EXISTS time (
    date       DATE NOT NULL PRIMARY KEY,
    dayofmonth INTEGER,
    week       INTEGER,
    month      INTEGER,
    year       INTEGER,
    weekday    INTEGER
);
`

const dropSchemaSQL = `
DROP TABLE IF EXISTS staging_events;
DROP TABLE IF EXISTS users;
DROP TABLE IF EXISTS products;
DROP TABLE IF EXISTS orders;
DROP TABLE IF EXISTS events;
DROP TABLE IF EXISTS time;
DROP TABLE IF EXISTS profiledw_metadata;
`

// CreateSchema creates the staging and warehouse tables.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, createSchemaSQL)
	return err
}

// DropSchema drops all warehouse tables, staging included.
func DropSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, dropSchemaSQL)
	return err
}

// DropStaging removes the staging table once a run has completed.
func DropStaging(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "DROP TABLE IF EXISTS staging_events")
	return err
}
