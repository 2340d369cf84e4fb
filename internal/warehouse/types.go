// Package warehouse defines the star-schema tables of the user profile
// warehouse and the storage operations the pipeline reads and writes them
// through.
package warehouse

import "time"

// EventTypePurchase is the staging event_type consumed by order
// reconstruction.
const EventTypePurchase = "purchase"

// StagingEvent is one raw clickstream row as ingested from the log files.
// Index is the staging row order; it serves as the stable tie-breaker when
// two purchase events share the same timestamp.
type StagingEvent struct {
	Index        int
	EventTime    time.Time
	EventType    string
	ProductID    string
	CategoryID   string
	CategoryCode string
	Brand        string
	Price        float64
	UserID       string
	UserSession  string
}

// Product is one deduplicated catalog entry, restricted to the sampled
// product set.
type Product struct {
	ProductID    string
	CategoryID   string
	CategoryCode string
	Brand        string
}

// Event is one cleaned fact row. EventDate is the calendar date of
// EventTime. Index carries the originating staging row order through to
// order reconstruction.
type Event struct {
	Index       int
	EventTime   time.Time
	EventDate   time.Time
	EventType   string
	ProductID   string
	Price       float64
	UserID      string
	UserSession string
}

// Order is one reconstructed order line. SONumber is the session id; all
// lines of a session share the session's checkout timestamp.
type Order struct {
	SONumber      string
	ProductID     string
	UserID        string
	SOCreatedTime time.Time
	SOCreatedDate time.Time
	Price         float64
	Qty           int
}

// TimeRow is one calendar dimension row. Weekday uses the 0=Sunday
// convention, matching Postgres date_part('dow').
type TimeRow struct {
	Date       time.Time
	DayOfMonth int
	Week       int
	Month      int
	Year       int
	Weekday    int
}

// User is one synthesized user profile.
type User struct {
	UserID   string
	UserName string
	Name     string
	Gender   string
	Mail     string
	Province string
	Age      int
}
