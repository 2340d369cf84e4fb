package warehouse

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Writers take a transaction so the pipeline can commit each table as one
// unit. A failure mid-table leaves nothing of that table visible.

// InsertEvents writes the fact table.
func InsertEvents(ctx context.Context, tx pgx.Tx, events []Event) (int64, error) {
	rows := make([][]any, len(events))
	for i, e := range events {
		rows[i] = []any{e.EventTime, e.EventDate, e.EventType, e.ProductID,
			e.Price, e.UserID, e.UserSession}
	}
	return tx.CopyFrom(ctx,
		pgx.Identifier{"events"},
		[]string{"event_time", "event_date", "event_type", "product_id",
			"price", "user_id", "user_session"},
		pgx.CopyFromRows(rows))
}

// InsertProducts writes the product dimension.
func InsertProducts(ctx context.Context, tx pgx.Tx, products []Product) (int64, error) {
	rows := make([][]any, len(products))
	for i, p := range products {
		rows[i] = []any{p.ProductID, p.CategoryID, p.CategoryCode, p.Brand}
	}
	return tx.CopyFrom(ctx,
		pgx.Identifier{"products"},
		[]string{"product_id", "category_id", "category_code", "brand"},
		pgx.CopyFromRows(rows))
}

// InsertOrders writes the reconstructed order lines.
func InsertOrders(ctx context.Context, tx pgx.Tx, orders []Order) (int64, error) {
	rows := make([][]any, len(orders))
	for i, o := range orders {
		rows[i] = []any{o.SONumber, o.ProductID, o.UserID,
			o.SOCreatedTime, o.SOCreatedDate, o.Price, o.Qty}
	}
	return tx.CopyFrom(ctx,
		pgx.Identifier{"orders"},
		[]string{"so_number", "product_id", "user_id",
			"so_created_time", "so_created_date", "price", "qty"},
		pgx.CopyFromRows(rows))
}

// InsertTimeRows writes the calendar dimension.
func InsertTimeRows(ctx context.Context, tx pgx.Tx, times []TimeRow) (int64, error) {
	rows := make([][]any, len(times))
	for i, t := range times {
		rows[i] = []any{t.Date, t.DayOfMonth, t.Week, t.Month, t.Year, t.Weekday}
	}
	return tx.CopyFrom(ctx,
		pgx.Identifier{"time"},
		[]string{"date", "dayofmonth", "week", "month", "year", "weekday"},
		pgx.CopyFromRows(rows))
}

// InsertUsers writes the user dimension.
func InsertUsers(ctx context.Context, tx pgx.Tx, users []User) (int64, error) {
	rows := make([][]any, len(users))
	for i, u := range users {
		rows[i] = []any{u.UserID, u.UserName, u.Name, u.Gender,
			u.Mail, u.Province, u.Age}
	}
	return tx.CopyFrom(ctx,
		pgx.Identifier{"users"},
		[]string{"user_id", "user_name", "name", "gender",
			"mail", "province", "age"},
		pgx.CopyFromRows(rows))
}
