package transform

import (
	"sort"

	"github.com/upcasem/profiledw/internal/warehouse"
)

// orderGroup keys one order line: a session may buy several products, and
// the same product at two prices forms two lines.
type orderGroup struct {
	session   string
	productID string
	userID    string
	price     float64
}

// ReconstructOrders aggregates purchase facts into order lines. Quantity is
// the number of purchase events sharing (session, product, user, price).
// Every line of a session carries the session's checkout timestamp: the time
// of the latest purchase event in that session. When two purchase events
// share the maximum timestamp, the one with the lowest staging row index
// wins, keeping the output stable.
func ReconstructOrders(events []warehouse.Event) []warehouse.Order {
	qty := make(map[orderGroup]int)
	latest := make(map[string]warehouse.Event)

	for _, e := range events {
		if e.EventType != warehouse.EventTypePurchase {
			continue
		}
		qty[orderGroup{e.UserSession, e.ProductID, e.UserID, e.Price}]++

		last, ok := latest[e.UserSession]
		if !ok || e.EventTime.After(last.EventTime) ||
			(e.EventTime.Equal(last.EventTime) && e.Index < last.Index) {
			latest[e.UserSession] = e
		}
	}

	orders := make([]warehouse.Order, 0, len(qty))
	for g, n := range qty {
		checkout := latest[g.session]
		orders = append(orders, warehouse.Order{
			SONumber:      g.session,
			ProductID:     g.productID,
			UserID:        g.userID,
			SOCreatedTime: checkout.EventTime,
			SOCreatedDate: checkout.EventDate,
			Price:         g.price,
			Qty:           n,
		})
	}

	sort.Slice(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if a.SONumber != b.SONumber {
			return a.SONumber < b.SONumber
		}
		if a.ProductID != b.ProductID {
			return a.ProductID < b.ProductID
		}
		if a.UserID != b.UserID {
			return a.UserID < b.UserID
		}
		return a.Price < b.Price
	})
	return orders
}
