package transform

import (
	"testing"
	"time"

	"github.com/upcasem/profiledw/internal/warehouse"
)

func purchase(idx int, session, product, user string, price float64, ts time.Time) warehouse.Event {
	return warehouse.Event{
		Index:       idx,
		EventTime:   ts,
		EventDate:   time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
		EventType:   warehouse.EventTypePurchase,
		ProductID:   product,
		Price:       price,
		UserID:      user,
		UserSession: session,
	}
}

func TestReconstructOrdersAggregation(t *testing.T) {
	base := time.Date(2021, 2, 1, 10, 0, 0, 0, time.UTC)

	// Three purchases of the same (product, user, price) and one at a
	// different price, all in one session. The latest of the four events
	// stamps every order line of the session.
	events := []warehouse.Event{
		purchase(0, "s1", "p1", "u1", 10, base),
		purchase(1, "s1", "p1", "u1", 10, base.Add(time.Minute)),
		purchase(2, "s1", "p1", "u1", 10, base.Add(2*time.Minute)),
		purchase(3, "s1", "p1", "u1", 20, base.Add(3*time.Minute)),
	}

	orders := ReconstructOrders(events)
	if len(orders) != 2 {
		t.Fatalf("Expected 2 order lines, got %d", len(orders))
	}

	latest := base.Add(3 * time.Minute)
	for _, o := range orders {
		if !o.SOCreatedTime.Equal(latest) {
			t.Errorf("Line price=%.0f: expected so_created_time %v, got %v",
				o.Price, latest, o.SOCreatedTime)
		}
		if o.SONumber != "s1" {
			t.Errorf("Expected so_number s1, got %s", o.SONumber)
		}
	}

	// Sorted by price within the session.
	if orders[0].Price != 10 || orders[0].Qty != 3 {
		t.Errorf("Expected qty=3 at price 10, got qty=%d at price %.0f",
			orders[0].Qty, orders[0].Price)
	}
	if orders[1].Price != 20 || orders[1].Qty != 1 {
		t.Errorf("Expected qty=1 at price 20, got qty=%d at price %.0f",
			orders[1].Qty, orders[1].Price)
	}
}

func TestReconstructOrdersIgnoresNonPurchase(t *testing.T) {
	ts := time.Date(2021, 2, 1, 10, 0, 0, 0, time.UTC)
	events := []warehouse.Event{
		{EventType: "view", ProductID: "p1", UserID: "u1", UserSession: "s1", EventTime: ts},
		{EventType: "cart", ProductID: "p1", UserID: "u1", UserSession: "s1", EventTime: ts},
	}

	if orders := ReconstructOrders(events); len(orders) != 0 {
		t.Errorf("Expected no orders from non-purchase events, got %d", len(orders))
	}
}

func TestReconstructOrdersPerSessionTimestamps(t *testing.T) {
	t1 := time.Date(2021, 2, 1, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2021, 2, 2, 18, 0, 0, 0, time.UTC)

	events := []warehouse.Event{
		purchase(0, "s1", "p1", "u1", 5, t1),
		purchase(1, "s2", "p1", "u1", 5, t2),
	}

	orders := ReconstructOrders(events)
	if len(orders) != 2 {
		t.Fatalf("Expected 2 order lines, got %d", len(orders))
	}
	if !orders[0].SOCreatedTime.Equal(t1) {
		t.Errorf("Session s1: expected %v, got %v", t1, orders[0].SOCreatedTime)
	}
	if !orders[1].SOCreatedTime.Equal(t2) {
		t.Errorf("Session s2: expected %v, got %v", t2, orders[1].SOCreatedTime)
	}
	if !orders[1].SOCreatedDate.Equal(time.Date(2021, 2, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Session s2: wrong so_created_date %v", orders[1].SOCreatedDate)
	}
}

func TestReconstructOrdersTimestampTieBreak(t *testing.T) {
	ts := time.Date(2021, 2, 1, 10, 0, 0, 0, time.UTC)

	// Two purchases share the maximum timestamp; the lower staging index
	// must win regardless of input order. The dates are made distinct so
	// the winner is observable.
	a := purchase(5, "s1", "p1", "u1", 10, ts)
	b := purchase(2, "s1", "p2", "u1", 10, ts)
	b.EventDate = time.Date(2021, 2, 9, 0, 0, 0, 0, time.UTC)

	for name, events := range map[string][]warehouse.Event{
		"low index first": {b, a},
		"low index last":  {a, b},
	} {
		orders := ReconstructOrders(events)
		if len(orders) != 2 {
			t.Fatalf("%s: expected 2 order lines, got %d", name, len(orders))
		}
		for _, o := range orders {
			if !o.SOCreatedDate.Equal(b.EventDate) {
				t.Errorf("%s: expected date of index-2 event, got %v", name, o.SOCreatedDate)
			}
		}
	}
}
