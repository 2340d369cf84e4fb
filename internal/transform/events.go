package transform

import (
	"sort"
	"time"

	"github.com/upcasem/profiledw/internal/warehouse"
)

// ExtractEvents projects every staging row whose product is in the sample
// into a fact row. No deduplication: one fact per surviving staging row, in
// staging order. EventDate is the calendar date of EventTime.
func ExtractEvents(events []warehouse.StagingEvent, sample ProductSet) []warehouse.Event {
	facts := make([]warehouse.Event, 0, len(events))
	for _, e := range events {
		if !sample.Contains(e.ProductID) {
			continue
		}
		facts = append(facts, warehouse.Event{
			Index:       e.Index,
			EventTime:   e.EventTime,
			EventDate:   truncateToDate(e.EventTime),
			EventType:   e.EventType,
			ProductID:   e.ProductID,
			Price:       e.Price,
			UserID:      e.UserID,
			UserSession: e.UserSession,
		})
	}
	return facts
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DistinctUserIDs returns the distinct fact user ids in ascending order.
// The user enricher depends on this ordering: the age distribution branches
// are assigned positionally over it.
func DistinctUserIDs(events []warehouse.Event) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, e := range events {
		if _, ok := seen[e.UserID]; ok {
			continue
		}
		seen[e.UserID] = struct{}{}
		ids = append(ids, e.UserID)
	}
	sort.Strings(ids)
	return ids
}
