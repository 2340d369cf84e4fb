package transform

import (
	"sort"
	"time"

	"github.com/upcasem/profiledw/internal/warehouse"
)

// BuildCalendar derives one calendar row per distinct event date. Week is
// the ISO week number and weekday uses 0=Sunday, both matching what
// Postgres date_part('week') and date_part('dow') would produce.
func BuildCalendar(events []warehouse.Event) []warehouse.TimeRow {
	seen := make(map[time.Time]struct{})
	var times []warehouse.TimeRow

	for _, e := range events {
		if _, ok := seen[e.EventDate]; ok {
			continue
		}
		seen[e.EventDate] = struct{}{}

		d := e.EventDate
		_, week := d.ISOWeek()
		times = append(times, warehouse.TimeRow{
			Date:       d,
			DayOfMonth: d.Day(),
			Week:       week,
			Month:      int(d.Month()),
			Year:       d.Year(),
			Weekday:    int(d.Weekday()),
		})
	}

	sort.Slice(times, func(i, j int) bool {
		return times[i].Date.Before(times[j].Date)
	})
	return times
}
