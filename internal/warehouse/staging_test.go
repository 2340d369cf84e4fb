package warehouse

import (
	"testing"
	"time"
)

func TestParseEventTime(t *testing.T) {
	want := time.Date(2019, 12, 1, 0, 0, 0, 0, time.UTC)

	tests := []string{
		"2019-12-01 00:00:00 UTC",
		"2019-12-01 00:00:00",
		"2019-12-01T00:00:00Z",
	}
	for _, s := range tests {
		got, err := parseEventTime(s)
		if err != nil {
			t.Errorf("parseEventTime(%q) failed: %v", s, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("parseEventTime(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestParseEventTimeInvalid(t *testing.T) {
	if _, err := parseEventTime("not-a-timestamp"); err == nil {
		t.Error("Expected error for invalid timestamp")
	}
}

func TestParseLogRecord(t *testing.T) {
	record := []string{
		"2019-12-01 10:30:00 UTC",
		"purchase",
		"5809910",
		"1602943681873052386",
		"appliances.environment.vacuum",
		"runail",
		"5.24",
		"463240011",
		"26dd6e6e-4dac-4778-8d2c-92e149dab885",
	}

	row, err := parseLogRecord(record)
	if err != nil {
		t.Fatalf("parseLogRecord failed: %v", err)
	}
	if len(row) != len(stagingColumns) {
		t.Fatalf("Expected %d values, got %d", len(stagingColumns), len(row))
	}

	ts, ok := row[0].(time.Time)
	if !ok || !ts.Equal(time.Date(2019, 12, 1, 10, 30, 0, 0, time.UTC)) {
		t.Errorf("Wrong event_time value: %v", row[0])
	}
	if row[1] != "purchase" || row[2] != "5809910" {
		t.Errorf("Wrong event_type/product_id: %v, %v", row[1], row[2])
	}
	if price, ok := row[6].(float64); !ok || price != 5.24 {
		t.Errorf("Wrong price value: %v", row[6])
	}
}

func TestParseLogRecordEmptyPrice(t *testing.T) {
	record := []string{
		"2019-12-01 10:30:00 UTC", "view", "p1", "c1", "", "", "", "u1", "s1",
	}

	row, err := parseLogRecord(record)
	if err != nil {
		t.Fatalf("parseLogRecord failed: %v", err)
	}
	if price, ok := row[6].(float64); !ok || price != 0 {
		t.Errorf("Expected empty price to parse as 0, got %v", row[6])
	}
}

func TestParseLogRecordBadValues(t *testing.T) {
	badTime := []string{"yesterday", "view", "p1", "c1", "", "", "1.0", "u1", "s1"}
	if _, err := parseLogRecord(badTime); err == nil {
		t.Error("Expected error for unparseable event_time")
	}

	badPrice := []string{"2019-12-01 10:30:00 UTC", "view", "p1", "c1", "", "", "cheap", "u1", "s1"}
	if _, err := parseLogRecord(badPrice); err == nil {
		t.Error("Expected error for unparseable price")
	}
}
