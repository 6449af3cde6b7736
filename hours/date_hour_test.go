package hours

import (
	"testing"
	"time"
)

func TestDateHourString(t *testing.T) {
	dh := DateHour{Date: "2025-01-01", Hour: 5}
	expected := "2025-01-01 05"
	if s := dh.String(); s != expected {
		t.Errorf("String() expected %q, got %q", expected, s)
	}
}

func TestDateHourLabel(t *testing.T) {
	dh := DateHour{Date: "2025-01-01", Hour: 7}
	if s := dh.Label(); s != "07:00" {
		t.Errorf("Label() expected %q, got %q", "07:00", s)
	}
}

func TestDateHourIsoString(t *testing.T) {
	// Winter, Stockholm is UTC+1.
	dh := DateHour{Date: "2025-01-01", Hour: 15}
	expected := "2025-01-01T15:00:00+01:00"
	if s := dh.IsoString(); s != expected {
		t.Errorf("IsoString() expected %q, got %q", expected, s)
	}
}

func TestDateHourAdd(t *testing.T) {
	tests := []struct {
		name     string
		input    DateHour
		addHours int
		expected DateHour
	}{
		{
			name:     "add within same day",
			input:    DateHour{Date: "2025-01-01", Hour: 10},
			addHours: 2,
			expected: DateHour{Date: "2025-01-01", Hour: 12},
		},
		{
			name:     "add crossing midnight",
			input:    DateHour{Date: "2025-01-01", Hour: 23},
			addHours: 2,
			expected: DateHour{Date: "2025-01-02", Hour: 1},
		},
		{
			name:     "add negative hours (subtract)",
			input:    DateHour{Date: "2025-01-01", Hour: 1},
			addHours: -2,
			expected: DateHour{Date: "2024-12-31", Hour: 23},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.input.Add(tt.addHours)
			if result != tt.expected {
				t.Errorf("Add(%d) expected %+v, got %+v", tt.addHours, tt.expected, result)
			}
		})
	}
}

func TestDateHourSub(t *testing.T) {
	input := DateHour{Date: "2025-01-01", Hour: 0}
	expected := DateHour{Date: "2024-12-31", Hour: 23}
	if result := input.Sub(1); result != expected {
		t.Errorf("Sub(1) expected %+v, got %+v", expected, result)
	}
}

func TestDateHourCompare(t *testing.T) {
	a := DateHour{Date: "2025-01-01", Hour: 10}
	b := DateHour{Date: "2025-01-01", Hour: 11}
	c := DateHour{Date: "2025-01-02", Hour: 0}
	if a.Compare(a) != 0 {
		t.Error("expected equal DateHours to compare 0")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Error("expected hour ordering within the same date")
	}
	if b.Compare(c) != -1 {
		t.Error("expected date ordering to win over hour")
	}
}

func TestDateHourIsZero(t *testing.T) {
	var dh DateHour
	if !dh.IsZero() {
		t.Errorf("expected a zero value DateHour to be zero")
	}
	dh = DateHour{Date: "2025-01-01", Hour: 0}
	if dh.IsZero() {
		t.Errorf("expected a non-zero DateHour (non-empty Date) not to be zero")
	}
}

func TestFromTime(t *testing.T) {
	// 15:30 UTC in winter is 16:30 in Stockholm.
	tm := time.Date(2025, time.January, 1, 15, 30, 0, 0, time.UTC)
	dh := FromTime(tm)
	expected := DateHour{Date: "2025-01-01", Hour: 16}
	if dh != expected {
		t.Errorf("FromTime() expected %+v, got %+v", expected, dh)
	}

	// 23:30 UTC rolls over to the next Stockholm delivery day.
	tm = time.Date(2025, time.January, 1, 23, 30, 0, 0, time.UTC)
	dh = FromTime(tm)
	expected = DateHour{Date: "2025-01-02", Hour: 0}
	if dh != expected {
		t.Errorf("FromTime() expected %+v, got %+v", expected, dh)
	}

	var zero time.Time
	if !FromTime(zero).IsZero() {
		t.Errorf("FromTime() with zero time expected a zero DateHour")
	}
}

func TestFromMidnight(t *testing.T) {
	dh := FromMidnight()
	if dh.Hour != 0 {
		t.Errorf("FromMidnight() expected hour 0, got %d", dh.Hour)
	}
	if dh.Date != FromNow().Date {
		t.Errorf("FromMidnight() expected today's date, got %q", dh.Date)
	}
}

func TestFromIso(t *testing.T) {
	isoStr := "2025-01-01T15:00:00Z"
	parsed := FromIso(isoStr)
	expected := time.Date(2025, time.January, 1, 15, 0, 0, 0, time.UTC)
	if !parsed.Equal(expected) {
		t.Errorf("FromIso() expected %v, got %v", expected, parsed)
	}

	if !FromIso("not a valid iso date").IsZero() {
		t.Errorf("FromIso() expected zero time for an invalid date string")
	}
}

func TestLocationStockholm(t *testing.T) {
	tmWinter := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	if _, offset := LocationStockholm(tmWinter).Zone(); offset != 3600 {
		t.Errorf("LocationStockholm() on winter date expected offset 3600 seconds, got %d", offset)
	}

	tmSummer := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	if _, offset := LocationStockholm(tmSummer).Zone(); offset != 7200 {
		t.Errorf("LocationStockholm() on summer date expected offset 7200 seconds, got %d", offset)
	}
}
