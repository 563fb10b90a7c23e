package render

import (
	"testing"
	"time"
)

func TestFormatDate_MinimalLayout(t *testing.T) {
	settings := DefaultSettings()

	midnight := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(midnight, settings); got != "March 01, 2024" {
		t.Fatalf("midnight dates use the date-only layout, got %q", got)
	}

	afternoon := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
	if got := FormatDate(afternoon, settings); got != "2:30 PM - March 01, 2024" {
		t.Fatalf("dates with a time component use the date-time layout, got %q", got)
	}
}

func TestFormatDate_EmptyLayoutsFallBack(t *testing.T) {
	midnight := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(midnight, Settings{}); got != "March 01, 2024" {
		t.Fatalf("empty settings should use the defaults, got %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0 seconds"},
		{"seconds", 5 * time.Second, "5 seconds"},
		{"singular", time.Hour, "1 hour"},
		{"mixed", 90 * time.Minute, "1 hour, 30 minutes"},
		{"days", 26*time.Hour + 3*time.Minute, "1 day, 2 hours, 3 minutes"},
		{"millis", 1500 * time.Millisecond, "1 second, 500 milliseconds"},
		{"negative", -90 * time.Minute, "-1 hour, 30 minutes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatDuration(tc.d); got != tc.want {
				t.Fatalf("FormatDuration(%v) = %q, want %q", tc.d, got, tc.want)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{"plain", "plain"},
		{true, "true"},
		{false, "false"},
		{42, "42"},
		{int64(-3), "-3"},
		{uint16(7), "7"},
		{2.5, "2.5"},
		{float32(0.5), "0.5"},
		{1e6, "1000000"},
	}
	for _, tc := range cases {
		if got := stringify(tc.value); got != tc.want {
			t.Fatalf("stringify(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestDump_FallsBackForUnmarshalable(t *testing.T) {
	if got := dump(map[string]any{"a": 1}); got != `{"a":1}` {
		t.Fatalf("dump = %q", got)
	}
	// Channels cannot marshal; the placeholder must still produce text.
	if got := dump(make(chan int)); got == "" {
		t.Fatalf("expected a non-empty fallback dump")
	}
}
