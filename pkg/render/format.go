package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDate renders a timestamp with the minimal layout: the date-only
// layout when the time-of-day is exactly midnight, the date-time layout
// otherwise.
func FormatDate(t time.Time, settings Settings) string {
	layout := settings.DateTimeFormat
	if isMidnight(t) {
		layout = settings.DateFormat
	}
	if layout == "" {
		defaults := DefaultSettings()
		if isMidnight(t) {
			layout = defaults.DateFormat
		} else {
			layout = defaults.DateTimeFormat
		}
	}
	return t.Format(layout)
}

func isMidnight(t time.Time) bool {
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}

// FormatDuration renders a span of time as its non-zero components, largest
// first: "1 day, 2 hours, 30 minutes". Sub-second remainders surface as
// milliseconds; a zero duration reads "0 seconds".
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "0 seconds"
	}

	negative := d < 0
	if negative {
		d = -d
	}

	parts := make([]string, 0, 5)
	appendUnit := func(amount int64, singular string) {
		if amount == 0 {
			return
		}
		unit := singular
		if amount != 1 {
			unit += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", amount, unit))
	}

	appendUnit(int64(d/(24*time.Hour)), "day")
	d %= 24 * time.Hour
	appendUnit(int64(d/time.Hour), "hour")
	d %= time.Hour
	appendUnit(int64(d/time.Minute), "minute")
	d %= time.Minute
	appendUnit(int64(d/time.Second), "second")
	d %= time.Second
	appendUnit(int64(d/time.Millisecond), "millisecond")

	out := strings.Join(parts, ", ")
	if negative {
		out = "-" + out
	}
	return out
}

// stringify renders scalar values the way they would be written in source:
// strings verbatim, numbers without exponent noise, booleans lowercased.
func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// dump produces the JSON-ish textual form used by the unrecognised-value
// placeholder. Values that cannot marshal fall back to fmt formatting so
// the placeholder never fails.
func dump(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
