package templates

import (
	"fmt"
	"strconv"
	"time"
)

// InvalidDate is embedded when a date field fails to parse. Malformed
// dates do not reject the request; this matches the gateway's existing
// output contract.
const InvalidDate = "Invalid Date"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case float64:
		// Epoch milliseconds, as a JSON number
		return time.UnixMilli(int64(d)), true
	}
	return time.Time{}, false
}

// FormatLocaleDate formats a date field as "1/2/2006".
func FormatLocaleDate(v any) string {
	t, ok := parseDate(v)
	if !ok {
		return InvalidDate
	}
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// FormatDateString formats a date field as "Mon Jan 02 2006".
func FormatDateString(v any) string {
	t, ok := parseDate(v)
	if !ok {
		return InvalidDate
	}
	return t.Format("Mon Jan 02 2006")
}

// FormatLocaleDateTime formats a date field as "1/2/2006, 3:04:05 PM".
func FormatLocaleDateTime(v any) string {
	t, ok := parseDate(v)
	if !ok {
		return InvalidDate
	}
	return fmt.Sprintf("%d/%d/%d, %s", int(t.Month()), t.Day(), t.Year(), t.Format("3:04:05 PM"))
}

// FieldString renders a JSON-decoded field the way it appears when
// interpolated: numbers without a trailing fraction ("500", "500.5"),
// strings verbatim, nil as the empty string.
func FieldString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
