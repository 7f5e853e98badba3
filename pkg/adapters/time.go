package adapters

import "time"

// isoLayout matches the millisecond UTC timestamps of the original exports.
const isoLayout = "2006-01-02T15:04:05.000Z"

// ParseTimestamp reads an RFC 3339 timestamp. Unparseable input yields the
// zero time rather than failing the whole record.
func ParseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(isoLayout)
}
