package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayouts are tried in order when decoding a start_date. Values
// without a zone are taken as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
}

// Timestamp decodes an ISO 8601 date or date-time. It accepts RFC 3339
// values, naive date-times and plain dates.
type Timestamp time.Time

// ParseTimestamp parses s with the first matching layout.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}

	*t = Timestamp(parsed)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t))
}

// timePtr converts an optional Timestamp to an optional time.Time.
func (t *Timestamp) timePtr() *time.Time {
	if t == nil {
		return nil
	}

	v := time.Time(*t)
	return &v
}
