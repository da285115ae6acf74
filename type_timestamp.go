package kakeibo

import (
	"fmt"
	"strconv"
	"time"
)

// TimestampFormat is the layout used to display timestamps.
const TimestampFormat = "2006-01-02 15:04:05 UTC"

// Timestamp is an instant with second granularity, persisted as Unix epoch seconds.
type Timestamp struct {
	sec int64
}

// At returns the Timestamp of t, truncated to the second.
func At(t time.Time) Timestamp { return Timestamp{sec: t.Unix()} }

// Unix returns a Timestamp from epoch seconds.
func Unix(sec int64) Timestamp { return Timestamp{sec: sec} }

// Unix returns the number of seconds elapsed since January 1, 1970 UTC.
func (ts Timestamp) Unix() int64 { return ts.sec }

// Time returns the timestamp as a UTC time.Time.
func (ts Timestamp) Time() time.Time { return time.Unix(ts.sec, 0).UTC() }

// Equal reports whether ts and x represent the same instant.
func (ts Timestamp) Equal(x Timestamp) bool { return ts.sec == x.sec }

// Before reports whether ts is before x.
func (ts Timestamp) Before(x Timestamp) bool { return ts.sec < x.sec }

// String formats the timestamp in UTC using TimestampFormat.
func (ts Timestamp) String() string { return ts.Time().Format(TimestampFormat) }

// MarshalJSON implements the json.Marshaler interface.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, ts.sec, 10), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	sec, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("timestamp must be integer epoch seconds, got %s", data)
	}
	ts.sec = sec
	return nil
}
