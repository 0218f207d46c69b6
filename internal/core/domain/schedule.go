package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// ScheduleTime is a start or end time as it arrives from the generation
// config. Accepted forms are an RFC 3339 (or plain date) string, JSON true
// meaning "start now", and null. Anything else is kept but resolves to no
// time, so it can never leak to a platform as an invalid value.
type ScheduleTime struct {
	raw json.RawMessage
}

var scheduleLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NewScheduleTime builds a ScheduleTime from a string, time.Time, *time.Time
// or bool. Other values produce an empty ScheduleTime.
func NewScheduleTime(v any) ScheduleTime {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return ScheduleTime{}
		}
		v = t.UTC().Format(time.RFC3339Nano)
	case *time.Time:
		if t == nil || t.IsZero() {
			return ScheduleTime{}
		}
		v = t.UTC().Format(time.RFC3339Nano)
	case string, bool:
	default:
		return ScheduleTime{}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return ScheduleTime{}
	}
	return ScheduleTime{raw: raw}
}

// IsZero reports whether no value was provided.
func (s ScheduleTime) IsZero() bool {
	trimmed := bytes.TrimSpace(s.raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Resolve returns the concrete instant, using now for "start now". The
// second result is false for absent, false or unparseable values.
func (s ScheduleTime) Resolve(now time.Time) (time.Time, bool) {
	if s.IsZero() {
		return time.Time{}, false
	}
	var b bool
	if err := json.Unmarshal(s.raw, &b); err == nil {
		if b {
			return now.UTC(), true
		}
		return time.Time{}, false
	}
	var str string
	if err := json.Unmarshal(s.raw, &str); err != nil {
		return time.Time{}, false
	}
	str = strings.TrimSpace(str)
	for _, layout := range scheduleLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// MarshalJSON implements json.Marshaler.
func (s ScheduleTime) MarshalJSON() ([]byte, error) {
	if s.IsZero() {
		return []byte("null"), nil
	}
	return s.raw, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *ScheduleTime) UnmarshalJSON(data []byte) error {
	s.raw = append(s.raw[:0], data...)
	return nil
}
