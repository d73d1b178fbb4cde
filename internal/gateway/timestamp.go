package gateway

import (
	"bytes"
	"encoding/json"
	"time"
)

// naive timestamps are emitted without a zone and are interpreted as UTC
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Timestamp is a time.Time accepting both zoned and naive ISO-8601 representations
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses an ISO-8601 timestamp with or without zone information
func ParseTimestamp(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// UnmarshalJSON implements json.Unmarshaler
func (timestamp *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		return nil
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	timestamp.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler
func (timestamp Timestamp) MarshalJSON() ([]byte, error) {
	if timestamp.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(timestamp.UTC().Format(time.RFC3339Nano))
}
