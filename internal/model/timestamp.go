package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/bills/internal/constants"
)

// Timestamp is a point in time as the backend sends it, "2019-03-10 03:20:41".
// The wall clock is kept exactly as received; no zone conversion is applied.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp accepts the backend layout and RFC 3339.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(constants.DateTimeFormat, s); err == nil {
		return Timestamp{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return Timestamp{Time: t}, nil
}

func (t Timestamp) String() string {
	return t.Format(constants.DateTimeFormat)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Timestamp{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
