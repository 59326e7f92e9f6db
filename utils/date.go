package utils

import (
	"fmt"
	"strings"
	"time"
)

// LocalDateTimeLayout is the zone-less form clients send, e.g. 2025-05-01T10:00:00.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// DateTime accepts either LocalDateTimeLayout (read in the server's zone) or RFC3339.
type DateTime struct {
	time.Time
}

func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(LocalDateTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date-time format: %s", s)
	}
	return t, nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if string(data) == `null` {
		*d = DateTime{time.Time{}}
		return nil
	}

	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	t, err := ParseDateTime(str)
	if err != nil {
		return err
	}
	*d = DateTime{t}
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}

func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(time.RFC3339)
}
