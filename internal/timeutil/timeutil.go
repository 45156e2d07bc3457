package timeutil

import (
	"strings"
	"time"
)

// TimestampLayout matches upstream timestamps once the trailing "Z" has been
// swapped for the UTC designator.
const TimestampLayout = "2006-01-02T15:04:05 MST"

// ParseTimestamp parses upstream timestamps such as "2016-05-01T14:00:00Z".
func ParseTimestamp(value string) (time.Time, error) {
	if strings.HasSuffix(value, "Z") {
		value = strings.TrimSuffix(value, "Z") + " UTC"
	}
	t, err := time.Parse(TimestampLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
