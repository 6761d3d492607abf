package scene

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the canonical request timestamp format.
const TimestampLayout = "2006/01/02 15:04:05"

var errEmptyTimestamp = errors.New("empty timestamp")

// Accepted timestamp layouts, most specific first. Times without a zone are
// UTC. Month, day and hour use the unpadded verbs, which also accept a
// leading zero.
var timestampLayouts = []string{
	"2006/1/2 15:04:05",
	"2006/1/2 15:04",
	"2006/1/2",
	time.RFC3339,
	"2006-1-2 15:04:05",
	"2006-1-2T15:04:05",
	"2006-1-2 15:04",
	"2006-1-2",
}

// ParseTimestamp parses a request timestamp in any accepted layout.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errEmptyTimestamp
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
