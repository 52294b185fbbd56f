// Package duration parses the retention periods accepted by
// "verse vacuum --older-than": "7d" (days), "4w" (weeks), "3m" (months of 30
// days). Go's time.Duration syntax is accepted too, so "12h" also works.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var pattern = regexp.MustCompile(`^(\d+)([dwm])$`)

const day = 24 * time.Hour

// Parse parses s as Nd, Nw or Nm, falling back to time.ParseDuration.
// Negative durations are rejected.
func Parse(s string) (time.Duration, error) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		d, err := time.ParseDuration(s)
		if err != nil || d < 0 {
			return 0, fmt.Errorf("invalid duration format: %s (use 7d, 4w, 3m or 12h)", s)
		}
		return d, nil
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("invalid number: %w", err)
	}

	switch m[2] {
	case "d":
		return time.Duration(n) * day, nil
	case "w":
		return time.Duration(n) * 7 * day, nil
	default:
		return time.Duration(n) * 30 * day, nil
	}
}
