package holdings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NoValue is the placeholder shown for a holding without a market value.
const NoValue = "---"

// ErrNoValue is returned by ParseAmount for the NoValue placeholder.
var ErrNoValue = errors.New("no market value")

// ParseAmount parses a yen amount written with thousands separators.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == NoValue {
		return 0, ErrNoValue
	}
	s = strings.TrimSuffix(s, "円")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, errors.New("empty amount")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative amount %d", v)
	}
	return v, nil
}
