package geonode

import (
	"fmt"

	"github.com/gogpu/geonode/internal/enum"
)

// BroadcastPolicy selects how vectorized parameter lists of different
// lengths are matched row by row.
type BroadcastPolicy uint8

const (
	// BroadcastStrict accepts lists of length 1 (used as scalars) or of the
	// common row count. Any other length fails with a *ShapeError.
	BroadcastStrict BroadcastPolicy = iota

	// BroadcastRepeatLast matches lists to the longest one by repeating the
	// last value of each shorter list.
	BroadcastRepeatLast
)

var broadcastNames = enum.Table{
	"strict":      int(BroadcastStrict),
	"repeat":      int(BroadcastRepeatLast),
	"repeat-last": int(BroadcastRepeatLast),
}

// String returns the policy name.
func (p BroadcastPolicy) String() string {
	switch p {
	case BroadcastStrict:
		return "strict"
	case BroadcastRepeatLast:
		return "repeat"
	default:
		return fmt.Sprintf("BroadcastPolicy(%d)", p)
	}
}

// ParseBroadcastPolicy parses a policy name ("strict", "repeat").
func ParseBroadcastPolicy(s string) (BroadcastPolicy, error) {
	v, ok := broadcastNames.Lookup(s)
	if !ok {
		return 0, fmt.Errorf("broadcast policy %q: %w", s, ErrUnknownEnum)
	}
	return BroadcastPolicy(v), nil
}

// Broadcast returns the number of rows the named lists expand to under the
// policy. Every list must be non-empty.
func Broadcast(policy BroadcastPolicy, lens ...NamedLen) (int, error) {
	rows := 0
	for _, l := range lens {
		if l.Len == 0 {
			return 0, fmt.Errorf("%s: %w", l.Name, ErrEmptyInput)
		}
		rows = max(rows, l.Len)
	}

	if policy == BroadcastStrict {
		var bad []NamedLen
		for _, l := range lens {
			if l.Len != 1 && l.Len != rows {
				bad = append(bad, l)
			}
		}
		if len(bad) > 0 {
			return 0, &ShapeError{Rows: rows, Mismatched: bad}
		}
	}
	return rows, nil
}

// Pick returns the element of xs used for the given broadcast row.
// Lists shorter than the row count contribute their last value.
func Pick[T any](xs []T, row int) T {
	return xs[min(row, len(xs)-1)]
}
