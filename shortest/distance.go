// SPDX-License-Identifier: MIT

package shortest

import (
	"math"
	"strconv"
)

// InfinityText is how an infinite Distance prints.
const InfinityText = "inf"

// Distance is a path length that is either a finite integer or infinite.
// The zero value is infinite.
type Distance struct {
	value  int64
	finite bool
}

// Infinite is the distance of an unreachable vertex.
var Infinite = Distance{}

// Finite returns the finite distance v.
func Finite(v int64) Distance {
	return Distance{value: v, finite: true}
}

// IsInfinite reports whether d is infinite.
func (d Distance) IsInfinite() bool { return !d.finite }

// Value returns the finite value and true, or 0 and false for Infinite.
func (d Distance) Value() (int64, bool) { return d.value, d.finite }

// Add returns d+w. Infinite stays infinite; a sum that would leave the int64
// range saturates to Infinite instead of wrapping around.
func (d Distance) Add(w int64) Distance {
	if !d.finite {
		return Infinite
	}
	if (w > 0 && d.value > math.MaxInt64-w) || (w < 0 && d.value < math.MinInt64-w) {
		return Infinite
	}

	return Finite(d.value + w)
}

// Plus adds two distances; either operand infinite gives Infinite.
func (d Distance) Plus(o Distance) Distance {
	if !o.finite {
		return Infinite
	}

	return d.Add(o.value)
}

// Less reports d < o with Infinite greater than every finite value.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.finite:
		return false
	case !o.finite:
		return true
	default:
		return d.value < o.value
	}
}

// String prints the decimal value or InfinityText.
func (d Distance) String() string {
	if !d.finite {
		return InfinityText
	}

	return strconv.FormatInt(d.value, 10)
}
