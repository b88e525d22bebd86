package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is wrapped by every error returned from this package.
var ErrOverflow = errors.New("integer overflow")

// Int64ToInt converts int64 to int safely.
func Int64ToInt(v int64) (int, error) {
	// On 64-bit systems this never fails; on 32-bit, int is narrower.
	if v < math.MinInt || v > math.MaxInt {
		return 0, fmt.Errorf("%w: %d cannot be converted to int", ErrOverflow, v)
	}
	return int(v), nil
}

// AddOffset returns base+delta, failing if the sum overflows int64 or is
// negative.
func AddOffset(base, delta int64) (int64, error) {
	sum := base + delta
	// Overflow iff both operands share a sign the result does not.
	if (base >= 0) == (delta >= 0) && (sum >= 0) != (base >= 0) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, base, delta)
	}
	if sum < 0 {
		return 0, fmt.Errorf("%w: %d + %d is negative", ErrOverflow, base, delta)
	}
	return sum, nil
}

// ScaleOffset returns index*scale for non-negative operands, failing on
// overflow.
func ScaleOffset(index, scale int64) (int64, error) {
	if index < 0 || scale < 0 {
		return 0, fmt.Errorf("%w: %d * %d has a negative operand", ErrOverflow, index, scale)
	}
	if scale != 0 && index > math.MaxInt64/scale {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, index, scale)
	}
	return index * scale, nil
}
