package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts v to uint32, failing on negative or oversized
// input rather than wrapping.
func IntToUint32(v int) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("cannot convert %d to uint32", v)
	}
	return uint32(v), nil
}

// Uint32ToInt converts v to int, failing when it does not fit the
// platform int.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("cannot convert %d to int", v)
	}
	return int(v), nil
}
