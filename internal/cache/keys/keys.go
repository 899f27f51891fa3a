// Package keys builds the cache key layout shared by the HTTP handlers and
// the tally counters.
package keys

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Grid keys a rendered grid-scan payload. The bbox floats are normalized
// through strconv so that 139.70 and 139.7 hash identically, and the hash
// keeps the key short and safe regardless of the raw query text.
func Grid(level int, west, south, east, north float64) string {
	canonical := fmt.Sprintf("%s,%s,%s,%s",
		formatCoord(west), formatCoord(south), formatCoord(east), formatCoord(north))
	return fmt.Sprintf("grid:v1:l%d:%016x", level, xxhash.Sum64String(canonical))
}

// Tally keys the observation counter for one mesh cell. Mesh codes are
// already a fixed, restricted alphabet so they embed directly.
func Tally(level int, code string) string {
	return fmt.Sprintf("tally:v1:l%d:%s", level, code)
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
