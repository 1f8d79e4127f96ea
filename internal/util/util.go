package util

import (
	"cmp"
	"strings"
)

// Clamp bounds v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// CeilDiv returns ceil(total/size) and 0 for a non-positive size.
func CeilDiv(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}

	return int((total + int64(size) - 1) / int64(size))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds a LIKE pattern matching s anywhere, with the LIKE
// metacharacters in s escaped by a backslash.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
