// Package idgen provides the default record id generator: a millisecond
// timestamp plus a random suffix, both base36. Uniqueness only needs to hold
// among concurrently live records, so this is deliberately not a UUID.
package idgen

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"time"
)

// New returns a fresh id, e.g. "m1x2c3k4-3f9a0b1c2d". The time prefix keeps
// ids roughly sortable; the random suffix breaks same-millisecond collisions.
func New() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	t := strconv.FormatInt(time.Now().UnixMilli(), 36)
	r := strconv.FormatUint(binary.BigEndian.Uint64(b[:]), 36)
	return t + "-" + r
}
