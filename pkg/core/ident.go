package core

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const identRandomLen = 6

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID generates a fresh note identifier: the current timestamp in base-36
// followed by a handful of random base-36 characters, uppercased.
//
// The timestamp component keeps ids roughly sortable and the random suffix
// makes collisions negligible in practice. Not a cryptographic identifier;
// uniqueness is probabilistic and no collision check is performed.
func NewID(now time.Time) string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 36))
	for i := 0; i < identRandomLen; i++ {
		b.WriteByte(base36[rand.IntN(len(base36))])
	}
	return strings.ToUpper(b.String())
}
