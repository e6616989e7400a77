package util

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewRequestID generates a ULID for request correlation. IDs only need to be
// unique per process lifetime, so a time-seeded entropy source per call is
// sufficient; nothing here feeds the quiz engine's seeded sampling.
func NewRequestID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
