package service

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var referencePrefixes = map[string]string{
	"flight":     "FL",
	"hotel":      "HT",
	"car":        "CR",
	"restaurant": "RS",
}

const fallbackReferencePrefix = "BK"

// GenerateReference produces a human-readable booking reference from the
// booking type, a millisecond timestamp and a random component, all
// base36 upper-cased. Practically unique; the unique reference index is
// the real guarantee, with callers retrying on a duplicate insert.
func GenerateReference(bookingType string) string {
	prefix, ok := referencePrefixes[bookingType]
	if !ok {
		prefix = fallbackReferencePrefix
	}

	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)

	u := uuid.New()
	random := strconv.FormatUint(binary.BigEndian.Uint64(u[:8]), 36)
	if len(random) > 5 {
		random = random[:5]
	}

	return strings.ToUpper(prefix + "-" + timestamp + "-" + random)
}
