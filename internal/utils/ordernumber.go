package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateOrderNumber returns a timestamp-derived order number, e.g.
// ORD-20250830-142501-317-0042. The random suffix keeps concurrent
// submissions within the same millisecond distinct.
func GenerateOrderNumber() string {
	return numberWithPrefix("ORD")
}

// GenerateTrackingID returns a tracking identifier in the same scheme.
func GenerateTrackingID() string {
	return numberWithPrefix("TRK")
}

func numberWithPrefix(prefix string) string {
	now := time.Now().UTC()

	datePart := now.Format("20060102-150405")
	millis := now.Nanosecond() / int(time.Millisecond)

	// 4-digit cryptographic random
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(now.UnixNano() % 10000)
	}

	return fmt.Sprintf(
		"%s-%s-%03d-%04d",
		prefix,
		datePart,
		millis,
		n.Int64(),
	)
}
