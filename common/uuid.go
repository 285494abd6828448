package common

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// UUID16 generates a 16-character hexadecimal random string used as the
// random part of client order ids.
func UUID16() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand should never fail in practice
		panic(fmt.Sprintf("failed to generate random bytes: %v", err))
	}
	return hex.EncodeToString(bytes)[:16]
}

// GenerateClientOrderID generates a client order ID.
// Format: cdxlink-{exchange}-{UUID16}
// Example: cdxlink-coindax-caa54b21bbabadd4
func GenerateClientOrderID(exchange string) string {
	exchange = strings.ToLower(exchange)
	return fmt.Sprintf("cdxlink-%s-%s", exchange, UUID16())
}
