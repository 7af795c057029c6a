// Package domain defines the core domain models for CarFlow.
package domain

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID prefixes. Cycle and session IDs are ULID-based and appear in every
// log line the collector emits for correlation.
const (
	// CycleIDPrefix is the prefix for aggregate cycle IDs.
	CycleIDPrefix = "cfcy-"

	// SessionIDPrefix is the prefix for feed session IDs.
	SessionIDPrefix = "cfsn-"
)

// ulidLength is the canonical encoded ULID length.
const ulidLength = 26

// GenerateCycleID generates a new aggregate cycle ID.
// Format: cfcy-{ulid_lowercase}, 31 characters total.
func GenerateCycleID() (string, error) {
	return generateID(CycleIDPrefix)
}

// GenerateSessionID generates a new feed session ID.
// Format: cfsn-{ulid_lowercase}, 31 characters total.
func GenerateSessionID() (string, error) {
	return generateID(SessionIDPrefix)
}

func generateID(prefix string) (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", ErrInternal.WithCause(err)
	}
	return prefix + strings.ToLower(id.String()), nil
}

// IsValidID checks whether id is a well-formed prefixed ULID for the
// given prefix (CycleIDPrefix or SessionIDPrefix).
func IsValidID(id, prefix string) bool {
	id = strings.ToLower(id)
	if !strings.HasPrefix(id, prefix) {
		return false
	}
	if len(id) != len(prefix)+ulidLength {
		return false
	}
	_, err := ulid.Parse(strings.ToUpper(id[len(prefix):]))
	return err == nil
}
