// Package id generates the prefixed ULIDs that tag requests and WebSocket
// connections in logs and responses.
//
// IDs look like "req_01HV3K9X8Q6ZC1T4M2R5N7B0WD": a short type prefix, an
// underscore, and a 26 character ULID. ULIDs sort by creation time, so log
// lines for one connection can be ordered by ID alone.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// RequestID identifies one HTTP request or one WebSocket invoke
type RequestID string

// ConnectionID identifies a WebSocket connection
type ConnectionID string

const (
	RequestPrefix    = "req"
	ConnectionPrefix = "conn"
)

// Generator produces monotonic ULIDs. It is safe for concurrent use.
type Generator struct {
	mu      sync.Mutex
	entropy io.Reader
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the process-wide generator
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator backed by crypto/rand.
// IDs created within the same millisecond still increase.
func NewGenerator() *Generator {
	return NewGeneratorWithEntropy(ulid.Monotonic(rand.Reader, 0))
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateString creates a new ULID as a string
func (g *Generator) GenerateString() string {
	return g.Generate().String()
}

// GenerateWithPrefix creates a "prefix_ULID" string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.GenerateString())
}

// NewRequestID generates a request ID
func NewRequestID() RequestID {
	return RequestID(Default().GenerateWithPrefix(RequestPrefix))
}

// NewConnectionID generates a WebSocket connection ID
func NewConnectionID() ConnectionID {
	return ConnectionID(Default().GenerateWithPrefix(ConnectionPrefix))
}

func (id RequestID) String() string    { return string(id) }
func (id ConnectionID) String() string { return string(id) }

// IsValid reports whether s is a bare ULID
func IsValid(s string) bool {
	_, err := ulid.Parse(s)
	return err == nil
}

// Split separates a prefixed ID into its prefix and ULID parts.
// ok is false when id is not of the form "prefix_ULID".
func Split(id string) (prefix string, u ulid.ULID, ok bool) {
	prefix, rest, found := strings.Cut(id, "_")
	if !found || prefix == "" {
		return "", ulid.ULID{}, false
	}
	u, err := ulid.Parse(rest)
	if err != nil {
		return "", ulid.ULID{}, false
	}
	return prefix, u, true
}

// Timestamp extracts the creation time of a bare or prefixed ID
func Timestamp(s string) (time.Time, error) {
	if _, u, ok := Split(s); ok {
		return ulid.Time(u.Time()), nil
	}
	u, err := ulid.Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(u.Time()), nil
}
