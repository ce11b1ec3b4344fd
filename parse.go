package cuid

import (
	"fmt"
	"strings"
)

// trailingWidth covers the counter, fingerprint, and two random blocks.
// Everything between the prefix and this tail is the timestamp.
const trailingWidth = 4 * blockWidth

// Parsed holds the decoded fields of an identifier.
type Parsed struct {
	// Timestamp is the microsecond clock reading modulo 36^8 that was
	// embedded at generation time, not an absolute instant.
	Timestamp   uint64
	Counter     uint64
	Fingerprint string
	Random      [2]uint64
}

// Parse splits an identifier into its fields and decodes the numeric ones.
func Parse(id string) (Parsed, error) {
	var p Parsed

	if !strings.HasPrefix(id, prefix) {
		return p, fmt.Errorf("cuid: missing %q prefix", prefix)
	}
	if len(id) < len(prefix)+1+trailingWidth {
		return p, fmt.Errorf("cuid: identifier too short: %d characters", len(id))
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') {
			return p, fmt.Errorf("cuid: invalid character %q at position %d", c, i)
		}
	}

	body := id[len(prefix):]
	split := len(body) - trailingWidth

	ts, err := decodeBase36(body[:split])
	if err != nil {
		return p, fmt.Errorf("cuid: decode timestamp: %w", err)
	}
	counter, err := decodeBase36(body[split : split+blockWidth])
	if err != nil {
		return p, fmt.Errorf("cuid: decode counter: %w", err)
	}
	r1, err := decodeBase36(body[split+2*blockWidth : split+3*blockWidth])
	if err != nil {
		return p, fmt.Errorf("cuid: decode random block: %w", err)
	}
	r2, err := decodeBase36(body[split+3*blockWidth:])
	if err != nil {
		return p, fmt.Errorf("cuid: decode random block: %w", err)
	}

	p.Timestamp = ts
	p.Counter = counter
	p.Fingerprint = body[split+blockWidth : split+2*blockWidth]
	p.Random = [2]uint64{r1, r2}
	return p, nil
}

// IsValid reports whether id parses as an identifier.
func IsValid(id string) bool {
	_, err := Parse(id)
	return err == nil
}
