package generator

// Strategy names as used in the API and configuration.
const (
	TypeCUID   = "cuid"
	TypeCUID2  = "cuid2"
	TypeUUID   = "uuid"
	TypeULID   = "ulid"
	TypeKSUID  = "ksuid"
	TypeNanoID = "nanoid"
)

// Generator is the common surface every identifier strategy implements.
type Generator interface {
	Generate() (string, error)
	GenerateBatch(count int) ([]string, error)
	Validate(id string) (bool, string) // (valid, reason)
	Parse(id string) (*ParseResult, error)
}

// ParseResult holds the fields a strategy can recover from an identifier.
// Strategies fill only the fields that exist in their format.
type ParseResult struct {
	TimestampMs   int64  `json:"timestamp_ms,omitempty"`   // ULID/KSUID: absolute unix ms
	Timestamp     int64  `json:"timestamp,omitempty"`      // CUID: microsecond reading modulo 36^8
	Counter       int64  `json:"counter,omitempty"`        // CUID: embedded counter block
	Fingerprint   string `json:"fingerprint,omitempty"`    // CUID: process+host block
	RandomPayload string `json:"random_payload,omitempty"` // CUID: raw random blocks; ULID/KSUID: hex entropy
	UUIDVersion   int32  `json:"uuid_version,omitempty"`   // UUID only
	UUIDVariant   string `json:"uuid_variant,omitempty"`   // UUID only
	IDLength      int32  `json:"id_length,omitempty"`      // NanoID/CUID2
	Alphabet      string `json:"alphabet,omitempty"`       // NanoID
}

// batch collects count identifiers from g, failing on the first error.
func batch(g Generator, count int) ([]string, error) {
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := g.Generate()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
