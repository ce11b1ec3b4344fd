package generator

import (
	"fmt"

	"github.com/google/uuid"
)

// UUIDGenerator generates random (version 4) UUIDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate UUID: %w", err)
	}
	return id.String(), nil
}

func (g *UUIDGenerator) GenerateBatch(count int) ([]string, error) {
	return batch(g, count)
}

func (g *UUIDGenerator) Validate(id string) (bool, string) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false, fmt.Sprintf("invalid UUID format: %v", err)
	}
	if parsed.Version() != 4 {
		return false, fmt.Sprintf("expected UUID v4, got v%d", parsed.Version())
	}
	return true, ""
}

func (g *UUIDGenerator) Parse(id string) (*ParseResult, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID format: %w", err)
	}

	var variant string
	switch parsed.Variant() {
	case uuid.RFC4122:
		variant = "RFC4122"
	case uuid.Reserved:
		variant = "Reserved"
	case uuid.Microsoft:
		variant = "Microsoft"
	case uuid.Future:
		variant = "Future"
	default:
		variant = "Unknown"
	}

	return &ParseResult{
		UUIDVersion: int32(parsed.Version()),
		UUIDVariant: variant,
	}, nil
}
