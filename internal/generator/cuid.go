package generator

import (
	"fmt"

	"github.com/manglass/cuid"
)

// CUIDGenerator is the service's primary strategy: a stateful generator
// with a per-process fingerprint and a monotonic counter. All calls share
// one cuid.Generator, so the counter advances across requests.
type CUIDGenerator struct {
	gen *cuid.Generator
}

// NewCUIDGenerator creates a CUIDGenerator. It fails if the host identity
// needed for the fingerprint cannot be read.
func NewCUIDGenerator() (*CUIDGenerator, error) {
	gen, err := cuid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to init CUID generator: %w", err)
	}
	return &CUIDGenerator{gen: gen}, nil
}

func (g *CUIDGenerator) Generate() (string, error) {
	return g.gen.Generate()
}

func (g *CUIDGenerator) GenerateBatch(count int) ([]string, error) {
	return batch(g, count)
}

func (g *CUIDGenerator) Validate(id string) (bool, string) {
	if _, err := cuid.Parse(id); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func (g *CUIDGenerator) Parse(id string) (*ParseResult, error) {
	parsed, err := cuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid CUID: %w", err)
	}

	return &ParseResult{
		Timestamp:     int64(parsed.Timestamp),
		Counter:       int64(parsed.Counter),
		Fingerprint:   parsed.Fingerprint,
		RandomPayload: id[len(id)-8:],
	}, nil
}
