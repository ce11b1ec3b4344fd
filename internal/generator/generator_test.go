package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCUIDGeneratorRoundTrip(t *testing.T) {
	g, err := NewCUIDGenerator()
	require.NoError(t, err)

	id, err := g.Generate()
	require.NoError(t, err)

	valid, reason := g.Validate(id)
	assert.True(t, valid, reason)

	result, err := g.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Counter)
	assert.Len(t, result.Fingerprint, 4)
	assert.Len(t, result.RandomPayload, 8)

	// A second identifier advances the shared counter.
	id2, err := g.Generate()
	require.NoError(t, err)
	result2, err := g.Parse(id2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result2.Counter)
	assert.Equal(t, result.Fingerprint, result2.Fingerprint)
}

func TestCUIDGeneratorRejectsGarbage(t *testing.T) {
	g, err := NewCUIDGenerator()
	require.NoError(t, err)

	for _, id := range []string{"", "not-a-cuid!", "C1234567890123456789", "d1234567890123456789"} {
		valid, reason := g.Validate(id)
		assert.False(t, valid, "expected %q to be invalid", id)
		assert.NotEmpty(t, reason)

		_, err := g.Parse(id)
		assert.Error(t, err)
	}
}

func TestGenerateBatchCountAndUniqueness(t *testing.T) {
	g, err := NewCUIDGenerator()
	require.NoError(t, err)

	ids, err := g.GenerateBatch(250)
	require.NoError(t, err)
	require.Len(t, ids, 250)

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 250)
}

func TestNanoIDGeneratorValidation(t *testing.T) {
	_, err := NewNanoIDGenerator(0, DefaultNanoIDAlphabet)
	assert.Error(t, err)
	_, err = NewNanoIDGenerator(21, "x")
	assert.Error(t, err)

	g, err := NewNanoIDGenerator(10, "abc123")
	require.NoError(t, err)

	id, err := g.Generate()
	require.NoError(t, err)
	assert.Len(t, id, 10)

	valid, _ := g.Validate(id)
	assert.True(t, valid)

	valid, reason := g.Validate("zzzzzzzzzz")
	assert.False(t, valid)
	assert.NotEmpty(t, reason)
}

func TestStrategiesProduceValidatableIDs(t *testing.T) {
	cuid2Gen, err := NewCUID2Generator(DefaultCUID2Length)
	require.NoError(t, err)

	strategies := map[string]Generator{
		TypeUUID:  NewUUIDGenerator(),
		TypeULID:  NewULIDGenerator(),
		TypeKSUID: NewKSUIDGenerator(),
		TypeCUID2: cuid2Gen,
	}

	for name, g := range strategies {
		t.Run(name, func(t *testing.T) {
			id, err := g.Generate()
			require.NoError(t, err)

			valid, reason := g.Validate(id)
			assert.True(t, valid, reason)

			_, err = g.Parse(id)
			assert.NoError(t, err)
		})
	}
}
