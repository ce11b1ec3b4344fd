package cuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBase36Padding(t *testing.T) {
	assert.Equal(t, "0000", encodeBase36(0, 4))
	assert.Equal(t, "002s", encodeBase36(100, 4))
	assert.Equal(t, "005k", encodeBase36(200, 4))
	assert.Equal(t, "zzzz", encodeBase36(discreteValues-1, 4))
	// at the width bound the encoding is used unpadded
	assert.Equal(t, "10000", encodeBase36(discreteValues, 4))
}

func TestDecodeBase36(t *testing.T) {
	v, err := decodeBase36("k2p")
	require.NoError(t, err)
	assert.Equal(t, uint64(26017), v)

	_, err = decodeBase36("nope!")
	assert.Error(t, err)
}
