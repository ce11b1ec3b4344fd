package cuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintFormula(t *testing.T) {
	// pid 7, hostname "a": process component 7*36^2, host checksum
	// ('a' + 1 + 36) mod 36^2.
	got := fingerprint(7, "a")
	assert.Len(t, got, blockWidth)
	assert.Equal(t, encodeBase36(uint64(7*1296+('a'+1+36)), blockWidth), got)
}

func TestFingerprintHalves(t *testing.T) {
	const hostname = "build-runner-12"
	fp := fingerprint(40000, hostname)

	assert.Equal(t, encodeBase36(uint64(40000%1296), 2), fp[:2])

	sum := base + len(hostname)
	for i := 0; i < len(hostname); i++ {
		sum += int(hostname[i])
	}
	assert.Equal(t, encodeBase36(uint64(sum%1296), 2), fp[2:])
}
