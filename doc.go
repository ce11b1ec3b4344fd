// Package cuid generates collision-resistant identifiers without central
// coordination.
//
// # Format
//
// An identifier is the lowercase concatenation of
//
//	c <timestamp> <counter> <fingerprint> <random> <random>
//
// where the timestamp is the wall clock in microseconds modulo 36^8,
// base-36 encoded without padding, and the remaining fields are 4-character
// base-36 blocks. The fingerprint combines the process id with a hostname
// checksum and is computed once per Generator; the counter starts at zero,
// advances by one per identifier, and wraps modulo 36^4.
//
// # Collision resistance
//
// Identifiers produced concurrently differ in at least one of the counter,
// fingerprint, or random blocks. The package makes no cryptographic
// unguessability claim, and ordering only holds within the timestamp
// wraparound window.
//
// Usage
//
//	g, err := cuid.New()
//	if err != nil {
//		// hostname could not be read; the generator cannot exist
//	}
//	id, err := g.Generate()
package cuid
