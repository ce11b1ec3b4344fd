package cuid

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"sync"
	"time"
)

const (
	base       = 36
	blockWidth = 4

	// discreteValues is 36^4, the value space of one 4-character block.
	discreteValues = base * base * base * base

	// timestampMod bounds the microsecond clock reading to 36^8.
	timestampMod = uint64(discreteValues) * uint64(discreteValues)

	prefix = "c"
)

// ErrRandomOutOfRange is returned by Generate when the configured random
// source yields a value outside [1, 36^4-1].
var ErrRandomOutOfRange = errors.New("cuid: random source value out of range")

// Generator produces CUIDs. Each Generator owns a fingerprint computed once
// at construction and a counter advanced by one on every successful
// Generate. It is safe for concurrent use: calls against the same Generator
// are serialized, so no two calls observe the same counter value.
type Generator struct {
	mu          sync.Mutex
	fingerprint string
	counter     uint64

	now  func() time.Time
	draw func() int
}

type settings struct {
	pid      func() int
	hostname func() (string, error)
	now      func() time.Time
	draw     func() int
}

// Option overrides one of the Generator's environment sources.
type Option func(*settings)

// WithProcessID fixes the process id used to derive the fingerprint.
func WithProcessID(pid int) Option {
	return func(s *settings) { s.pid = func() int { return pid } }
}

// WithHostname fixes the hostname used to derive the fingerprint.
func WithHostname(hostname string) Option {
	return func(s *settings) { s.hostname = func() (string, error) { return hostname, nil } }
}

// WithClock overrides the wall-clock source.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithRandom overrides the random source. The function must return values
// in [1, 36^4-1]; Generate fails with ErrRandomOutOfRange otherwise.
func WithRandom(draw func() int) Option {
	return func(s *settings) { s.draw = draw }
}

// New constructs an independent Generator with counter 0 and a fingerprint
// derived from the process id and hostname. It fails only if the hostname
// source fails.
func New(opts ...Option) (*Generator, error) {
	s := &settings{
		pid:      os.Getpid,
		hostname: os.Hostname,
		now:      time.Now,
		draw:     defaultDraw,
	}
	for _, opt := range opts {
		opt(s)
	}

	host, err := s.hostname()
	if err != nil {
		return nil, fmt.Errorf("cuid: read hostname: %w", err)
	}

	return &Generator{
		fingerprint: fingerprint(s.pid(), host),
		now:         s.now,
		draw:        s.draw,
	}, nil
}

func defaultDraw() int { return rand.IntN(discreteValues-1) + 1 }

// Fingerprint returns the generator's cached fingerprint block.
func (g *Generator) Fingerprint() string { return g.fingerprint }

// Generate returns one identifier and advances the counter by one. On
// error the counter is left unchanged, so a failed call is invisible to
// the next one.
func (g *Generator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	r1 := g.draw()
	r2 := g.draw()
	if r1 < 1 || r1 >= discreteValues || r2 < 1 || r2 >= discreteValues {
		return "", ErrRandomOutOfRange
	}

	ts := uint64(g.now().UnixMicro()) % timestampMod

	id := prefix +
		strconv.FormatUint(ts, base) +
		encodeBlock(g.counter) +
		g.fingerprint +
		encodeBlock(uint64(r1)) +
		encodeBlock(uint64(r2))

	g.counter = (g.counter + 1) % discreteValues
	return id, nil
}
