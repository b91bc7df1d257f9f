// Package idgen generates the short uppercase-alphanumeric identifiers used
// for passengers (6 chars) and bookings (8 chars). The generator is an
// interface so tests can inject deterministic ids; callers are expected to
// re-check generated ids against stored ones, since the generator itself is
// stateless.
package idgen

import "math/rand"

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator produces identifiers of a requested length
type Generator interface {
	ID(length int) string
}

// AlphanumGenerator generates random ids from uppercase letters and digits
type AlphanumGenerator struct{}

// New creates a new AlphanumGenerator
func New() *AlphanumGenerator {
	return &AlphanumGenerator{}
}

// ID returns a random identifier of the given length
func (g *AlphanumGenerator) ID(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

var _ Generator = (*AlphanumGenerator)(nil)
