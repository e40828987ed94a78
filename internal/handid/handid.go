// Package handid generates sortable identifiers for dealt hands so log lines
// from one showdown can be correlated.
package handid

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/coder/quartz"
)

// Crockford's base32 alphabet.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an ID.
const Length = 26

// RandSource supplies the random part of an ID. *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

// Generator creates UUIDv7-style IDs: a millisecond timestamp from the clock
// followed by random bits, encoded in base32.
type Generator struct {
	clock quartz.Clock
	rng   RandSource
}

// NewGenerator creates a generator. A nil rng falls back to crypto/rand.
func NewGenerator(clock quartz.Clock, rng RandSource) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, rng: rng}
}

// Generate returns a new 26-character ID.
func (g *Generator) Generate() string {
	var id [16]byte

	now := g.clock.Now().UnixMilli()
	for i := range 6 {
		id[i] = byte(now >> (40 - 8*i))
	}

	if g.rng != nil {
		for i := 6; i < 16; i++ {
			id[i] = byte(g.rng.IntN(256))
		}
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // variant 10

	return encode(id)
}

// encode writes the 128 bits as 26 five-bit groups, the last group padded with zeros.
func encode(data [16]byte) string {
	out := make([]byte, Length)
	for i := range Length {
		bit := i * 5
		idx, off := bit/8, bit%8

		var v uint16
		v = uint16(data[idx]) << 8
		if idx+1 < len(data) {
			v |= uint16(data[idx+1])
		}
		out[i] = alphabet[(v>>(11-off))&0x1f]
	}
	return string(out)
}

// Validate checks that id has the expected length and alphabet.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("hand ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("hand ID first character must be 0-7, got %c", id[0])
	}
	for i, ch := range id {
		if !strings.ContainsRune(alphabet, ch) {
			return fmt.Errorf("invalid character %c at position %d", ch, i)
		}
	}
	return nil
}
