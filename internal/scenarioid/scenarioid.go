// Package scenarioid generates time-sortable scenario identifiers: a UUIDv7
// encoded as 26 characters of Crockford base32.
package scenarioid

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/coder/quartz"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the encoded identifier length
const Length = 26

// RandSource supplies the random bits of an identifier
type RandSource interface {
	IntN(n int) int
}

// Generator produces identifiers from a clock and an optional RandSource.
// A nil RandSource draws from crypto/rand.
type Generator struct {
	clock      quartz.Clock
	randSource RandSource
}

// NewGenerator creates a generator; a nil clock uses the real clock
func NewGenerator(clock quartz.Clock, randSource RandSource) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, randSource: randSource}
}

// Generate returns a new identifier using the real clock and crypto/rand
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate returns a new identifier
func (g *Generator) Generate() string {
	return encodeBase32(g.uuidV7())
}

// uuidV7 lays out 48 bits of millisecond timestamp, the version and variant
// bits, and 74 bits of randomness.
func (g *Generator) uuidV7() [16]byte {
	var uuid [16]byte

	now := g.clock.Now().UnixMilli()
	uuid[0] = byte(now >> 40)
	uuid[1] = byte(now >> 32)
	uuid[2] = byte(now >> 24)
	uuid[3] = byte(now >> 16)
	uuid[4] = byte(now >> 8)
	uuid[5] = byte(now)

	if g.randSource != nil {
		for i := 6; i < 16; i++ {
			uuid[i] = byte(g.randSource.IntN(256))
		}
	} else if _, err := rand.Read(uuid[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return uuid
}

// encodeBase32 encodes 128 bits as 26 five-bit groups, most significant first
func encodeBase32(data [16]byte) string {
	result := make([]byte, Length)
	for i := range Length {
		bitOffset := i * 5
		byteIndex := bitOffset / 8
		bitIndex := bitOffset % 8

		var value uint8
		if byteIndex < 16 {
			if bitIndex <= 3 {
				value = (data[byteIndex] >> (3 - bitIndex)) & 0x1f
			} else {
				value = (data[byteIndex] << (bitIndex - 3)) & 0x1f
				if byteIndex+1 < 16 {
					value |= data[byteIndex+1] >> (11 - bitIndex)
				}
			}
		}
		result[i] = alphabet[value]
	}
	return string(result)
}

// Validate checks that id is a well-formed identifier
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("scenario ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("scenario ID first character must be 0-7, got %c", id[0])
	}
	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
