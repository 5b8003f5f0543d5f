package code

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_code.go github.com/KirkDiggler/hotdice/internal/common/code Generator

// Length is the number of characters in a room code
const Length = 6

// alphabet skips 0/O and 1/I so codes survive being read aloud
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Generator produces short human-shareable room codes
type Generator interface {
	NewCode() (string, error)
}

// DefaultGenerator draws codes from crypto/rand
type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewCode returns a random room code of Length characters
func (g *DefaultGenerator) NewCode() (string, error) {
	b := make([]byte, Length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random code: %w", err)
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b), nil
}
