package auth

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strconv"
)

// TokenGenerator mints bearer tokens for new sessions.
type TokenGenerator interface {
	Generate() (string, error)
}

const (
	tokenMin  = 100000
	tokenSpan = 900000
)

// NumericGenerator produces six-digit numeric tokens drawn uniformly from [100000, 999999].
type NumericGenerator struct {
	source io.Reader
}

// NewNumericGenerator returns a generator reading from crypto/rand.
func NewNumericGenerator() *NumericGenerator {
	return &NumericGenerator{source: rand.Reader}
}

// Generate returns a fresh token.
func (g *NumericGenerator) Generate() (string, error) {
	n, err := rand.Int(g.source, big.NewInt(tokenSpan))
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return strconv.FormatInt(n.Int64()+tokenMin, 10), nil
}
