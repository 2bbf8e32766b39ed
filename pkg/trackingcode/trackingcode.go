package trackingcode

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// alphabet без легко путаемых символов (0/O, 1/I)
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	DefaultPrefix = "IV"
	DefaultLength = 6
)

var ErrInvalidLength = errors.New("trackingcode: length must be positive")

// Generator выдаёт коды вида PREFIX-XXXXXX
type Generator struct {
	prefix string
	length int
	random io.Reader
}

// New создает генератор. Пустой prefix означает код без префикса.
func New(prefix string, length int) *Generator {
	if length <= 0 {
		length = DefaultLength
	}
	return &Generator{prefix: prefix, length: length, random: rand.Reader}
}

// Generate возвращает новый случайный код
func (g *Generator) Generate() (string, error) {
	if g.length <= 0 {
		return "", ErrInvalidLength
	}

	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, g.length)
	for i := range b {
		idx, err := rand.Int(g.random, max)
		if err != nil {
			return "", fmt.Errorf("trackingcode: read random: %w", err)
		}
		b[i] = alphabet[idx.Int64()]
	}

	if g.prefix == "" {
		return string(b), nil
	}
	return g.prefix + "-" + string(b), nil
}
