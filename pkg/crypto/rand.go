package crypto

import (
	"crypto/rand"
	"io"
)

// NewRAND 生成一个随机挑战 RAND
func NewRAND() ([]byte, error) {
	b := make([]byte, RandLen)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
