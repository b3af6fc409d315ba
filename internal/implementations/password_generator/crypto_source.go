package passwordgenerator

import (
	"crypto/rand"
	"math/big"
)

// CryptoSource draws from crypto/rand. It panics if the system entropy
// source fails, since a predictable password must never be issued.
type CryptoSource struct{}

func NewCryptoSource() CryptoSource {
	return CryptoSource{}
}

func (CryptoSource) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("could not read random bytes: " + err.Error())
	}
	return int(v.Int64())
}
