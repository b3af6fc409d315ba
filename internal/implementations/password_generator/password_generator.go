package passwordgenerator

import (
	e "claon/internal/core/domain/errors"
	"claon/internal/core/domain/user"
	"sync"
)

const (
	Letters  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits   = "0123456789"
	Specials = "@$!%*#?&"

	// FillLength is the length of the random fill. One letter, one digit and
	// one special character are inserted into it afterwards.
	FillLength = 20
	Length     = FillLength + 3
)

const alphabet = Letters + Digits + Specials

// RandomSource returns a uniformly distributed int in [0, n).
type RandomSource interface {
	Intn(n int) int
}

type Generator struct {
	source RandomSource
	lock   sync.Mutex
}

func New(source RandomSource) *Generator {
	if source == nil {
		panic(e.NewNilArgumentError("source"))
	}
	return &Generator{source: source}
}

func (g *Generator) GeneratePassword() user.RawPassword {
	g.lock.Lock()
	defer g.lock.Unlock()

	password := make([]byte, 0, Length)
	// The fill never uses the last three characters of the alphabet.
	for i := 0; i < FillLength; i++ {
		password = append(password, alphabet[g.source.Intn(len(alphabet)-3)])
	}

	positions := [3]int{
		g.source.Intn(FillLength - 3),
		g.source.Intn(FillLength - 3),
		g.source.Intn(FillLength - 3),
	}
	chars := [3]byte{
		Letters[g.source.Intn(len(Letters))],
		Digits[g.source.Intn(len(Digits))],
		Specials[g.source.Intn(len(Specials))],
	}
	for i, pos := range positions {
		password = insert(password, pos, chars[i])
	}
	return user.RawPassword(password)
}

func insert(s []byte, pos int, c byte) []byte {
	s = append(s, 0)
	copy(s[pos+1:], s[pos:])
	s[pos] = c
	return s
}
