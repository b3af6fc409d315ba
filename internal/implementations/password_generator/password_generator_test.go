package passwordgenerator

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratedPasswordComposition(t *testing.T) {
	generators := map[string]*Generator{
		"seeded": New(rand.New(rand.NewSource(1))),
		"crypto": New(NewCryptoSource()),
	}
	for name, generator := range generators {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 500; i++ {
				password := string(generator.GeneratePassword())
				require.Len(t, password, Length)
				require.True(t, strings.ContainsAny(password, Letters), password)
				require.True(t, strings.ContainsAny(password, Digits), password)
				require.True(t, strings.ContainsAny(password, Specials), password)
				for _, c := range password {
					require.True(t, strings.ContainsRune(alphabet, c), password)
				}
			}
		})
	}
}

func TestGeneratorIsDeterministicForSeed(t *testing.T) {
	first := New(rand.New(rand.NewSource(7))).GeneratePassword()
	second := New(rand.New(rand.NewSource(7))).GeneratePassword()
	require.Equal(t, first, second)
}

// fixedSource always returns the same index.
type fixedSource int

func (s fixedSource) Intn(n int) int {
	if int(s) >= n {
		return n - 1
	}
	return int(s)
}

func TestGuaranteedCharactersAreInserted(t *testing.T) {
	password := string(New(fixedSource(0)).GeneratePassword())

	// Fill is all 'a'; inserts at position 0 push earlier inserts to the right.
	require.Equal(t, "@0a"+strings.Repeat("a", FillLength), password)
}

func TestInsert(t *testing.T) {
	require.Equal(t, "xabc", string(insert([]byte("abc"), 0, 'x')))
	require.Equal(t, "abxc", string(insert([]byte("abc"), 2, 'x')))
	require.Equal(t, "abcx", string(insert([]byte("abc"), 3, 'x')))
}
