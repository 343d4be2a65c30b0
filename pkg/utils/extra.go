package utils

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strings"
)

const alphanum = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRandomToken generates a random hex token of the specified length.
func GenerateRandomToken(length int) string {
	bytes := make([]byte, (length+1)/2)
	_, err := rand.Read(bytes)
	if err != nil {
		return ""
	}
	return hex.EncodeToString(bytes)[:length]
}

// RandomSuffix returns n lowercase alphanumeric characters.
func RandomSuffix(n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(alphanum)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			out[i] = alphanum[0]
			continue
		}
		out[i] = alphanum[idx.Int64()]
	}
	return string(out)
}

// ContainsPattern builds a lowercase LIKE pattern matching s anywhere, with
// LIKE wildcards in s escaped. Pair it with LOWER(column) LIKE ?.
func ContainsPattern(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + s + "%"
}
