package test

import (
	"math/rand/v2"
	"strings"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomASCIIString returns a pseudo-random ASCII string within the provided
// bounds. When maxLen equals minLen the result always has that exact length.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += rand.IntN(maxLen - minLen + 1)
	}
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(asciiLetters[rand.IntN(len(asciiLetters))])
	}
	return b.String()
}

// RandomEmail builds a throwaway address for registration tests.
func RandomEmail() string {
	return RandomASCIIString(6, 12) + "@example.com"
}
