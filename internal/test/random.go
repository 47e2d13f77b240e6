package test

import "math/rand"

const (
	alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digits       = "0123456789"
)

// RandomASCIIString returns an alphanumeric string with length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	return pick(alphanumeric, minLen+rand.Intn(maxLen-minLen+1))
}

// RandomToken returns a six-digit string shaped like a session token.
func RandomToken() string {
	return string(digits[1+rand.Intn(9)]) + pick(digits, 5)
}

func pick(alphabet string, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(buf)
}
