package test

import "math/rand/v2"

const usernameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomUsername returns a lowercase alphanumeric name of length n.
func RandomUsername(n int) string {
	if n <= 0 {
		n = 8
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = usernameAlphabet[rand.IntN(len(usernameAlphabet))]
	}
	return string(buf)
}
