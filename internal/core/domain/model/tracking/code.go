package tracking

import "math/rand/v2"

const (
	// ShareCodeLength is the fixed length of every share code.
	ShareCodeLength = 6

	// shareCodeAlphabet is the 32-symbol uppercase alphabet used for share
	// codes. I, O, 0 and 1 are excluded because they are easy to misread.
	shareCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// GenerateShareCode returns a random 6-character share code.
// Collisions are possible and deliberately not retried; the resolve path
// simply matches the first active row for a code.
func GenerateShareCode() string {
	code := make([]byte, ShareCodeLength)
	for i := range code {
		code[i] = shareCodeAlphabet[rand.IntN(len(shareCodeAlphabet))]
	}
	return string(code)
}
