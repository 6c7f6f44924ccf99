// Package cryptox holds the small crypto helpers the hub needs. Credential
// handling lives with the identity provider, so this is only random code
// generation.
package cryptox

import (
	"crypto/rand"
	"fmt"
)

// CodeAlphabet is the character set invite codes draw from: uppercase
// letters plus digits, 36 symbols. Codes are meant to be read over the
// phone and typed by hand.
const CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// InviteCodeLength is the fixed length of generated invite codes.
// 36^6 ≈ 2.2e9 possibilities, plenty for a family site while staying
// human-enterable.
const InviteCodeLength = 6

// GenerateCode returns a random string of length n drawn uniformly from
// CodeAlphabet. Rejection sampling keeps the distribution uniform.
func GenerateCode(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("code length must be positive, got %d", n)
	}

	// 252 is the largest multiple of 36 below 256; bytes at or above it
	// would bias the low end of the alphabet and are redrawn.
	const maxUnbiased = byte(252)

	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if b >= maxUnbiased {
				continue
			}
			out = append(out, CodeAlphabet[int(b)%len(CodeAlphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}

// GenerateInviteCode returns a fresh candidate invite code of the standard
// length. Uniqueness is the store's job (UNIQUE index), not ours.
func GenerateInviteCode() (string, error) {
	return GenerateCode(InviteCodeLength)
}
