package cryptox_test

import (
	"regexp"
	"testing"

	"github.com/bagelsfordinner/Babyhub/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateInviteCodeShape(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{6}$`)

	for range 100 {
		code, err := cryptox.GenerateInviteCode()
		require.NoError(t, err)
		require.Regexp(t, pattern, code)
	}
}

func TestGenerateCodeLengths(t *testing.T) {
	for _, n := range []int{1, 6, 32} {
		code, err := cryptox.GenerateCode(n)
		require.NoError(t, err)
		require.Len(t, code, n)
	}
}

func TestGenerateCodeRejectsNonPositive(t *testing.T) {
	_, err := cryptox.GenerateCode(0)
	require.Error(t, err)

	_, err = cryptox.GenerateCode(-3)
	require.Error(t, err)
}

func TestGenerateCodeSpread(t *testing.T) {
	// Not a statistical test, just a sanity check that we don't return the
	// same code over and over.
	seen := make(map[string]struct{})
	for range 50 {
		code, err := cryptox.GenerateInviteCode()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	require.Greater(t, len(seen), 45)
}
