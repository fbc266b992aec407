package helpers

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Recovery code helpers

const recoveryAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenRecoveryCode returns a random code shaped XXXXX-XXXXX
func GenRecoveryCode() (string, error) {
	max := big.NewInt(int64(len(recoveryAlphabet)))
	b := make([]byte, 10)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = recoveryAlphabet[n.Int64()]
	}
	return fmt.Sprintf("%s-%s", b[:5], b[5:]), nil
}

// GenRecoveryCodes generates n distinct recovery codes.
func GenRecoveryCodes(n int) ([]string, error) {
	codes := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for len(codes) < n {
		code, err := GenRecoveryCode()
		if err != nil {
			return nil, err
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes, nil
}
