// Package refnum generates short numeric reference numbers for tickets
// and tasks.
package refnum

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Length is the number of digits in a reference number.
	Length = 8
	// maxAttempts bounds the retry loop against the uniqueness check so a
	// saturated number space fails loudly instead of spinning forever.
	maxAttempts = 5
)

// digitBound is exclusive, so each digit is drawn from 0..8.
var digitBound = big.NewInt(9)

// ExistsFunc reports whether a candidate number is already taken.
type ExistsFunc func(ctx context.Context, number string) (bool, error)

// Generate produces a random 8-digit reference number that does not
// collide with an existing one according to exists. It gives up after a
// bounded number of attempts.
func Generate(ctx context.Context, exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate, err := random()
		if err != nil {
			return "", fmt.Errorf("failed to generate reference number: %w", err)
		}
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check reference number uniqueness: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("unable to generate a unique reference number after %d attempts", maxAttempts)
}

func random() (string, error) {
	buf := make([]byte, Length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, digitBound)
		if err != nil {
			return "", err
		}
		buf[i] = byte('0' + n.Int64())
	}
	return string(buf), nil
}
