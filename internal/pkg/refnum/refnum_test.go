package refnum

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Format(t *testing.T) {
	num, err := Generate(context.Background(), func(ctx context.Context, number string) (bool, error) {
		return false, nil
	})
	require.NoError(t, err)
	require.Len(t, num, Length)
	for _, r := range num {
		assert.GreaterOrEqual(t, r, '0')
		assert.LessOrEqual(t, r, '8')
	}
}

func TestGenerate_RetriesOnCollision(t *testing.T) {
	calls := 0
	num, err := Generate(context.Background(), func(ctx context.Context, number string) (bool, error) {
		calls++
		return calls < 3, nil
	})
	require.NoError(t, err)
	assert.Len(t, num, Length)
	assert.Equal(t, 3, calls)
}

func TestGenerate_ExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := Generate(context.Background(), func(ctx context.Context, number string) (bool, error) {
		calls++
		return true, nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to generate a unique reference number")
	assert.Equal(t, 5, calls)
}

func TestGenerate_PropagatesCheckError(t *testing.T) {
	boom := errors.New("connection reset")
	_, err := Generate(context.Background(), func(ctx context.Context, number string) (bool, error) {
		return false, boom
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
