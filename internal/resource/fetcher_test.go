package resource

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyunja/fity-cli/internal/common"
)

func TestFetcherLifecycle(t *testing.T) {
	f := NewFetcher(func(context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})

	assert.Equal(t, StateIdle, f.State())
	assert.True(t, f.Auto)
	_, ok := f.Data()
	assert.False(t, ok)

	f.Fetch(context.Background())

	assert.Equal(t, StateSuccess, f.State())
	assert.False(t, f.Loading())
	data, ok := f.Data()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, data)
	assert.Empty(t, f.Err())
}

func TestFetcherError(t *testing.T) {
	f := NewFetcher(func(context.Context) (int, error) {
		return 0, common.ErrNetwork
	})

	f.Fetch(context.Background())

	assert.Equal(t, StateError, f.State())
	assert.Equal(t, "Network error. Please try again.", f.Err())
	_, ok := f.Data()
	assert.False(t, ok)
}

func TestFetcherKeepsDataAfterFailedRefetch(t *testing.T) {
	calls := 0
	f := NewFetcher(func(context.Context) (int, error) {
		calls++
		if calls > 1 {
			return 0, errors.New("boom")
		}
		return 42, nil
	})

	f.Fetch(context.Background())
	f.Fetch(context.Background())

	// The refetch failed but the earlier payload stays visible.
	assert.Equal(t, StateError, f.State())
	data, ok := f.Data()
	require.True(t, ok)
	assert.Equal(t, 42, data)
	assert.Equal(t, "An error occurred", f.Err())
}

func TestFetcherErrorClearsOnRefetch(t *testing.T) {
	calls := 0
	f := NewFetcher(func(context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("boom")
		}
		return 7, nil
	})

	f.Fetch(context.Background())
	require.Equal(t, StateError, f.State())

	f.Fetch(context.Background())
	assert.Equal(t, StateSuccess, f.State())
	assert.Empty(t, f.Err())
	data, _ := f.Data()
	assert.Equal(t, 7, data)
}
