package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string
	Count int
}

func TestMemoryCache_SetGet(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := NewMemoryCache(ctx)

	require.NoError(t, c.Set(ctx, "jobs:newest", sample{Name: "a", Count: 2}, time.Minute))

	var got sample
	found, err := c.Get(ctx, "jobs:newest", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sample{Name: "a", Count: 2}, got)
}

func TestMemoryCache_Expired(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := NewMemoryCache(ctx)

	require.NoError(t, c.Set(ctx, "k", 1, -time.Second))

	var got int
	found, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	c.removeExpired(time.Now())
	assert.Empty(t, c.entries)
}

func TestMemoryCache_InvalidateByPrefix(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := NewMemoryCache(ctx)

	require.NoError(t, c.Set(ctx, NewestJobsKey, 1, time.Minute))
	require.NoError(t, c.Set(ctx, TopFreelancersKey, 2, time.Minute))
	require.NoError(t, c.Set(ctx, "other", 3, time.Minute))

	require.NoError(t, c.InvalidateByPrefix(ctx, JobsPrefix))

	var v int
	found, _ := c.Get(ctx, NewestJobsKey, &v)
	assert.False(t, found)
	found, _ = c.Get(ctx, "other", &v)
	assert.True(t, found)
}

func TestGetOrSet_ComputesOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := NewMemoryCache(ctx)

	calls := 0
	compute := func() ([]string, error) {
		calls++
		return []string{"x"}, nil
	}

	first, err := GetOrSet(ctx, c, "k", time.Minute, compute)
	require.NoError(t, err)
	second, err := GetOrSet(ctx, c, "k", time.Minute, compute)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestGetOrSet_NilCacheAndErrors(t *testing.T) {
	ctx := context.Background()

	v, err := GetOrSet[int](ctx, nil, "k", time.Minute, func() (int, error) { return 5, nil })
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	boom := errors.New("boom")
	_, err = GetOrSet[int](ctx, nil, "k", time.Minute, func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
}
