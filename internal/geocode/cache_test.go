package geocode

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	addr  string
	err   error
	calls int
}

func (s *stubResolver) ReverseGeocode(_ context.Context, _, _ float64) (string, error) {
	s.calls++
	return s.addr, s.err
}

func TestCachedResolver_HitSkipsInner(t *testing.T) {
	stub := &stubResolver{addr: "Somewhere Bay"}
	c := NewCachedResolver(stub, 4)

	addr, err := c.ReverseGeocode(context.Background(), 10.0, 20.0)
	require.NoError(t, err)
	assert.Equal(t, "Somewhere Bay", addr)

	addr, err = c.ReverseGeocode(context.Background(), 10.0, 20.0)
	require.NoError(t, err)
	assert.Equal(t, "Somewhere Bay", addr)
	assert.Equal(t, 1, stub.calls)
}

func TestCachedResolver_EmptyResultNotCached(t *testing.T) {
	stub := &stubResolver{addr: ""}
	c := NewCachedResolver(stub, 4)

	_, err := c.ReverseGeocode(context.Background(), 0.0, -140.0)
	require.NoError(t, err)
	_, err = c.ReverseGeocode(context.Background(), 0.0, -140.0)
	require.NoError(t, err)
	assert.Equal(t, 2, stub.calls)
}

func TestCachedResolver_ErrorPassesThrough(t *testing.T) {
	stub := &stubResolver{err: errors.New("provider down")}
	c := NewCachedResolver(stub, 4)

	_, err := c.ReverseGeocode(context.Background(), 10.0, 20.0)
	assert.Error(t, err)
	_, err = c.ReverseGeocode(context.Background(), 10.0, 20.0)
	assert.Error(t, err)
	assert.Equal(t, 2, stub.calls)
}

func TestLRUCache_Eviction(t *testing.T) {
	c := newLRUCache(2)
	c.put("a", "addr-a")
	c.put("b", "addr-b")

	// Touch "a" so "b" is the eviction candidate.
	_, ok := c.get("a")
	require.True(t, ok)

	c.put("c", "addr-c")

	_, ok = c.get("b")
	assert.False(t, ok)
	got, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, "addr-a", got)
	got, ok = c.get("c")
	assert.True(t, ok)
	assert.Equal(t, "addr-c", got)
}
