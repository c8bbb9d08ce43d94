package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// With no Redis client the cache degrades to a no-op: every Get misses
// and Remember always runs fill.
func TestNoopWithoutClient(t *testing.T) {
	prev := RDB
	RDB = nil
	t.Cleanup(func() { RDB = prev })

	var dest string
	assert.False(t, Get("some:key", &dest))
	assert.NoError(t, Set("some:key", "value", time.Minute))
	assert.NoError(t, Del("some:key"))
}

func TestRememberRunsFill(t *testing.T) {
	prev := RDB
	RDB = nil
	t.Cleanup(func() { RDB = prev })

	calls := 0
	var dest []string
	err := Remember("reports:test", time.Minute, &dest, func() error {
		calls++
		dest = append(dest, "filled")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"filled"}, dest)
}

func TestRememberPropagatesFillError(t *testing.T) {
	prev := RDB
	RDB = nil
	t.Cleanup(func() { RDB = prev })

	boom := errors.New("boom")
	var dest int
	err := Remember("reports:test", time.Minute, &dest, func() error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}
