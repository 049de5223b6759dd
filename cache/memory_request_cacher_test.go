package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ RequestCacher = (*MemoryRequestCacher)(nil)
	_ RequestCacher = (*RedisRequestCacher)(nil)
)

func TestMemoryRequestCacher_KeepsNewestFirst(t *testing.T) {
	cacher := CreateMemoryCache(3)
	for _, v := range []string{"a", "b", "c", "d"} {
		require.NoError(t, cacher.Write("alice", []byte(v)))
	}

	got, err := cacher.Read("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b"}, got)
}

func TestMemoryRequestCacher_KeysAreIndependent(t *testing.T) {
	cacher := CreateMemoryCache(3)
	require.NoError(t, cacher.Write("alice", []byte("a")))

	got, err := cacher.Read("bob")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryRequestCacher_ReadReturnsCopy(t *testing.T) {
	cacher := CreateMemoryCache(3)
	require.NoError(t, cacher.Write("alice", []byte("a")))

	got, _ := cacher.Read("alice")
	got[0] = "changed"

	again, _ := cacher.Read("alice")
	assert.Equal(t, []string{"a"}, again)
}
