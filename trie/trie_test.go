package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndContains(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Insert("ATG"))
	require.NoError(t, tr.Insert("AT"))
	require.NoError(t, tr.Insert("GCG"))

	assert.True(t, tr.Contains("ATG"))
	assert.True(t, tr.Contains("AT"))
	assert.True(t, tr.Contains("GCG"))

	// Prefixes of markers are not markers themselves.
	assert.False(t, tr.Contains("A"))
	assert.False(t, tr.Contains("GC"))
	assert.False(t, tr.Contains(""))
	assert.False(t, tr.Contains("ATGC"))
}

func TestInsertEmptyMarker(t *testing.T) {
	tr := New()
	err := tr.Insert("")
	require.ErrorIs(t, err, ErrEmptyMarker)
	assert.Equal(t, 0, tr.Size())
}

func TestInsertIdempotent(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Insert("ACG"))
	require.NoError(t, tr.Insert("ACG"))
	assert.Equal(t, 1, tr.Size())
}

func TestBuild(t *testing.T) {
	t.Run("DuplicatesCollapse", func(t *testing.T) {
		tr, err := Build([]string{"A", "CG", "A", "GT"})
		require.NoError(t, err)
		assert.Equal(t, 3, tr.Size())
	})

	t.Run("EmptyMarkerRejected", func(t *testing.T) {
		_, err := Build([]string{"A", ""})
		require.ErrorIs(t, err, ErrEmptyMarker)
	})

	t.Run("EmptySet", func(t *testing.T) {
		tr, err := Build(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, tr.Size())
		assert.NotNil(t, tr.Root())
	})
}

func TestWalkStopsAtMissingChild(t *testing.T) {
	tr, err := Build([]string{"ACG", "AA"})
	require.NoError(t, err)

	node := tr.Root()
	node = node.Child('A')
	require.NotNil(t, node)
	assert.False(t, node.Terminal())

	// No marker has the prefix "AT", so the walk must stop here.
	assert.Nil(t, node.Child('T'))

	node = node.Child('C')
	require.NotNil(t, node)
	node = node.Child('G')
	require.NotNil(t, node)
	assert.True(t, node.Terminal())
}

func TestSharedPrefixesShareNodes(t *testing.T) {
	tr, err := Build([]string{"ATG", "ATC"})
	require.NoError(t, err)

	a := tr.Root().Child('A')
	require.NotNil(t, a)
	at := a.Child('T')
	require.NotNil(t, at)
	assert.NotNil(t, at.Child('G'))
	assert.NotNil(t, at.Child('C'))
}
