package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestArenaNodesStayDistinct covers the basic arena contract: every
// New() call hands back a distinct, independently addressable Node,
// even across chunk boundaries.
func TestArenaNodesStayDistinct(t *testing.T) {
	a := NewArena()
	seen := make(map[*Node]bool)

	for i := 0; i < defaultChunkCap*3+7; i++ {
		n := a.New()
		n.kind = KindInteger
		n.ival = int64(i)
		require.False(t, seen[n], "arena handed out the same address twice at i=%d", i)
		seen[n] = true
	}
}

// TestArenaPreservesValuesAcrossAllocation covers the invariant that
// a chunk never reallocates once created, so earlier pointers stay
// valid and their contents stay stable as more nodes are allocated.
func TestArenaPreservesValuesAcrossAllocation(t *testing.T) {
	a := NewArena()

	first := a.New()
	first.kind = KindInteger
	first.ival = 42

	for i := 0; i < defaultChunkCap*2; i++ {
		a.New()
	}

	require.Equal(t, KindInteger, first.Kind())
	require.EqualValues(t, 42, first.ival)
}

// TestArenaLargeAllocationGetsOwnChunk covers the large-allocation path:
// a request at or past largeNodeThreshold gets a dedicated chunk.
func TestArenaLargeAllocationGetsOwnChunk(t *testing.T) {
	a := NewArena()
	a.New() // start a normal chunk

	before := len(a.chunks)
	large := a.alloc(largeNodeThreshold)
	require.Equal(t, before+1, len(a.chunks), "large allocation should get its own chunk")
	require.NotNil(t, large)
}
