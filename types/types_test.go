package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeKey(t *testing.T) {
	{ // Keys ignore direction
		assert.Equal(t, NewEdgeKey(4, 0), NewEdgeKey(0, 4))
		lo, hi := NewEdgeKey(100001, 100).Nodes()
		assert.Equal(t, 100, lo)
		assert.Equal(t, 100001, hi)
		assert.Equal(t, "100-100001", NewEdgeKey(100001, 100).String())
	}
	{ // Keys sort by the higher node, then the lower
		assert.Less(t, NewEdgeKey(5, 1), NewEdgeKey(0, 2))
		assert.Less(t, NewEdgeKey(0, 2), NewEdgeKey(1, 2))
	}
	{ // Limits
		lo, hi := NewEdgeKey(1<<32-1, 7).Nodes()
		assert.Equal(t, 7, lo)
		assert.Equal(t, 1<<32-1, hi)
		assert.Panics(t, func() { NewEdgeKey(-1, 2) })
		assert.Panics(t, func() { NewEdgeKey(1, 1<<32) })
	}
}

func TestEdge(t *testing.T) {
	e := Edge{From: 9, To: 2}
	assert.Equal(t, NewEdgeKey(2, 9), e.Key())
	assert.Equal(t, Edge{From: 2, To: 9}.Key(), e.Key())
	assert.Equal(t, "9->2", e.String())
}
