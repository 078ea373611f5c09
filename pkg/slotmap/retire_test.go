// pkg/slotmap/retire_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test that slots are retired when their generation is exhausted

package slotmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveRetiresExhaustedSlot(t *testing.T) {
	var m Map[string]
	old := m.Insert("a")
	m.slots[old.index].generation = math.MaxUint32
	last := Key{index: old.index, generation: math.MaxUint32}

	_, ok := m.Remove(last)
	require.True(t, ok)
	assert.Empty(t, m.free, "exhausted slot is not reused")

	fresh := m.Insert("b")
	assert.NotEqual(t, old.index, fresh.index)
	assert.False(t, m.Contains(old))
	assert.False(t, m.Contains(last))
	assert.False(t, m.Contains(Key{index: old.index, generation: 1}))

	v, ok := m.Get(fresh)
	require.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []Key{fresh}, m.Keys())
}
