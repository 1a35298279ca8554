package sekai_test

import (
	"testing"

	"github.com/edwinsyarief/sekai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test Components ---
type Position struct{ X, Y float32 }
type Velocity struct{ VX, VY float32 }
type Health struct{ Current, Max int }
type Tag struct{}

// go test -run ^TestColumnInsertGetRemove$ . -count 1
func TestColumnInsertGetRemove(t *testing.T) {
	c := sekai.NewDetachedColumn[Position](1024)

	_, replaced := c.Insert(5, Position{X: 1, Y: 2})
	assert.False(t, replaced)
	got, ok := c.Get(5)
	require.True(t, ok)
	assert.Equal(t, Position{X: 1, Y: 2}, got)
	assert.True(t, c.Has(5))
	assert.Equal(t, 1, c.Len())

	old, replaced := c.Insert(5, Position{X: 3, Y: 4})
	assert.True(t, replaced)
	assert.Equal(t, Position{X: 1, Y: 2}, old)

	p := c.GetMut(5)
	require.NotNil(t, p)
	p.X = 9
	got, _ = c.Get(5)
	assert.Equal(t, Position{X: 9, Y: 4}, got)

	v, ok := c.Remove(5)
	assert.True(t, ok)
	assert.Equal(t, Position{X: 9, Y: 4}, v)
	_, ok = c.Remove(5)
	assert.False(t, ok)
	_, ok = c.Get(5)
	assert.False(t, ok)
	assert.Nil(t, c.GetMut(5))
	assert.Zero(t, c.Len())
}

// go test -run ^TestColumnReinsertAfterRemove$ . -count 1
func TestColumnReinsertAfterRemove(t *testing.T) {
	c := sekai.NewDetachedColumn[Health](64)
	c.Insert(3, Health{Current: 5, Max: 10})
	c.Remove(3)
	_, replaced := c.Insert(3, Health{Current: 1, Max: 1})
	assert.False(t, replaced, "removed slot must not report a previous value")
	got, _ := c.Get(3)
	assert.Equal(t, Health{Current: 1, Max: 1}, got)
}

// go test -run ^TestColumnDomain$ . -count 1
func TestColumnDomain(t *testing.T) {
	c := sekai.NewDetachedColumn[Tag](100)
	assert.Equal(t, 100, c.Domain())
	assert.Equal(t, 100, c.Mask().Capacity())

	assert.Panics(t, func() { c.Insert(100, Tag{}) })
	assert.Zero(t, c.Len(), "failed insert must not mutate")
	_, ok := c.Get(100)
	assert.False(t, ok)

	var zero sekai.Column[Tag]
	assert.Equal(t, sekai.MaxSlots, zero.Domain())
}

// go test -run ^TestColumnEachAndClear$ . -count 1
func TestColumnEachAndClear(t *testing.T) {
	c := sekai.NewDetachedColumn[int](1 << 20)
	for _, i := range []sekai.Index{700000, 2, 300} {
		c.Insert(i, int(i))
	}
	var order []sekai.Index
	c.Each(func(i sekai.Index, v *int) {
		order = append(order, i)
		assert.Equal(t, int(i), *v)
		*v = -*v
	})
	assert.Equal(t, []sekai.Index{2, 300, 700000}, order)
	v, _ := c.Get(300)
	assert.Equal(t, -300, v)

	c.Clear()
	assert.Zero(t, c.Len())
	assert.False(t, c.Has(2))
	assert.True(t, c.Mask().IsEmpty())
}
