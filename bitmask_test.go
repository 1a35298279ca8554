package sekai

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestBitmaskSetUnset$ . -count 1
func TestBitmaskSetUnset(t *testing.T) {
	var m bitmask256
	for _, b := range []uint8{0, 63, 64, 127, 128, 255} {
		assert.False(t, m.set(b))
		assert.True(t, m.set(b))
		assert.True(t, m.containsBit(b))
	}
	assert.Equal(t, 6, m.count())
	assert.True(t, m.unset(64))
	assert.False(t, m.unset(64))
	assert.False(t, m.containsBit(64))
	assert.False(t, m.isEmpty())
}

// go test -run ^TestBitmaskPopOrder$ . -count 1
func TestBitmaskPopOrder(t *testing.T) {
	var m bitmask256
	for _, b := range []uint8{200, 3, 64, 130, 0} {
		m.set(b)
	}
	first, ok := m.first()
	require.True(t, ok)
	assert.Equal(t, 0, first)
	assert.Equal(t, 5, m.count(), "first must not consume")

	var got []int
	for b, ok := m.pop(); ok; b, ok = m.pop() {
		got = append(got, b)
	}
	assert.Equal(t, []int{0, 3, 64, 130, 200}, got)
	assert.True(t, m.isEmpty())

	m.set(9)
	m.set(250)
	var each []int
	m.forEach(func(b int) { each = append(each, b) })
	assert.Equal(t, []int{9, 250}, each)
}

// go test -run ^TestBitmaskAnd$ . -count 1
func TestBitmaskAnd(t *testing.T) {
	a := bitmask256{0b1011, 0, ^uint64(0), 1 << 63}
	b := bitmask256{0b0110, 7, 0xff, 1 << 63}
	assert.Equal(t, bitmask256{0b0010, 0, 0xff, 1 << 63}, a.and(b))
}

// go test -run ^TestBitmaskFreeLink$ . -count 1
func TestBitmaskFreeLink(t *testing.T) {
	var m bitmask256
	m.setNext(42)
	assert.Equal(t, uint64(42), m.takeNext())
	assert.True(t, m.isEmpty())
}

// go test -run ^TestKernelsAgree$ . -count 1
func TestKernelsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for n := 0; n < 1000; n++ {
		m := bitmask256{rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64()}
		if n%4 == 0 {
			m[n%3] = 0
		}
		require.Equal(t, countPopcnt(&m), countGeneric(&m), "lanes %x", m)
		require.Equal(t, emptyGeneric(&m), m == bitmask256{})
	}
	full := bitmask256{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
	assert.Equal(t, 256, countGeneric(&full))
	assert.Equal(t, 256, countPopcnt(&full))
	assert.NotEmpty(t, Kernel())
}
