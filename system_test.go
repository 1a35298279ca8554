package sekai_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/edwinsyarief/sekai"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestAccessConflicts$ . -count 1
func TestAccessConflicts(t *testing.T) {
	_, pos, vel := setupWorld(t)

	assert.False(t, sekai.Reads(pos).Conflicts(sekai.Reads(pos)))
	assert.True(t, sekai.Writes(pos).Conflicts(sekai.Reads(pos)))
	assert.True(t, sekai.Reads(pos).Conflicts(sekai.Writes(pos)))
	assert.True(t, sekai.Writes(pos).Conflicts(sekai.Writes(pos)))
	assert.False(t, sekai.Writes(pos).Conflicts(sekai.Writes(vel)))
	assert.False(t, sekai.Writes(pos).Read(vel).Conflicts(sekai.Reads(vel)))
	assert.True(t, sekai.Reads(pos).Write(vel).Conflicts(sekai.Reads(vel)))
}

// go test -run ^TestRunChecked$ . -count 1
func TestRunChecked(t *testing.T) {
	w, pos, vel := setupWorld(t)

	err := w.Run(sekai.Writes(pos), func() error {
		inner := w.Run(sekai.Reads(pos), func() error {
			t.Fatal("conflicting work must not run")
			return nil
		})
		assert.ErrorIs(t, inner, sekai.ErrAccessConflict)
		return w.Run(sekai.Writes(vel), func() error { return nil })
	})
	require.NoError(t, err, "disjoint columns may be borrowed together")

	err = w.Run(sekai.Reads(pos), func() error {
		return w.Run(sekai.Reads(pos).Write(vel), func() error { return nil })
	})
	require.NoError(t, err, "shared reads do not conflict")

	err = w.Run(sekai.Writes(pos).Read(pos), func() error { return nil })
	assert.ErrorIs(t, err, sekai.ErrAccessConflict, "reading and writing one column in one access")

	// Borrows are released afterwards.
	require.NoError(t, w.Run(sekai.Writes(pos, vel), func() error { return nil }))

	boom := errors.New("boom")
	assert.Equal(t, boom, w.Run(sekai.Reads(pos), func() error { return boom }))
}

// go test -run ^TestRunUnchecked$ . -count 1
func TestRunUnchecked(t *testing.T) {
	w, pos, _ := setupWorld(t, sekai.WithCheckedAccess(false))
	ran := false
	err := w.Run(sekai.Writes(pos), func() error {
		return w.Run(sekai.Writes(pos), func() error {
			ran = true
			return nil
		})
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

// go test -run ^TestRunParallelStages$ . -count 1
func TestRunParallelStages(t *testing.T) {
	w, pos, vel := setupWorld(t)
	for range 1000 {
		_, i := w.Spawn()
		pos.Insert(i, Position{})
		vel.Insert(i, Velocity{VX: 1, VY: 2})
	}
	health := sekai.NewColumn[Health](w)

	var mu sync.Mutex
	var order []string
	mark := func(name string) {
		mu.Lock()
		order = append(order, name)
		mu.Unlock()
	}

	move := sekai.System{
		Name:   "move",
		Access: sekai.Writes(pos).Read(vel),
		Run: func(context.Context) error {
			q, err := sekai.NewQuery2[Position, Velocity](pos, vel)
			if err != nil {
				return err
			}
			q.Each(func(_ sekai.Index, p *Position, v *Velocity) {
				p.X += v.VX
				p.Y += v.VY
			})
			mark("move")
			return nil
		},
	}
	heal := sekai.System{
		Name:   "heal",
		Access: sekai.Writes(health),
		Run: func(context.Context) error {
			mark("heal")
			return nil
		},
	}
	check := sekai.System{
		Name:   "check",
		Access: sekai.Reads(pos),
		Run: func(context.Context) error {
			pos.Each(func(_ sekai.Index, p *Position) {
				assert.Equal(t, Position{X: 1, Y: 2}, *p)
			})
			mark("check")
			return nil
		},
	}

	require.NoError(t, w.RunParallel(context.Background(), move, heal, check))
	require.Len(t, order, 3)
	assert.Equal(t, "check", order[2], "check reads what move writes and runs in a later stage")
}

// go test -run ^TestRunParallelConcurrent$ . -count 1
func TestRunParallelConcurrent(t *testing.T) {
	w, pos, vel := setupWorld(t, sekai.WithWorkers(2))

	// Both systems wait for each other, so they only finish if they share a stage.
	var wg sync.WaitGroup
	wg.Add(2)
	meet := func(context.Context) error {
		wg.Done()
		wg.Wait()
		return nil
	}
	err := w.RunParallel(context.Background(),
		sekai.System{Name: "a", Access: sekai.Writes(pos), Run: meet},
		sekai.System{Name: "b", Access: sekai.Writes(vel), Run: meet},
	)
	require.NoError(t, err)
}

// go test -run ^TestRunParallelError$ . -count 1
func TestRunParallelError(t *testing.T) {
	w, pos, _ := setupWorld(t)
	boom := errors.New("boom")
	var later atomic.Bool

	err := w.RunParallel(context.Background(),
		sekai.System{Name: "fail", Access: sekai.Writes(pos), Run: func(context.Context) error { return boom }},
		sekai.System{Name: "later", Access: sekai.Reads(pos), Run: func(context.Context) error {
			later.Store(true)
			return nil
		}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "stage 0")
	assert.Contains(t, err.Error(), "system fail")
	assert.False(t, later.Load(), "stages after a failure must not start")
}

// go test -run ^TestRunParallelCanceled$ . -count 1
func TestRunParallelCanceled(t *testing.T) {
	w, pos, _ := setupWorld(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := w.RunParallel(ctx, sekai.System{Name: "x", Access: sekai.Reads(pos), Run: func(context.Context) error {
		ran = true
		return nil
	}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran)
}

// go test -run ^TestRunParallelBorrowedElsewhere$ . -count 1
func TestRunParallelBorrowedElsewhere(t *testing.T) {
	w, pos, _ := setupWorld(t)
	err := w.Run(sekai.Writes(pos), func() error {
		return w.RunParallel(context.Background(), sekai.System{
			Name:   "reader",
			Access: sekai.Reads(pos),
			Run:    func(context.Context) error { return nil },
		})
	})
	assert.ErrorIs(t, err, sekai.ErrAccessConflict)
}
