package sekai

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// System is a unit of work over a declared set of columns.
type System struct {
	Name   string
	Access Access
	Run    func(ctx context.Context) error
}

// Run executes fn while holding the borrows described by access. With
// checked access enabled, it fails with ErrAccessConflict, without calling
// fn, if any of those columns is already borrowed in a conflicting way.
func (w *World) Run(access Access, fn func() error) error {
	return w.run(context.Background(), "", access, fn)
}

func (w *World) run(ctx context.Context, name string, access Access, fn func() error) error {
	if w.opts.checked {
		release, err := access.acquire()
		if err != nil {
			w.log.LogConflict(ctx, name, err)
			return err
		}
		defer release()
	}
	return fn()
}

// RunParallel executes systems in stages. Systems keep their relative order
// whenever their accesses conflict; systems that touch disjoint columns are
// placed in the same stage and run concurrently. A failing system cancels
// the context of its stage and stops later stages from starting.
func (w *World) RunParallel(ctx context.Context, systems ...System) error {
	for k, stage := range planStages(systems) {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.log.LogStage(ctx, k, stageNames(stage))
		g, gctx := errgroup.WithContext(ctx)
		if w.opts.workers > 0 {
			g.SetLimit(w.opts.workers)
		}
		for _, s := range stage {
			g.Go(func() error {
				err := w.run(gctx, s.Name, s.Access, func() error {
					return s.Run(gctx)
				})
				return errors.Wrapf(err, "system %s", s.Name)
			})
		}
		if err := g.Wait(); err != nil {
			return errors.Wrapf(err, "sekai: stage %d", k)
		}
	}
	return nil
}

// planStages places each system in the stage right after the last stage
// holding a system it conflicts with.
func planStages(systems []System) [][]System {
	var stages [][]System
	for _, s := range systems {
		at := 0
		for k := len(stages) - 1; k >= 0; k-- {
			if conflictsAny(s, stages[k]) {
				at = k + 1
				break
			}
		}
		if at == len(stages) {
			stages = append(stages, nil)
		}
		stages[at] = append(stages[at], s)
	}
	return stages
}

func conflictsAny(s System, stage []System) bool {
	for _, o := range stage {
		if s.Access.Conflicts(o.Access) {
			return true
		}
	}
	return false
}

func stageNames(stage []System) []string {
	names := make([]string, len(stage))
	for i, s := range stage {
		names[i] = s.Name
		if names[i] == "" {
			names[i] = fmt.Sprintf("#%d", i)
		}
	}
	return names
}
