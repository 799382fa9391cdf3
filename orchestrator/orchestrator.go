// Package orchestrator is the collaborator layer around the local-search
// core: parsing instances, seeding starting solutions, running the engine
// with a per-instance timeout, and fanning out across multiple instances in
// parallel while isolating each instance's failures from the rest of the
// batch.
package orchestrator

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"fortio.org/log"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/voronoi-steiner/stpg/instance"
	"github.com/voronoi-steiner/stpg/localsearch"
	"github.com/voronoi-steiner/stpg/startsol"
)

// Config holds the solve parameters that apply uniformly across a batch,
// mirroring the collaborator CLI surface.
type Config struct {
	Start     startsol.Algorithm
	Method    localsearch.Method
	EarlyStop bool
	Timeout   time.Duration // 0 disables
	Parallel  int           // 0 means errgroup runs every instance concurrently
}

// InstanceResult is the per-instance entry of the result JSON: weights[0] is
// the starting-solution weight, weights[i] (i>=1) is the post-epoch-i
// accepted weight.
type InstanceResult struct {
	Weights    []int64   `json:"weights"`
	EpochTimes []float64 `json:"epoch_times"`
	RunTime    float64   `json:"run_time"`
}

// InstanceSource supplies one instance's raw text by id, decoupling the
// orchestrator from any particular storage layout (filesystem, embedded
// fixtures, a fetch-on-demand cache).
type InstanceSource interface {
	Open(id int) (*os.File, error)
}

// DirSource locates instance files as "<Dir>/instance<id zero-padded to 3
// digits>.gr", matching the collaborator's on-disk layout.
type DirSource struct {
	Dir string
}

// Open implements InstanceSource.
func (d DirSource) Open(id int) (*os.File, error) {
	return os.Open(fmt.Sprintf("%s/instance%03d.gr", d.Dir, id))
}

// Solve runs the full pipeline for a single instance: parse, seed, engine,
// trace. It never panics on malformed input or an unreachable starting
// solution — those surface as a returned error so the caller can log and
// skip the instance without aborting the rest of a batch.
func Solve(ctx context.Context, src InstanceSource, id int, cfg Config) (InstanceResult, error) {
	start := time.Now()

	f, err := src.Open(id)
	if err != nil {
		return InstanceResult{}, fmt.Errorf("orchestrator: open instance %d: %w", id, err)
	}
	defer f.Close()

	inst, err := instance.Parse(f)
	if err != nil {
		return InstanceResult{}, fmt.Errorf("orchestrator: parse instance %d: %w", id, err)
	}

	s0, err := startsol.Build(cfg.Start, inst.Graph, inst.Terminals)
	if err != nil {
		return InstanceResult{}, fmt.Errorf("orchestrator: starting solution for instance %d: %w", id, err)
	}

	runCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	_, trace := localsearch.Run(runCtx, inst.Graph, s0, inst.Terminals,
		localsearch.WithMethod(cfg.Method),
		localsearch.WithEarlyStop(cfg.EarlyStop),
	)

	return InstanceResult{
		Weights:    trace.Weights,
		EpochTimes: trace.EpochTimes,
		RunTime:    time.Since(start).Seconds(),
	}, nil
}

// SolveBatch runs Solve over every id in ids, bounded to cfg.Parallel
// concurrent instances (0 leaves the errgroup without a limit, so every
// instance runs concurrently). A failure
// on one instance is logged and recorded in the returned error via
// multierror.Append; every other instance still completes and is present in
// the results map.
func SolveBatch(ctx context.Context, src InstanceSource, ids []int, cfg Config) (map[int]InstanceResult, error) {
	results := make(map[int]InstanceResult)
	var mu sync.Mutex
	var errs error

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Parallel > 0 {
		g.SetLimit(cfg.Parallel)
	}

	for _, id := range ids {
		id := id
		g.Go(func() error {
			res, err := Solve(gctx, src, id, cfg)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Errf("instance %d failed: %v", id, err)
				errs = multierror.Append(errs, err)
				return nil // isolate: one instance's failure never cancels the batch
			}
			results[id] = res
			log.Infof("instance %d done: weight=%d run_time=%.3fs", id, lastWeight(res.Weights), res.RunTime)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, errs
}

func lastWeight(weights []int64) int64 {
	if len(weights) == 0 {
		return 0
	}
	return weights[len(weights)-1]
}
