// Package localsearch composes the four neighborhoods (Steiner-vertex
// insertion/elimination, key-path exchange, key-vertex elimination) into the
// epoch loop that drives a starting solution down to a local optimum. The
// loop is strictly single-threaded and synchronous: no shared mutable
// state, no suspension points inside an epoch, so a single instance's
// search can be safely run on its own goroutine by the orchestrator
// alongside any number of others.
package localsearch

import (
	"context"
	"time"

	"github.com/voronoi-steiner/stpg/core"
	"github.com/voronoi-steiner/stpg/keypath"
	"github.com/voronoi-steiner/stpg/keyvertex"
	"github.com/voronoi-steiner/stpg/steinerv"
)

// Method selects one of the two local-search compositions.
type Method int

const (
	// MethodSV runs eliminate then insert each epoch.
	MethodSV Method = iota
	// MethodKV runs insert, then key-vertex elimination, then key-path
	// exchange each epoch.
	MethodKV
)

// Options configures a Run invocation via the functional-options pattern.
type Options struct {
	method    Method
	earlyStop bool
}

// Option mutates an Options value.
type Option func(*Options)

// WithMethod selects the composition variant. Default MethodKV.
func WithMethod(m Method) Option { return func(o *Options) { o.method = m } }

// WithEarlyStop toggles early-stop behavior inside each neighborhood move.
// Default true.
func WithEarlyStop(v bool) Option { return func(o *Options) { o.earlyStop = v } }

// Trace records the per-epoch weight and wall-clock duration of a Run.
type Trace struct {
	// Weights holds the starting weight followed by the weight after each
	// accepted (improving) epoch.
	Weights []int64
	// EpochTimes holds the duration of each accepted epoch, in seconds; the
	// final epoch that found no improvement is not recorded.
	EpochTimes []float64
}

// Run drives s0 through repeated epochs of the selected composition until
// no epoch improves weight or the deadline (if set) is reached at an epoch
// boundary. It returns the final accepted solution and the epoch trace; the
// post-condition at every return point is that the returned tree is a valid
// Steiner tree (core.Tree invariants plus the pruned-leaves/terminal
// coverage properties treeops.PruneTree restores after every move).
func Run(ctx context.Context, g *core.Graph, s0 *core.Tree, terminals map[int]bool, opts ...Option) (*core.Tree, Trace) {
	o := Options{method: MethodKV, earlyStop: true}
	for _, opt := range opts {
		opt(&o)
	}

	s := s0
	trace := Trace{Weights: []int64{s.Weight()}}

	for {
		select {
		case <-ctx.Done():
			return s, trace
		default:
		}

		start := time.Now()
		next := compose(g, s, terminals, o.method, o.earlyStop)
		elapsed := time.Since(start).Seconds()

		if next.Weight() < s.Weight() {
			s = next
			trace.Weights = append(trace.Weights, s.Weight())
			trace.EpochTimes = append(trace.EpochTimes, elapsed)
			continue
		}
		break
	}

	return s, trace
}

func compose(g *core.Graph, s *core.Tree, terminals map[int]bool, method Method, earlyStop bool) *core.Tree {
	switch method {
	case MethodSV:
		s = steinerv.Eliminate(g, s, terminals, earlyStop)
		s = steinerv.Insert(g, s, terminals, earlyStop)
	default: // MethodKV
		s = steinerv.Insert(g, s, terminals, earlyStop)
		s = keyvertex.Eliminate(g, s, terminals, earlyStop)
		s = keypath.Exchange(g, s, terminals, earlyStop)
	}
	return s
}
