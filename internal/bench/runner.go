package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/constraints"

	ordered "github.com/absolutelightning/go-ordered-trees"
)

const (
	PhaseInsert = "insert"
	PhaseLookup = "lookup"
	PhaseDelete = "delete"
)

// Result is the outcome of one phase against one tree.
type Result struct {
	Tree     string
	Phase    string
	Ops      int
	Duration time.Duration
	Len      int
	Height   int
}

type Runner struct {
	cfg     Config
	logger  *slog.Logger
	metrics *Metrics
}

// NewRunner validates cfg. metrics may be nil.
func NewRunner(cfg Config, logger *slog.Logger, metrics *Metrics) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, logger: logger, metrics: metrics}, nil
}

// Run inserts, looks up and deletes the whole dataset in every selected
// tree, in that order, and reports one Result per phase.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	switch r.cfg.Keys {
	case KeysUUID:
		keys, err := uuidDataset(r.cfg.Size)
		if err != nil {
			return nil, err
		}
		return runAll(ctx, r, keys)
	default:
		return runAll(ctx, r, intDataset(r.cfg))
	}
}

func runAll[K constraints.Ordered](ctx context.Context, r *Runner, keys []K) ([]Result, error) {
	want := distinct(keys)
	r.logger.Info("dataset ready",
		"keys", humanize.Comma(int64(len(keys))),
		"distinct", humanize.Comma(int64(want)),
		"order", r.cfg.Order,
		"kind", r.cfg.Keys)

	var results []Result
	for _, name := range r.cfg.Trees {
		tree := newTree[K](name, r.treeOptions()...)
		res, err := runTree(ctx, r, name, tree, keys, want)
		results = append(results, res...)
		if err != nil {
			return results, fmt.Errorf("%s: %w", name, err)
		}
	}
	return results, nil
}

func (r *Runner) treeOptions() []ordered.Option {
	opts := []ordered.Option{ordered.WithLogger(r.logger)}
	if r.cfg.Seed != 0 {
		opts = append(opts, ordered.WithSeed(r.cfg.Seed))
	}
	return opts
}

func newTree[K constraints.Ordered](name string, opts ...ordered.Option) ordered.Tree[K, int] {
	switch name {
	case TreeAVL:
		return ordered.NewAVL[K, int](opts...)
	case TreeTreap:
		return ordered.NewTreap[K, int](opts...)
	default:
		return ordered.NewBST[K, int](opts...)
	}
}

func runTree[K constraints.Ordered](ctx context.Context, r *Runner, name string, tree ordered.Tree[K, int], keys []K, want int) ([]Result, error) {
	var results []Result

	phases := []struct {
		name    string
		apply   func(i int, k K) error
		wantLen int
	}{
		{PhaseInsert, func(i int, k K) error {
			_, err := tree.Insert(k, i)
			return err
		}, want},
		{PhaseLookup, func(_ int, k K) error {
			_, found, err := tree.Get(k)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("key %v missing after insert", k)
			}
			return nil
		}, want},
		{PhaseDelete, func(_ int, k K) error {
			_, _, err := tree.Delete(k)
			return err
		}, 0},
	}

	for _, phase := range phases {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		since := time.Now()
		for i, k := range keys {
			if err := phase.apply(i, k); err != nil {
				return results, fmt.Errorf("%s phase: %w", phase.name, err)
			}
		}
		res := Result{
			Tree:     name,
			Phase:    phase.name,
			Ops:      len(keys),
			Duration: time.Since(since),
			Len:      tree.Len(),
			Height:   tree.Height(),
		}
		results = append(results, res)
		if r.metrics != nil {
			r.metrics.observe(res)
		}
		r.logger.Info("phase done",
			"tree", name,
			"phase", phase.name,
			"ops", humanize.Comma(int64(res.Ops)),
			"duration", res.Duration,
			"ops_per_sec", humanize.Comma(opsPerSec(res.Ops, res.Duration)),
			"len", res.Len,
			"height", res.Height)
		if res.Len != phase.wantLen {
			return results, fmt.Errorf("%s phase: expected %d keys, tree holds %d", phase.name, phase.wantLen, res.Len)
		}
	}
	return results, nil
}
