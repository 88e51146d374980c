package matrix

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sofmeright/buildmatrix/src/ctxlog"
	"github.com/sofmeright/buildmatrix/src/platform"
	"github.com/sofmeright/buildmatrix/src/rules"
)

// ErrDuplicateHost is returned by Sweep when a host is listed twice.
var ErrDuplicateHost = errors.New("duplicate host")

// Sweep resolves t for every host, at most limit at a time (limit <= 0 means
// unbounded). Plans come back in the order hosts were given.
func Sweep(ctx context.Context, t rules.Target, hosts []platform.Platform, f *Filter, limit int) ([]*Plan, error) {
	seen := make(map[platform.Platform]bool, len(hosts))
	for _, h := range hosts {
		if seen[h] {
			return nil, fmt.Errorf("sweep: %w: %s", ErrDuplicateHost, h)
		}
		seen[h] = true
	}

	log := ctxlog.FromContext(ctx)
	plans := make([]*Plan, len(hosts))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, host := range hosts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			plan := Resolve(t, host, f)
			log.Debug("resolved host",
				"target", plan.Target,
				"host", host,
				"jobs", len(plan.Jobs),
				"skipped", plan.Skipped)
			for _, w := range plan.Warnings {
				log.Warn(w, "host", host)
			}
			plans[i] = plan
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	return plans, nil
}
