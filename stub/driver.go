package stub

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Driver generates stub programs for a set of independent functions.
// Generation passes for independent stubs have no ordering dependency,
// so the driver fans them out across workers; stages within one stub
// stay strictly ordered inside Builder.Build.
type Driver struct {
	builder *Builder
	jobs    int
}

// NewDriver returns a driver over the default registry. jobs <= 0 uses
// GOMAXPROCS.
func NewDriver(jobs int) *Driver {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return &Driver{builder: NewBuilder(), jobs: jobs}
}

// Builder exposes the driver's builder for single-function callers.
func (d *Driver) Builder() *Builder {
	return d.builder
}

// GenerateAll builds every function's stub. Results are index-aligned
// with funcs. The first contract failure cancels the remaining work;
// capability diagnostics ride inside their programs and never abort
// generation.
func (d *Driver) GenerateAll(ctx context.Context, funcs []Func) ([]*Program, error) {
	programs := make([]*Program, len(funcs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(d.jobs, max(len(funcs), 1)))

	for i, fn := range funcs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			prog, err := d.builder.Build(fn)
			if err != nil {
				return err
			}
			programs[i] = prog
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	Logger().Info("stub generation finished", zap.Int("functions", len(funcs)))
	return programs, nil
}
