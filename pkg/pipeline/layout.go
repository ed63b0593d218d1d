package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/tokenpress/pkg/layout"
	"github.com/matzehuels/tokenpress/pkg/observability"
	"github.com/matzehuels/tokenpress/pkg/token"
)

// Arrange packs the given specs into pages, firing layout hooks around the
// packer. It can be used on its own when only the placement plan is needed,
// without rendering anything.
func (r *Runner) Arrange(ctx context.Context, specs []*token.Spec, geom layout.Geometry) (*layout.Arrangement, error) {
	instances := 0
	for _, s := range specs {
		instances += s.Copies
	}

	hooks := observability.Layout()
	hooks.OnArrangeStart(ctx, len(specs), instances)

	start := time.Now()
	arr, err := layout.Arrange(specs, geom)
	if err != nil {
		hooks.OnArrangeComplete(ctx, 0, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnArrangeComplete(ctx, len(arr.Pages), arr.PlacementCount(), arr.Dropped, time.Since(start), nil)
	return arr, nil
}
