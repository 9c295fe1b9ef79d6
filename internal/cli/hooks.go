package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/matzehuels/graphspin/pkg/observability"
)

// progressHooks turns animation events into spinner updates.
type progressHooks struct {
	observability.NoopAnimationHooks
	spinner *Spinner
}

var _ observability.AnimationHooks = (*progressHooks)(nil)

func (h *progressHooks) OnLayoutStart(_ context.Context, vertices int) {
	h.spinner.SetMessage(fmt.Sprintf("Laying out %d vertices...", vertices))
}

func (h *progressHooks) OnFrameRendered(_ context.Context, i, frames int, path string) {
	h.spinner.SetMessage(fmt.Sprintf("Rendering frame %d/%d  %s", i+1, frames, filepath.Base(path)))
}

func (h *progressHooks) OnEncodeStart(_ context.Context, output string) {
	h.spinner.SetMessage(fmt.Sprintf("Encoding %s...", output))
}

// withProgress runs fn with a spinner driven by animation hooks. The
// previous hooks are restored when fn returns.
func withProgress(ctx context.Context, message string, fn func() error) error {
	spinner := newSpinnerWithContext(ctx, message)
	prev := observability.Animation()
	observability.SetAnimationHooks(&progressHooks{spinner: spinner})
	defer observability.SetAnimationHooks(prev)

	spinner.Start()
	err := fn()
	spinner.Stop()
	return err
}
