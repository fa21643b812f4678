package monitoring

import "github.com/strideml/stride/train"

// An EpochProgressHook advances a progress bar as epochs complete.
type EpochProgressHook struct {
	bar *ProgressBar
}

// NewEpochProgressHook creates a hook that advances the given bar by one for
// each finished epoch.
func NewEpochProgressHook(bar *ProgressBar) *EpochProgressHook {
	return &EpochProgressHook{bar: bar}
}

// Priority returns 100, so progress reporting fires after the checkpoint
// hooks at the same position.
func (h *EpochProgressHook) Priority() int {
	return 100
}

// Func advances the bar.
func (h *EpochProgressHook) Func(ctx train.HookCtx) error {
	switch ctx.Pos {
	case train.HookPosBeforeEpoch:
		h.bar.IncrementInProgress(1)
	case train.HookPosAfterEpoch:
		h.bar.MoveInProgressToFinished(1)
	}

	return nil
}
