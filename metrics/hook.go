package metrics

import (
	"time"

	"github.com/strideml/stride/train"
)

// A Hook feeds the training collectors from lifecycle positions.
type Hook struct {
	epochStart time.Time
}

// NewHook creates a metrics hook.
func NewHook() *Hook {
	return &Hook{}
}

// Priority returns 100, so metric collection fires after the checkpoint
// hooks at the same position.
func (h *Hook) Priority() int {
	return 100
}

// Func updates the collectors.
func (h *Hook) Func(ctx train.HookCtx) error {
	switch ctx.Pos {
	case train.HookPosBeforeEpoch:
		h.epochStart = time.Now()
		CurrentEpoch.Set(float64(ctx.Item.(int)))
	case train.HookPosAfterEpoch:
		EpochsTotal.Inc()
		EpochDurationSeconds.Observe(time.Since(h.epochStart).Seconds())
	case train.HookPosAfterCheckpointSave:
		saved := ctx.Item.(train.SavedCheckpoint)
		CheckpointSavesTotal.Inc()
		CheckpointBytesWritten.Add(float64(saved.ByteSize))
	case train.HookPosAfterCheckpointLoad:
		CheckpointLoadsTotal.Inc()
	}

	return nil
}
