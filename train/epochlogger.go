package train

import "log"

// EpochLogger is a hook that prints epoch transitions
type EpochLogger struct {
	LogHookBase
}

// NewEpochLogger returns a new EpochLogger which will write into the logger
func NewEpochLogger(logger *log.Logger) *EpochLogger {
	h := new(EpochLogger)
	h.Logger = logger
	return h
}

// Priority returns 0. Epoch logging has no ordering requirement.
func (h *EpochLogger) Priority() int {
	return 0
}

// Func writes the epoch information into the logger
func (h *EpochLogger) Func(ctx HookCtx) error {
	switch ctx.Pos {
	case HookPosBeforeEpoch:
		h.Printf("epoch %d started", ctx.Item.(int))
	case HookPosAfterEpoch:
		h.Printf("epoch %d finished", ctx.Item.(int))
	}

	return nil
}
