package checkpoint

import (
	"log"
	"os"

	"github.com/strideml/stride/distributed"
	"github.com/strideml/stride/train"
)

// A SaveHook saves the training state by interval during the training
// process. Configuration is fixed at construction time.
type SaveHook struct {
	train.LogHookBase

	context  TrainingContext
	group    distributed.Group
	interval int
	dir      string
	suffix   string
	priority int
}

// SaveHookBuilder can be used to build a SaveHook.
type SaveHookBuilder struct {
	context  TrainingContext
	group    distributed.Group
	logger   *log.Logger
	interval int
	dir      string
	suffix   string
	priority int
}

// MakeSaveHookBuilder creates a builder with the default configuration:
// save every epoch, no suffix, priority 0.
func MakeSaveHookBuilder() SaveHookBuilder {
	return SaveHookBuilder{
		group:    distributed.NopGroup{},
		logger:   log.New(os.Stderr, "", log.LstdFlags),
		interval: 1,
	}
}

// WithContext sets the training context the hook saves.
func (b SaveHookBuilder) WithContext(c TrainingContext) SaveHookBuilder {
	b.context = c
	return b
}

// WithGroup sets the replica group used for writer election and the
// post-save barrier.
func (b SaveHookBuilder) WithGroup(g distributed.Group) SaveHookBuilder {
	b.group = g
	return b
}

// WithLogger sets the logger for save records.
func (b SaveHookBuilder) WithLogger(l *log.Logger) SaveHookBuilder {
	b.logger = l
	return b
}

// WithInterval sets the hook to save every n epochs.
func (b SaveHookBuilder) WithInterval(n int) SaveHookBuilder {
	if n < 1 {
		panic("save interval must be positive")
	}

	b.interval = n

	return b
}

// WithDir sets the destination directory. An empty directory falls back to
// the default convention of the save primitive.
func (b SaveHookBuilder) WithDir(dir string) SaveHookBuilder {
	b.dir = dir
	return b
}

// WithSuffix sets the suffix appended to each artifact's identity, letting
// multiple checkpoint families coexist in one directory.
func (b SaveHookBuilder) WithSuffix(suffix string) SaveHookBuilder {
	b.suffix = suffix
	return b
}

// WithPriority sets the ordering of this hook among hooks at the same
// position. Lower values fire first.
func (b SaveHookBuilder) WithPriority(p int) SaveHookBuilder {
	b.priority = p
	return b
}

// Build builds the SaveHook.
func (b SaveHookBuilder) Build() *SaveHook {
	if b.context == nil {
		panic("save hook requires a training context")
	}

	h := &SaveHook{
		context:  b.context,
		group:    b.group,
		interval: b.interval,
		dir:      b.dir,
		suffix:   b.suffix,
		priority: b.priority,
	}
	h.Logger = b.logger

	return h
}

// Priority returns the configured hook priority.
func (h *SaveHook) Priority() int {
	return h.priority
}

// Func saves the training state after each save-point epoch. Only the
// primary replica writes. Whether or not this replica wrote, all replicas
// synchronize on a barrier before any advances to the next epoch. Save
// failures propagate to the training loop without retry.
func (h *SaveHook) Func(ctx train.HookCtx) error {
	if ctx.Pos != train.HookPosAfterEpoch {
		return nil
	}

	epoch := h.context.CurrentEpoch()
	if epoch%h.interval != 0 {
		return nil
	}

	if h.group.PrimaryReplica() {
		err := h.context.Save(h.dir, h.suffix)
		if err != nil {
			return err
		}

		h.Printf("checkpoint for epoch %d is saved to %s", epoch, h.dir)
	}

	if h.group.Active() {
		return h.group.Barrier()
	}

	return nil
}
