package checkpoint

import (
	"log"
	"os"

	"github.com/strideml/stride/checkpoint/resolve"
	"github.com/strideml/stride/distributed"
	"github.com/strideml/stride/train"
)

// A LoadHook restores the training state before the training process starts.
// Configuration is fixed at construction time.
type LoadHook struct {
	train.LogHookBase

	context  TrainingContext
	group    distributed.Group
	resolver resolve.Resolver
	dir      string
	selector resolve.EpochSelector
	finetune bool
	strict   bool
	priority int
}

// LoadHookBuilder can be used to build a LoadHook.
type LoadHookBuilder struct {
	context  TrainingContext
	group    distributed.Group
	resolver resolve.Resolver
	logger   *log.Logger
	dir      string
	selector resolve.EpochSelector
	finetune bool
	strict   bool
	priority int
}

// MakeLoadHookBuilder creates a builder with the default configuration:
// resolve the latest checkpoint, full load, non-strict, priority 10. The
// default priority is lower precedence than typical save hooks so loads can
// be ordered relative to other setup hooks.
func MakeLoadHookBuilder() LoadHookBuilder {
	return LoadHookBuilder{
		group:    distributed.NopGroup{},
		resolver: resolve.FileResolver{},
		logger:   log.New(os.Stderr, "", log.LstdFlags),
		selector: resolve.Latest(),
		priority: 10,
	}
}

// WithContext sets the training context the hook loads into.
func (b LoadHookBuilder) WithContext(c TrainingContext) LoadHookBuilder {
	b.context = c
	return b
}

// WithGroup sets the replica group used for the post-load barrier.
func (b LoadHookBuilder) WithGroup(g distributed.Group) LoadHookBuilder {
	b.group = g
	return b
}

// WithResolver sets the resolver that maps the directory and the epoch
// selector to a concrete artifact path.
func (b LoadHookBuilder) WithResolver(r resolve.Resolver) LoadHookBuilder {
	b.resolver = r
	return b
}

// WithLogger sets the logger for load records.
func (b LoadHookBuilder) WithLogger(l *log.Logger) LoadHookBuilder {
	b.logger = l
	return b
}

// WithDir sets the directory to resolve the checkpoint in.
func (b LoadHookBuilder) WithDir(dir string) LoadHookBuilder {
	b.dir = dir
	return b
}

// WithSelector sets which checkpoint to resolve: the latest available or a
// specific epoch.
func (b LoadHookBuilder) WithSelector(
	s resolve.EpochSelector,
) LoadHookBuilder {
	b.selector = s
	return b
}

// WithFinetune permits loading only a subset of parameters, starting a new
// training run from the loaded weights.
func (b LoadHookBuilder) WithFinetune(finetune bool) LoadHookBuilder {
	b.finetune = finetune
	return b
}

// WithStrict requires the loaded parameter names and shapes to exactly match
// the current model.
func (b LoadHookBuilder) WithStrict(strict bool) LoadHookBuilder {
	b.strict = strict
	return b
}

// WithPriority sets the ordering of this hook among hooks at the same
// position. Lower values fire first.
func (b LoadHookBuilder) WithPriority(p int) LoadHookBuilder {
	b.priority = p
	return b
}

// Build builds the LoadHook.
func (b LoadHookBuilder) Build() *LoadHook {
	if b.context == nil {
		panic("load hook requires a training context")
	}

	h := &LoadHook{
		context:  b.context,
		group:    b.group,
		resolver: b.resolver,
		dir:      b.dir,
		selector: b.selector,
		finetune: b.finetune,
		strict:   b.strict,
		priority: b.priority,
	}
	h.Logger = b.logger

	return h
}

// Priority returns the configured hook priority.
func (h *LoadHook) Priority() int {
	return h.priority
}

// Func loads parameters into the training context before training starts.
// A checkpoint that cannot be resolved to an existing artifact is fatal:
// training must not proceed without its initial state when this hook is
// configured, and no fallback to random initialization happens here. Every
// replica loads independently, then all synchronize on a barrier so that no
// participant starts training against partially loaded state elsewhere.
func (h *LoadHook) Func(ctx train.HookCtx) error {
	if ctx.Pos != train.HookPosBeforeTrain {
		return nil
	}

	path, err := h.resolvePath()
	if err != nil {
		return err
	}

	_, err = os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &resolve.NotFoundError{Path: path}
		}

		return err
	}

	err = h.context.Load(path, h.finetune, h.strict)
	if err != nil {
		return err
	}

	h.Printf("loaded checkpoint from %s", path)

	if h.group.Active() {
		return h.group.Barrier()
	}

	return nil
}

func (h *LoadHook) resolvePath() (string, error) {
	if h.selector.IsLatest() {
		return h.resolver.Latest(h.dir)
	}

	return h.resolver.ForEpoch(h.dir, h.selector.Epoch()), nil
}
