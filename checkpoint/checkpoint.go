// Package checkpoint provides the lifecycle hooks that periodically persist
// training state and restore it before training resumes.
//
// Saving is rank-gated: when a replica group is active, only the primary
// replica writes, and every replica synchronizes on a barrier afterward so
// that no participant advances past a checkpoint boundary with inconsistent
// state. Loading is performed by every replica independently, followed by
// the same barrier.
package checkpoint

// A TrainingContext exposes the training loop state the checkpoint hooks
// operate on. *train.Trainer satisfies this interface.
type TrainingContext interface {
	// CurrentEpoch returns the epoch counter, mutated solely by the
	// training loop.
	CurrentEpoch() int

	// Save persists the current model/optimizer state as one durable
	// artifact for the current epoch.
	Save(dir, suffix string) error

	// Load restores model/optimizer state from the artifact at path.
	Load(path string, finetune, strict bool) error
}
