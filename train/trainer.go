package train

import (
	"fmt"
	"log"
	"os"

	"github.com/strideml/stride/checkpoint/resolve"
)

const metaEpochKey = "__epoch__"

// An EpochRunner runs one full pass over the training dataset. It is the
// external collaborator that owns model and optimizer mechanics.
type EpochRunner interface {
	RunEpoch(epoch int) error
}

// A SavedCheckpoint is the hook item delivered at HookPosAfterCheckpointSave.
type SavedCheckpoint struct {
	Epoch    int
	Path     string
	ByteSize int64
}

// A LoadedCheckpoint is the hook item delivered at
// HookPosAfterCheckpointLoad.
type LoadedCheckpoint struct {
	Epoch int
	Path  string
}

// A Trainer drives the training loop and owns the shared training state. It
// is the training context that lifecycle hooks observe and act on.
type Trainer struct {
	*HookableBase

	id     string
	logger *log.Logger
	codec  Codec
	runner EpochRunner

	states     map[string]State
	stateNames []string

	curEpoch int
}

// ID returns the unique ID of this training run.
func (t *Trainer) ID() string {
	return t.id
}

// CurrentEpoch returns the 1-based epoch counter. It is 0 before the first
// epoch starts.
func (t *Trainer) CurrentEpoch() int {
	return t.curEpoch
}

// RegisterState registers a named piece of training state, such as the model
// or the optimizer, to be included in checkpoints.
func (t *Trainer) RegisterState(name string, state State) {
	if _, ok := t.states[name]; ok {
		panic("state " + name + " already registered")
	}

	t.states[name] = state
	t.stateNames = append(t.stateNames, name)
}

// Fit runs the training loop for the given number of epochs, invoking hooks
// at each lifecycle position. The first hook or runner error aborts the run
// and propagates to the caller.
func (t *Trainer) Fit(epochs int) error {
	if t.runner == nil {
		panic("trainer has no epoch runner")
	}

	err := t.InvokeHook(HookCtx{
		Domain: t,
		Pos:    HookPosBeforeTrain,
		Item:   t.curEpoch,
	})
	if err != nil {
		return err
	}

	for i := 0; i < epochs; i++ {
		t.curEpoch++

		err := t.runOneEpoch()
		if err != nil {
			return err
		}
	}

	return t.InvokeHook(HookCtx{
		Domain: t,
		Pos:    HookPosAfterTrain,
		Item:   t.curEpoch,
	})
}

func (t *Trainer) runOneEpoch() error {
	err := t.InvokeHook(HookCtx{
		Domain: t,
		Pos:    HookPosBeforeEpoch,
		Item:   t.curEpoch,
	})
	if err != nil {
		return err
	}

	err = t.runner.RunEpoch(t.curEpoch)
	if err != nil {
		return fmt.Errorf("epoch %d: %w", t.curEpoch, err)
	}

	return t.InvokeHook(HookCtx{
		Domain: t,
		Pos:    HookPosAfterEpoch,
		Item:   t.curEpoch,
	})
}

// Save persists all registered states as one artifact for the current epoch.
// An empty dir falls back to resolve.DefaultDir.
func (t *Trainer) Save(dir, suffix string) error {
	if dir == "" {
		dir = resolve.DefaultDir
	}

	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return fmt.Errorf("create checkpoint dir: %w", err)
	}

	data := map[string]any{metaEpochKey: t.curEpoch}

	for _, name := range t.stateNames {
		serialized, err := t.states[name].Serialize()
		if err != nil {
			return fmt.Errorf("serialize state %s: %w", name, err)
		}

		data[name] = serialized
	}

	path := resolve.Path(dir, t.curEpoch, suffix)

	err = t.writeArtifact(path, data)
	if err != nil {
		return err
	}

	byteSize := int64(0)
	if info, err := os.Stat(path); err == nil {
		byteSize = info.Size()
	}

	return t.InvokeHook(HookCtx{
		Domain: t,
		Pos:    HookPosAfterCheckpointSave,
		Item: SavedCheckpoint{
			Epoch:    t.curEpoch,
			Path:     path,
			ByteSize: byteSize,
		},
	})
}

func (t *Trainer) writeArtifact(path string, data map[string]any) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create checkpoint artifact: %w", err)
	}

	err = t.codec.Encode(file, data)
	if err != nil {
		file.Close()
		return fmt.Errorf("encode checkpoint artifact: %w", err)
	}

	return file.Close()
}

// Load restores registered states from the artifact at path.
//
// Under strict mode, the state names in the artifact must exactly match the
// registered state names and every deserialization error is fatal. Otherwise
// mismatching sections are skipped with a log record. Under finetune mode,
// only the parameters are restored and the epoch counter stays untouched, so
// a new training run starts from the loaded weights.
func (t *Trainer) Load(path string, finetune, strict bool) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open checkpoint artifact: %w", err)
	}
	defer file.Close()

	data, err := t.codec.Decode(file)
	if err != nil {
		return fmt.Errorf("decode checkpoint artifact: %w", err)
	}

	epoch := 0
	if raw, ok := data[metaEpochKey]; ok {
		if f, ok := raw.(float64); ok {
			epoch = int(f)
		}

		delete(data, metaEpochKey)
	}

	if strict {
		err := t.matchStateNames(data)
		if err != nil {
			return err
		}
	}

	err = t.restoreStates(data, strict)
	if err != nil {
		return err
	}

	if !finetune {
		t.curEpoch = epoch
	}

	return t.InvokeHook(HookCtx{
		Domain: t,
		Pos:    HookPosAfterCheckpointLoad,
		Item: LoadedCheckpoint{
			Epoch: epoch,
			Path:  path,
		},
	})
}

func (t *Trainer) matchStateNames(data map[string]any) error {
	for _, name := range t.stateNames {
		if _, ok := data[name]; !ok {
			return fmt.Errorf("strict load: state %s missing from artifact",
				name)
		}
	}

	for name := range data {
		if _, ok := t.states[name]; !ok {
			return fmt.Errorf("strict load: unexpected state %s in artifact",
				name)
		}
	}

	return nil
}

func (t *Trainer) restoreStates(data map[string]any, strict bool) error {
	for _, name := range t.stateNames {
		raw, ok := data[name]
		if !ok {
			continue
		}

		section, ok := raw.(map[string]any)
		if !ok {
			if strict {
				return fmt.Errorf("strict load: state %s is malformed", name)
			}

			t.logger.Printf("skipping malformed state %s", name)

			continue
		}

		err := t.states[name].Deserialize(section)
		if err != nil {
			if strict {
				return fmt.Errorf("strict load: state %s: %w", name, err)
			}

			t.logger.Printf("skipping state %s: %s", name, err)
		}
	}

	return nil
}
