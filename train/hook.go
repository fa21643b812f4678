package train

// HookPos defines the enum of possible hooking positions
type HookPos struct {
	Name string
}

// HookPosBeforeTrain is a hook position that triggers once before the first
// epoch runs.
var HookPosBeforeTrain = &HookPos{Name: "BeforeTrain"}

// HookPosAfterTrain is a hook position that triggers once after the last
// epoch completes.
var HookPosAfterTrain = &HookPos{Name: "AfterTrain"}

// HookPosBeforeEpoch is a hook position that triggers before each training
// epoch.
var HookPosBeforeEpoch = &HookPos{Name: "BeforeEpoch"}

// HookPosAfterEpoch is a hook position that triggers after each training
// epoch.
var HookPosAfterEpoch = &HookPos{Name: "AfterEpoch"}

// HookPosAfterCheckpointSave triggers after the trainer has written a
// checkpoint artifact.
var HookPosAfterCheckpointSave = &HookPos{Name: "AfterCheckpointSave"}

// HookPosAfterCheckpointLoad triggers after the trainer has restored its
// state from a checkpoint artifact.
var HookPosAfterCheckpointLoad = &HookPos{Name: "AfterCheckpointLoad"}

// HookCtx is the context that holds all the information about the site that a
// hook is triggered
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable defines an object that accept Hooks
type Hookable interface {
	// AcceptHook registers a hook
	AcceptHook(hook Hook)
}

// Hook is a short piece of program that can be invoked by a hookable object.
type Hook interface {
	// Priority determines the order in which hooks at the same position
	// fire. Hooks with smaller priority values fire first.
	Priority() int

	// Func determines what to do if hook is invoked. A returned error stops
	// the invocation chain and propagates to the code that triggered the
	// hooks.
	Func(ctx HookCtx) error
}

// A HookableBase provides some utility function for other type that implement
// the Hookable interface.
type HookableBase struct {
	Hooks []Hook
}

// NewHookableBase creates a HookableBase object
func NewHookableBase() *HookableBase {
	h := new(HookableBase)
	h.Hooks = make([]Hook, 0)
	return h
}

// AcceptHook registers a hook, keeping the hook list sorted by ascending
// priority. Hooks with equal priority keep their registration order.
func (h *HookableBase) AcceptHook(hook Hook) {
	i := len(h.Hooks)
	for i > 0 && h.Hooks[i-1].Priority() > hook.Priority() {
		i--
	}

	h.Hooks = append(h.Hooks, nil)
	copy(h.Hooks[i+1:], h.Hooks[i:])
	h.Hooks[i] = hook
}

// InvokeHook triggers the registered Hooks in priority order. The first hook
// that returns a non-nil error stops the chain.
func (h *HookableBase) InvokeHook(ctx HookCtx) error {
	for _, hook := range h.Hooks {
		err := hook.Func(ctx)
		if err != nil {
			return err
		}
	}

	return nil
}
