package train

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// A recordingHook appends a tag to a shared journal every time it fires.
type recordingHook struct {
	priority int
	tag      string
	journal  *[]string
	err      error
}

func (h *recordingHook) Priority() int {
	return h.priority
}

func (h *recordingHook) Func(ctx HookCtx) error {
	*h.journal = append(*h.journal, h.tag)
	return h.err
}

var _ = Describe("HookableBase", func() {
	var (
		domain  *HookableBase
		journal []string
	)

	BeforeEach(func() {
		domain = NewHookableBase()
		journal = nil
	})

	It("should invoke hooks in ascending priority order", func() {
		domain.AcceptHook(&recordingHook{
			priority: 10, tag: "third", journal: &journal})
		domain.AcceptHook(&recordingHook{
			priority: 0, tag: "first", journal: &journal})
		domain.AcceptHook(&recordingHook{
			priority: 5, tag: "second", journal: &journal})

		err := domain.InvokeHook(HookCtx{Pos: HookPosAfterEpoch})

		Expect(err).ToNot(HaveOccurred())
		Expect(journal).To(Equal([]string{"first", "second", "third"}))
	})

	It("should keep registration order for equal priorities", func() {
		domain.AcceptHook(&recordingHook{
			priority: 0, tag: "a", journal: &journal})
		domain.AcceptHook(&recordingHook{
			priority: 0, tag: "b", journal: &journal})
		domain.AcceptHook(&recordingHook{
			priority: 0, tag: "c", journal: &journal})

		err := domain.InvokeHook(HookCtx{Pos: HookPosAfterEpoch})

		Expect(err).ToNot(HaveOccurred())
		Expect(journal).To(Equal([]string{"a", "b", "c"}))
	})

	It("should stop the chain at the first error", func() {
		hookErr := errors.New("hook failed")

		domain.AcceptHook(&recordingHook{
			priority: 0, tag: "first", journal: &journal})
		domain.AcceptHook(&recordingHook{
			priority: 1, tag: "second", journal: &journal, err: hookErr})
		domain.AcceptHook(&recordingHook{
			priority: 2, tag: "third", journal: &journal})

		err := domain.InvokeHook(HookCtx{Pos: HookPosAfterEpoch})

		Expect(err).To(MatchError(hookErr))
		Expect(journal).To(Equal([]string{"first", "second"}))
	})
})
