package monitoring

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/strideml/stride/train"
)

var _ = Describe("Monitor", func() {
	var (
		m *Monitor
	)

	BeforeEach(func() {
		m = &Monitor{}
	})

	It("should create progress bars", func() {
		bar := m.CreateProgressBar("Training", 10)

		Expect(m.progressBars).To(HaveLen(1))
		Expect(bar.Name).To(Equal("Training"))
		Expect(bar.Total).To(Equal(uint64(10)))
	})

	It("should complete progress bars", func() {
		bar1 := m.CreateProgressBar("Run1", 10)
		bar2 := m.CreateProgressBar("Run2", 20)

		m.CompleteProgressBar(bar1)

		Expect(m.progressBars).To(HaveLen(1))
		Expect(m.progressBars[0]).To(BeIdenticalTo(bar2))
	})

	It("should reject privileged port numbers", func() {
		m.WithPortNumber(80)

		Expect(m.portNumber).To(Equal(0))
	})

	It("should accept regular port numbers", func() {
		m.WithPortNumber(8080)

		Expect(m.portNumber).To(Equal(8080))
	})
})

var _ = Describe("ProgressBar", func() {
	It("should move in-progress items to finished", func() {
		bar := &ProgressBar{Total: 4}

		bar.IncrementInProgress(2)
		Expect(bar.InProgress).To(Equal(uint64(2)))

		bar.MoveInProgressToFinished(2)
		Expect(bar.InProgress).To(Equal(uint64(0)))
		Expect(bar.Finished).To(Equal(uint64(2)))
	})
})

var _ = Describe("EpochProgressHook", func() {
	It("should advance the bar as epochs run", func() {
		bar := &ProgressBar{Total: 3}
		hook := NewEpochProgressHook(bar)

		Expect(hook.Func(train.HookCtx{
			Pos:  train.HookPosBeforeEpoch,
			Item: 1,
		})).To(Succeed())
		Expect(bar.InProgress).To(Equal(uint64(1)))

		Expect(hook.Func(train.HookCtx{
			Pos:  train.HookPosAfterEpoch,
			Item: 1,
		})).To(Succeed())
		Expect(bar.InProgress).To(Equal(uint64(0)))
		Expect(bar.Finished).To(Equal(uint64(1)))
	})

	It("should ignore unrelated positions", func() {
		bar := &ProgressBar{Total: 3}
		hook := NewEpochProgressHook(bar)

		Expect(hook.Func(train.HookCtx{
			Pos: train.HookPosBeforeTrain,
		})).To(Succeed())
		Expect(bar.InProgress).To(Equal(uint64(0)))
	})
})
