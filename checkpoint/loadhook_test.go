package checkpoint

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/strideml/stride/checkpoint/resolve"
	"github.com/strideml/stride/train"
)

var _ = Describe("LoadHook", func() {
	var (
		mockCtrl *gomock.Controller
		context  *MockTrainingContext
		group    *MockGroup
		resolver *MockResolver
		builder  LoadHookBuilder

		dir      string
		artifact string
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		context = NewMockTrainingContext(mockCtrl)
		group = NewMockGroup(mockCtrl)
		resolver = NewMockResolver(mockCtrl)

		dir = GinkgoT().TempDir()
		artifact = filepath.Join(dir, "epoch_7.ckpt")

		err := os.WriteFile(artifact, []byte("{}"), 0o644)
		Expect(err).ToNot(HaveOccurred())

		builder = MakeLoadHookBuilder().
			WithContext(context).
			WithGroup(group).
			WithResolver(resolver).
			WithLogger(log.New(GinkgoWriter, "", 0)).
			WithDir(dir)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	beforeTrainCtx := func() train.HookCtx {
		return train.HookCtx{Pos: train.HookPosBeforeTrain}
	}

	It("should do nothing at other hook positions", func() {
		hook := builder.Build()

		err := hook.Func(train.HookCtx{Pos: train.HookPosAfterEpoch})

		Expect(err).ToNot(HaveOccurred())
	})

	It("should resolve the latest checkpoint by default", func() {
		hook := builder.Build()

		resolver.EXPECT().Latest(dir).Return(artifact, nil)
		context.EXPECT().Load(artifact, false, false).Return(nil)
		group.EXPECT().Active().Return(false)

		err := hook.Func(beforeTrainCtx())

		Expect(err).ToNot(HaveOccurred())
	})

	It("should resolve a specific epoch when configured", func() {
		hook := builder.WithSelector(resolve.ForEpoch(7)).Build()

		resolver.EXPECT().ForEpoch(dir, 7).Return(artifact)
		context.EXPECT().Load(artifact, false, false).Return(nil)
		group.EXPECT().Active().Return(false)

		err := hook.Func(beforeTrainCtx())

		Expect(err).ToNot(HaveOccurred())
	})

	It("should fail with NotFound when the resolved path does not exist",
		func() {
			hook := builder.WithSelector(resolve.ForEpoch(5)).Build()

			missing := filepath.Join(dir, "epoch_5.ckpt")
			resolver.EXPECT().ForEpoch(dir, 5).Return(missing)

			err := hook.Func(beforeTrainCtx())

			Expect(resolve.IsNotFound(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(missing))
		})

	It("should propagate a failed latest resolution", func() {
		hook := builder.Build()

		resolver.EXPECT().Latest(dir).
			Return("", &resolve.NotFoundError{Path: dir})

		err := hook.Func(beforeTrainCtx())

		Expect(resolve.IsNotFound(err)).To(BeTrue())
	})

	It("should pass the finetune and strict flags through unchanged", func() {
		hook := builder.WithFinetune(true).WithStrict(true).Build()

		resolver.EXPECT().Latest(dir).Return(artifact, nil)
		context.EXPECT().Load(artifact, true, true).Return(nil)
		group.EXPECT().Active().Return(false)

		err := hook.Func(beforeTrainCtx())

		Expect(err).ToNot(HaveOccurred())
	})

	It("should enter the barrier after the load when the group is active",
		func() {
			hook := builder.Build()

			resolver.EXPECT().Latest(dir).Return(artifact, nil)
			load := context.EXPECT().Load(artifact, false, false).Return(nil)
			group.EXPECT().Active().Return(true).After(load)
			group.EXPECT().Barrier().Return(nil)

			err := hook.Func(beforeTrainCtx())

			Expect(err).ToNot(HaveOccurred())
		})

	It("should propagate load failures without entering the barrier", func() {
		hook := builder.Build()

		loadErr := errors.New("corrupt artifact")

		resolver.EXPECT().Latest(dir).Return(artifact, nil)
		context.EXPECT().Load(artifact, false, false).Return(loadErr)

		err := hook.Func(beforeTrainCtx())

		Expect(err).To(MatchError(loadErr))
	})

	It("should use a lower precedence than save hooks by default", func() {
		loadHook := builder.Build()
		saveHook := MakeSaveHookBuilder().WithContext(context).Build()

		Expect(loadHook.Priority()).To(BeNumerically(">", saveHook.Priority()))
	})
})
