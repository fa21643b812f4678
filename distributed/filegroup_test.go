package distributed_test

import (
	"sync"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/strideml/stride/distributed"
)

var _ = Describe("FileGroup", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	makeGroup := func(runID string, rank, size int) *distributed.FileGroup {
		g, err := distributed.NewFileGroup(dir, runID, rank, size)
		Expect(err).ToNot(HaveOccurred())

		return g
	}

	It("should reject invalid configurations", func() {
		_, err := distributed.NewFileGroup(dir, "run1", 0, 0)
		Expect(err).To(HaveOccurred())

		_, err = distributed.NewFileGroup(dir, "run1", 2, 2)
		Expect(err).To(HaveOccurred())

		_, err = distributed.NewFileGroup(dir, "run1", -1, 2)
		Expect(err).To(HaveOccurred())

		_, err = distributed.NewFileGroup(dir, "", 0, 2)
		Expect(err).To(HaveOccurred())
	})

	It("should report rank and primary status", func() {
		g0 := makeGroup("run1", 0, 2)
		g1 := makeGroup("run1", 1, 2)

		Expect(g0.Active()).To(BeTrue())
		Expect(g0.PrimaryReplica()).To(BeTrue())
		Expect(g1.PrimaryReplica()).To(BeFalse())
		Expect(g1.Size()).To(Equal(2))
	})

	It("should not be active with a single member", func() {
		g := makeGroup("run1", 0, 1)

		Expect(g.Active()).To(BeFalse())
		Expect(g.Barrier()).To(Succeed())
	})

	It("should release no member before every member arrived", func() {
		members := make([]*distributed.FileGroup, 3)
		for rank := range members {
			members[rank] = makeGroup("run1", rank, 3)
		}

		var arrived int32
		var wg sync.WaitGroup

		for _, member := range members {
			member := member
			wg.Add(1)

			go func() {
				defer GinkgoRecover()
				defer wg.Done()

				atomic.AddInt32(&arrived, 1)

				Expect(member.Barrier()).To(Succeed())
				Expect(atomic.LoadInt32(&arrived)).To(Equal(int32(3)))
			}()
		}

		wg.Wait()
	})

	It("should support repeated barrier passes", func() {
		members := make([]*distributed.FileGroup, 2)
		for rank := range members {
			members[rank] = makeGroup("run1", rank, 2)
		}

		var wg sync.WaitGroup

		for _, member := range members {
			member := member
			wg.Add(1)

			go func() {
				defer GinkgoRecover()
				defer wg.Done()

				for i := 0; i < 5; i++ {
					Expect(member.Barrier()).To(Succeed())
				}
			}()
		}

		wg.Wait()
	})

	It("should not release a barrier from a previous run's markers", func() {
		oldMembers := make([]*distributed.FileGroup, 2)
		for rank := range oldMembers {
			oldMembers[rank] = makeGroup("run1", rank, 2)
		}

		var wg sync.WaitGroup

		for _, member := range oldMembers {
			member := member
			wg.Add(1)

			go func() {
				defer GinkgoRecover()
				defer wg.Done()

				Expect(member.Barrier()).To(Succeed())
			}()
		}

		wg.Wait()

		// A restarted rank 0 reuses the directory with its own run ID. It
		// must block until its own peer arrives, no matter what markers the
		// earlier run left behind.
		restarted0 := makeGroup("run2", 0, 2)

		done := make(chan struct{})

		go func() {
			defer GinkgoRecover()

			Expect(restarted0.Barrier()).To(Succeed())
			close(done)
		}()

		Consistently(done, "200ms").ShouldNot(BeClosed())

		restarted1 := makeGroup("run2", 1, 2)
		Expect(restarted1.Barrier()).To(Succeed())

		Eventually(done).Should(BeClosed())
	})
})
