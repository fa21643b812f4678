package distributed

import "sync"

// localBarrier is a cyclic, condition-variable barrier shared by the members
// of a local group.
type localBarrier struct {
	mu         sync.Mutex
	cond       *sync.Cond
	size       int
	arrived    int
	generation int
}

func newLocalBarrier(size int) *localBarrier {
	b := &localBarrier{size: size}
	b.cond = sync.NewCond(&b.mu)

	return b
}

func (b *localBarrier) wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	generation := b.generation

	b.arrived++
	if b.arrived == b.size {
		b.arrived = 0
		b.generation++
		b.cond.Broadcast()

		return
	}

	for generation == b.generation {
		b.cond.Wait()
	}
}

// A LocalGroup is one member of an in-process replica group. All members
// share a cyclic barrier. It backs single-host multi-goroutine runs and
// tests that need real barrier semantics without multiple OS processes.
type LocalGroup struct {
	rank    int
	size    int
	barrier *localBarrier
}

// NewLocalGroup creates an in-process group with the given number of
// participants and returns one member per rank.
func NewLocalGroup(size int) []*LocalGroup {
	if size < 1 {
		panic("group size must be positive")
	}

	barrier := newLocalBarrier(size)

	members := make([]*LocalGroup, size)
	for rank := range members {
		members[rank] = &LocalGroup{
			rank:    rank,
			size:    size,
			barrier: barrier,
		}
	}

	return members
}

func (g *LocalGroup) Active() bool {
	return g.size > 1
}

func (g *LocalGroup) Rank() int {
	return g.rank
}

func (g *LocalGroup) Size() int {
	return g.size
}

func (g *LocalGroup) PrimaryReplica() bool {
	return g.rank == 0
}

// Barrier blocks until every member of the group has called it.
func (g *LocalGroup) Barrier() error {
	g.barrier.wait()
	return nil
}
