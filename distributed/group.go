// Package distributed abstracts the replica group of a data-parallel
// training job: rank identity and collective synchronization.
package distributed

// A Group is the set of data-parallel replicas a training process belongs
// to. Each replica holds a full copy of the model and processes a distinct
// data shard.
type Group interface {
	// Active tells if distributed coordination is in effect. A single
	// process job reports false and skips all collective operations.
	Active() bool

	// Rank returns this participant's integer identity within the group.
	Rank() int

	// Size returns the number of participants in the group.
	Size() int

	// PrimaryReplica tells if this participant is the sole writer for
	// checkpoint saves. Exactly one participant per group reports true.
	PrimaryReplica() bool

	// Barrier blocks until every participant in the group has called it.
	// There is no timeout. Liveness of stalled participants is the
	// responsibility of the underlying transport.
	Barrier() error
}

// NopGroup is the group of a single-process job. It is inactive and all
// collective operations are no-ops.
type NopGroup struct{}

func (NopGroup) Active() bool {
	return false
}

func (NopGroup) Rank() int {
	return 0
}

func (NopGroup) Size() int {
	return 1
}

func (NopGroup) PrimaryReplica() bool {
	return true
}

func (NopGroup) Barrier() error {
	return nil
}
