package resolve

import "fmt"

// An EpochSelector identifies which checkpoint of a directory to resolve. It
// is either the latest available checkpoint or the checkpoint of one specific
// epoch.
type EpochSelector struct {
	epoch  int
	latest bool
}

// Latest returns a selector that resolves to the most recent checkpoint in a
// directory.
func Latest() EpochSelector {
	return EpochSelector{latest: true}
}

// ForEpoch returns a selector that resolves to the checkpoint of the given
// epoch.
func ForEpoch(epoch int) EpochSelector {
	if epoch < 0 {
		panic(fmt.Sprintf("epoch must be non-negative, got %d", epoch))
	}

	return EpochSelector{epoch: epoch}
}

// IsLatest tells if the selector resolves to the latest checkpoint.
func (s EpochSelector) IsLatest() bool {
	return s.latest
}

// Epoch returns the specific epoch the selector resolves to. It panics if the
// selector is a latest selector.
func (s EpochSelector) Epoch() int {
	if s.latest {
		panic("latest selector has no epoch")
	}

	return s.epoch
}

func (s EpochSelector) String() string {
	if s.latest {
		return "latest"
	}

	return fmt.Sprintf("epoch %d", s.epoch)
}
