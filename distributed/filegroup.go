package distributed

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// A FileGroup coordinates replicas running as separate OS processes that
// share a filesystem, which is the common layout of multi-process training
// jobs on one host or on a shared volume. Each barrier pass is a rendezvous
// through per-generation marker files.
type FileGroup struct {
	dir        string
	runID      string
	rank       int
	size       int
	generation int

	// PollInterval is the delay between checks for the other participants'
	// marker files.
	PollInterval time.Duration
}

// NewFileGroup creates a member of a file-backed group. All members of one
// run must use the same directory and the same run ID. The run ID scopes the
// rendezvous markers, so a directory left over from an earlier or crashed
// run cannot release a barrier of the current run. Rank must be unique per
// member and in [0, size).
func NewFileGroup(dir, runID string, rank, size int) (*FileGroup, error) {
	if runID == "" {
		return nil, fmt.Errorf("run ID must not be empty")
	}

	if size < 1 {
		return nil, fmt.Errorf("group size must be positive, got %d", size)
	}

	if rank < 0 || rank >= size {
		return nil, fmt.Errorf("rank %d out of range for group size %d",
			rank, size)
	}

	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("create group dir: %w", err)
	}

	g := &FileGroup{
		dir:          dir,
		runID:        runID,
		rank:         rank,
		size:         size,
		PollInterval: 10 * time.Millisecond,
	}

	return g, nil
}

func (g *FileGroup) Active() bool {
	return g.size > 1
}

func (g *FileGroup) Rank() int {
	return g.rank
}

func (g *FileGroup) Size() int {
	return g.size
}

func (g *FileGroup) PrimaryReplica() bool {
	return g.rank == 0
}

// Barrier drops a marker file for this rank and generation, then polls until
// every rank of the current generation has arrived. It blocks without
// timeout.
func (g *FileGroup) Barrier() error {
	err := g.markArrival()
	if err != nil {
		return err
	}

	for {
		arrived, err := g.countArrivals()
		if err != nil {
			return err
		}

		if arrived == g.size {
			break
		}

		time.Sleep(g.PollInterval)
	}

	g.pruneOldGeneration()
	g.generation++

	return nil
}

func (g *FileGroup) markerPath(generation, rank int) string {
	name := fmt.Sprintf("barrier_%s_%d_rank_%d", g.runID, generation, rank)
	return filepath.Join(g.dir, name)
}

func (g *FileGroup) markArrival() error {
	file, err := os.Create(g.markerPath(g.generation, g.rank))
	if err != nil {
		return fmt.Errorf("mark barrier arrival: %w", err)
	}

	return file.Close()
}

func (g *FileGroup) countArrivals() (int, error) {
	arrived := 0

	for rank := 0; rank < g.size; rank++ {
		_, err := os.Stat(g.markerPath(g.generation, rank))
		if err == nil {
			arrived++
			continue
		}

		if !os.IsNotExist(err) {
			return 0, fmt.Errorf("check barrier arrival: %w", err)
		}
	}

	return arrived, nil
}

// pruneOldGeneration removes the markers of the generation before the one
// that just completed. The just-completed generation must stay in place so
// that stragglers still inside Barrier can observe it.
func (g *FileGroup) pruneOldGeneration() {
	if g.generation == 0 || g.rank != 0 {
		return
	}

	for rank := 0; rank < g.size; rank++ {
		os.Remove(g.markerPath(g.generation-1, rank))
	}
}
