package recording

import (
	"time"

	"github.com/strideml/stride/train"
)

// EpochEntry is one row of the epochs table.
type EpochEntry struct {
	Epoch           int
	DurationSeconds float64
	RecordedAt      string
}

// CheckpointEntry is one row of the checkpoints table.
type CheckpointEntry struct {
	Epoch      int
	Path       string
	ByteSize   int64
	RecordedAt string
}

const (
	// EpochTable is the name of the per-epoch table.
	EpochTable = "epochs"

	// CheckpointTable is the name of the per-checkpoint table.
	CheckpointTable = "checkpoints"

	timeFormat = "2006-01-02 15:04:05"
)

// A RunLog is a training hook that records one row per epoch and one row per
// written checkpoint.
type RunLog struct {
	recorder Recorder

	epochStart time.Time
}

// NewRunLog creates a RunLog writing into the given recorder.
func NewRunLog(recorder Recorder) *RunLog {
	l := &RunLog{recorder: recorder}

	recorder.CreateTable(EpochTable, EpochEntry{})
	recorder.CreateTable(CheckpointTable, CheckpointEntry{})

	return l
}

// Priority returns 100, so run logging fires after the checkpoint hooks at
// the same position.
func (l *RunLog) Priority() int {
	return 100
}

// Func records epoch timing and checkpoint writes.
func (l *RunLog) Func(ctx train.HookCtx) error {
	now := time.Now()

	switch ctx.Pos {
	case train.HookPosBeforeEpoch:
		l.epochStart = now
	case train.HookPosAfterEpoch:
		l.recorder.InsertData(EpochTable, EpochEntry{
			Epoch:           ctx.Item.(int),
			DurationSeconds: now.Sub(l.epochStart).Seconds(),
			RecordedAt:      now.Format(timeFormat),
		})
	case train.HookPosAfterCheckpointSave:
		saved := ctx.Item.(train.SavedCheckpoint)

		l.recorder.InsertData(CheckpointTable, CheckpointEntry{
			Epoch:      saved.Epoch,
			Path:       saved.Path,
			ByteSize:   saved.ByteSize,
			RecordedAt: now.Format(timeFormat),
		})
	}

	return nil
}

// Flush flushes the underlying recorder.
func (l *RunLog) Flush() {
	l.recorder.Flush()
}
