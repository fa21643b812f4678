package train

import (
	"log"
	"os"

	"github.com/rs/xid"
)

// Builder can be used to build a trainer.
type Builder struct {
	runner EpochRunner
	logger *log.Logger
	codec  Codec
}

// MakeBuilder creates a new builder with the default codec and logger.
func MakeBuilder() Builder {
	return Builder{
		codec:  JSONCodec{},
		logger: log.New(os.Stderr, "", log.LstdFlags),
	}
}

// WithEpochRunner sets the runner that executes each training epoch.
func (b Builder) WithEpochRunner(r EpochRunner) Builder {
	b.runner = r
	return b
}

// WithLogger sets the logger used for trainer records.
func (b Builder) WithLogger(l *log.Logger) Builder {
	b.logger = l
	return b
}

// WithCodec sets the codec used to encode checkpoint artifacts.
func (b Builder) WithCodec(c Codec) Builder {
	b.codec = c
	return b
}

// Build builds the trainer.
func (b Builder) Build() *Trainer {
	t := &Trainer{
		HookableBase: NewHookableBase(),
		id:           xid.New().String(),
		logger:       b.logger,
		codec:        b.codec,
		runner:       b.runner,
		states:       make(map[string]State),
	}

	return t
}
