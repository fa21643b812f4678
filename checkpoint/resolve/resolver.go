// Package resolve owns the naming convention of checkpoint artifacts and maps
// a directory plus an epoch selector to a concrete file path.
package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// DefaultDir is the checkpoint directory used when no directory is
// configured.
const DefaultDir = "checkpoints"

// Ext is the file extension of checkpoint artifacts.
const Ext = ".ckpt"

// Path returns the deterministic artifact path for a specific epoch.
func Path(dir string, epoch int, suffix string) string {
	return filepath.Join(dir, fmt.Sprintf("epoch_%d%s%s", epoch, suffix, Ext))
}

var artifactNameRegexp = regexp.MustCompile(`^epoch_(\d+)(.*)\.ckpt$`)

// An Entry describes one checkpoint artifact found in a directory.
type Entry struct {
	Epoch    int
	Suffix   string
	Path     string
	ByteSize int64
}

// List returns all checkpoint artifacts in a directory, sorted by ascending
// epoch.
func List(dir string) ([]Entry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	var entries []Entry

	for _, f := range files {
		if f.IsDir() {
			continue
		}

		match := artifactNameRegexp.FindStringSubmatch(f.Name())
		if match == nil {
			continue
		}

		epoch, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}

		entry := Entry{
			Epoch:  epoch,
			Suffix: match[2],
			Path:   filepath.Join(dir, f.Name()),
		}

		if info, err := f.Info(); err == nil {
			entry.ByteSize = info.Size()
		}

		entries = append(entries, entry)
	}

	sortEntries(entries)

	return entries, nil
}

func sortEntries(entries []Entry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j-1].Epoch > entries[j].Epoch; j-- {
			entries[j-1], entries[j] = entries[j], entries[j-1]
		}
	}
}

// A Resolver maps a checkpoint directory and an epoch to a concrete artifact
// path.
type Resolver interface {
	// Latest returns the path of the most recent checkpoint in the
	// directory. It returns a NotFoundError if the directory holds no
	// matching checkpoint.
	Latest(dir string) (string, error)

	// ForEpoch returns the deterministic path of the checkpoint of the
	// given epoch. The path may not exist.
	ForEpoch(dir string, epoch int) string
}

// A FileResolver resolves checkpoints following the epoch_<N><suffix>.ckpt
// naming convention. Only artifacts carrying the configured suffix are
// considered.
type FileResolver struct {
	Suffix string
}

// Latest scans the directory and returns the artifact with the highest epoch.
func (r FileResolver) Latest(dir string) (string, error) {
	entries, err := List(dir)
	if err != nil {
		return "", err
	}

	best := -1
	path := ""

	for _, e := range entries {
		if e.Suffix != r.Suffix {
			continue
		}

		if e.Epoch > best {
			best = e.Epoch
			path = e.Path
		}
	}

	if best < 0 {
		return "", &NotFoundError{Path: dir}
	}

	return path, nil
}

// ForEpoch returns the conventional path for the epoch.
func (r FileResolver) ForEpoch(dir string, epoch int) string {
	return Path(dir, epoch, r.Suffix)
}
