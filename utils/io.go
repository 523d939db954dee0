package utils

import (
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

func init() {
	checkCompiler()
}

// Enforces a 64bit machine due to assumptions about size of ints.
func checkCompiler() {
	myInt := int(math.MaxInt64) // Shouldn't compile on a 32 bit system.
	myInt64 := int64(math.MaxInt64)
	if uint64(myInt) != uint64(myInt64) {
		panic("Must be on 64 bit system.")
	}
}

func OpenFile(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	return file, nil
}

// CreateFile creates path, and its parent directory if needed.
func CreateFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create directory: %s", dir)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create file: %s", path)
	}
	return file, nil
}
