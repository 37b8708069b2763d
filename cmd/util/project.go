package util

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ProjectDir returns the absolute project directory named by the first
// argument, or the working directory when there is none.
func ProjectDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "resolving project directory %s", dir)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.Wrap(err, "reading project directory")
	}
	if !info.IsDir() {
		return "", errors.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}
