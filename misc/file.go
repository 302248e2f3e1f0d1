package misc

import (
	"errors"
	"fmt"
	"os"
)

// EnsureDirectory creates the directory and any missing parents. An already existing directory is not an error.
func EnsureDirectory(path string) error {
	if path == "" {
		return errors.New("no directory supplied")
	}
	err := os.MkdirAll(path, os.ModePerm)
	if err != nil {
		return fmt.Errorf("unable to create directory %s - %s", path, err)
	}
	return nil
}
