package cmd

import (
	"fmt"
	"os"

	"github.com/qecsim/qecsimext/qec"
)

// saveRunData writes data as JSON to path. Existing files are never overwritten.
func saveRunData(path string, data []*qec.RunData) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := qec.WriteRunData(f, data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}
