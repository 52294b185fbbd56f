// Package journal appends formatted verse blocks to a plain-text file so a
// session leaves a readable record of everything looked up.
package journal

import (
	"fmt"
	"os"
)

// DefaultPath is the journal file name in the working directory.
const DefaultPath = "verses.txt"

// Append writes block followed by a newline to the file at path, creating it
// if needed. The file is closed before returning.
func Append(path, block string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close journal: %w", cerr)
		}
	}()

	if _, err := fmt.Fprintln(f, block); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}
