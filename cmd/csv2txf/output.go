package main

import (
	"github.com/google/renameio/v2"
)

// writeFileAtomic replaces path with data in one step, so a failed run never
// leaves a truncated output behind.
func writeFileAtomic(path string, data []byte) error {
	return renameio.WriteFile(path, data, 0644)
}
