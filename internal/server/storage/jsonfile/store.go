// Package jsonfile implements the storage interfaces on top of flat JSON
// files. Each store keeps its records in memory, loads them once at
// startup, and rewrites the whole file on every mutation. An in-process
// mutex guards the slice; separate processes writing the same file still
// race and the last flush wins.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
)

// load reads the JSON file at path into dst. A missing file is not an
// error: the store starts empty and the file is created on first flush.
func load(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}

// flush rewrites the whole file from src. The data goes to a temp file
// first and is renamed into place so a crash mid-write cannot leave a
// truncated store behind.
func flush(path string, src interface{}) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
