package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	returnFile = "return.json"
	// returnFileVersion is the current schema version of the return-to file.
	returnFileVersion = "1"
)

// ReturnContext remembers the screen an unauthenticated caller originally
// asked for, so the next successful login can send them back there.
type ReturnContext struct {
	Version string    `json:"version"`
	Screen  string    `json:"screen"`
	SavedAt time.Time `json:"saved_at"`
}

// Validate checks the ReturnContext is usable.
func (rc *ReturnContext) Validate() error {
	if rc.Version != returnFileVersion {
		return fmt.Errorf("unsupported return file version: %s (expected %s)", rc.Version, returnFileVersion)
	}
	if rc.Screen == "" {
		return fmt.Errorf("screen is required")
	}
	if !strings.HasPrefix(rc.Screen, "/") {
		return fmt.Errorf("invalid screen %q: must start with /", rc.Screen)
	}
	return nil
}

// ReadReturnTo reads the pending return-to context from dir. A missing file
// returns nil, nil; a corrupted one returns an error.
func ReadReturnTo(dir string) (*ReturnContext, error) {
	data, err := os.ReadFile(filepath.Join(dir, returnFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read return file: %w", err)
	}
	var rc ReturnContext
	if err := json.Unmarshal(data, &rc); err != nil {
		return nil, fmt.Errorf("corrupted return file (invalid JSON): %w", err)
	}
	if err := rc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid return file: %w", err)
	}
	return &rc, nil
}

// WriteReturnTo records the requested screen atomically (temp file + rename)
// so a crash mid-write never leaves a corrupted file behind.
func WriteReturnTo(dir, screen string) error {
	rc := &ReturnContext{Version: returnFileVersion, Screen: screen, SavedAt: time.Now()}
	if err := rc.Validate(); err != nil {
		return fmt.Errorf("invalid return context: %w", err)
	}

	data, err := json.MarshalIndent(rc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal return context: %w", err)
	}

	tmp, err := os.CreateTemp(dir, returnFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(dir, returnFile)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace return file: %w", err)
	}
	return nil
}

// ClearReturnTo removes the pending return-to context, if any.
func ClearReturnTo(dir string) error {
	err := os.Remove(filepath.Join(dir, returnFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove return file: %w", err)
	}
	return nil
}
