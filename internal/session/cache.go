package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

const sessionFile = "session.json"

// Cache mirrors the last-known identity to disk so the next run can paint
// instantly. It is a hint only: the boot-time resolve is the source of truth
// and will overwrite or clear it. The Store is the only writer.
type Cache struct {
	path string
}

// NewCache creates a cache rooted at dir, defaulting to ~/.hbctl.
func NewCache(dir string) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		dir = filepath.Join(home, ".hbctl")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{path: filepath.Join(dir, sessionFile)}, nil
}

// Dir returns the directory the cache lives in.
func (c *Cache) Dir() string {
	return filepath.Dir(c.path)
}

// Save writes the identity snapshot.
func (c *Cache) Save(identity *sdk.Identity) error {
	data, err := json.MarshalIndent(identity, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal identity: %w", err)
	}
	return os.WriteFile(c.path, data, 0600)
}

// Load reads the cached identity. A missing file is not an error; it simply
// means there is no hint.
func (c *Cache) Load() (*sdk.Identity, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	var identity sdk.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session file: %w", err)
	}
	return &identity, nil
}

// Delete removes the snapshot. Deleting an absent snapshot is a no-op.
func (c *Cache) Delete() error {
	if _, err := os.Stat(c.path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(c.path)
}
