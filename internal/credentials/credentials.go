// Package credentials stores the generation API key on disk for users who
// do not want to export it in every shell.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const fileName = "credentials.json"

// Info is the saved credential.
type Info struct {
	APIKey    string    `json:"api_key"`
	Source    string    `json:"source"`     // "env" | "file"
	CreatedAt time.Time `json:"created_at"` // when we saved to file
}

// Path returns the credentials file inside dir.
func Path(dir string) string {
	return filepath.Join(dir, fileName)
}

// Load reads the saved key. A missing file returns (nil, nil).
func Load(dir string) (*Info, error) {
	b, err := os.ReadFile(Path(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var info Info
	if err := json.Unmarshal(b, &info); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	info.APIKey = strings.TrimSpace(info.APIKey)
	info.Source = "file"
	return &info, nil
}

// Save writes key to dir with owner-only permissions.
func Save(dir, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("empty key")
	}
	// ensure dir exists with 0700
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(Info{APIKey: key, Source: "file", CreatedAt: time.Now()}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(Path(dir), b, 0o600); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Delete removes the saved key. Missing file is fine.
func Delete(dir string) error {
	if err := os.Remove(Path(dir)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

// Mask hides all but the last four characters.
func Mask(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
