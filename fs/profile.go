// Package fs loads and saves plain-text profile documents on the local
// filesystem.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	ghostwriter "github.com/Molefas/ghost-writer"
)

var _ ghostwriter.ProfileLoader = (*ProfileLoader)(nil)

// ProfileLoader reads a profile document such as the interest or voice
// profile from Path.
type ProfileLoader struct {
	Path string
}

// NewProfileLoader creates a ProfileLoader for path.
func NewProfileLoader(path string) *ProfileLoader {
	return &ProfileLoader{Path: path}
}

// Load returns the profile text. A missing file is an empty profile.
func (l *ProfileLoader) Load(ctx context.Context) (string, error) {
	if l.Path == "" {
		return "", nil
	}
	data, err := os.ReadFile(l.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	} else if err != nil {
		return "", ghostwriter.Errorf(ghostwriter.EPERSIST, "read profile %s: %v", l.Path, err)
	}
	return string(data), nil
}

// Save replaces the profile text. The file is written to a temporary
// sibling and renamed into place so readers never see a partial profile.
func (l *ProfileLoader) Save(ctx context.Context, text string) error {
	if l.Path == "" {
		return ghostwriter.Errorf(ghostwriter.EINVALID, "profile path required")
	}
	if err := os.MkdirAll(filepath.Dir(l.Path), 0o755); err != nil {
		return ghostwriter.Errorf(ghostwriter.EPERSIST, "create profile directory: %v", err)
	}

	tmp := l.Path + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0o644); err != nil {
		return ghostwriter.Errorf(ghostwriter.EPERSIST, "write profile %s: %v", l.Path, err)
	}
	if err := os.Rename(tmp, l.Path); err != nil {
		_ = os.Remove(tmp)
		return ghostwriter.Errorf(ghostwriter.EPERSIST, "replace profile %s: %v", l.Path, err)
	}
	return nil
}
