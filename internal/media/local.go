package media

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrExists is returned when a key is already taken.
var ErrExists = errors.New("media: object exists")

// Local stores objects under Dir and serves them from BaseURL.  It is the
// development backend; cmd/web exposes Dir as a static file tree.
type Local struct {
	Dir     string
	BaseURL string
}

// Put writes body to Dir/key.  Existing files are not replaced.
func (l *Local) Put(_ context.Context, key, _ string, body []byte) (string, error) {
	path := filepath.Join(l.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", ErrExists
		}
		return "", err
	}
	if _, err := f.Write(body); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return strings.TrimRight(l.BaseURL, "/") + "/" + key, nil
}
