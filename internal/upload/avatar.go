// Package upload saves user avatar images under the public static
// directory.
package upload

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// AvatarStore writes uploaded avatars to a base directory served as
// static assets.
type AvatarStore struct {
	dir string
}

// NewAvatarStore creates the base directory if missing.
func NewAvatarStore(dir string) (*AvatarStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("avatar dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create avatar dir: %w", err)
	}
	return &AvatarStore{dir: dir}, nil
}

// Save stores the uploaded file and returns its stored filename.
// Files without an allowed image extension are rejected silently: the
// returned filename is empty and no error is reported. The stored name
// is <username>_<content hash prefix><ext>, deterministic across
// repeated uploads of the same image and free of path characters.
func (a *AvatarStore) Save(username string, fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	sum := sha256.Sum256(content)
	name := sanitize(username) + "_" + hex.EncodeToString(sum[:])[:12] + ext

	if err := os.WriteFile(filepath.Join(a.dir, name), content, 0o644); err != nil {
		return "", fmt.Errorf("write avatar: %w", err)
	}
	return name, nil
}

// sanitize strips path separators and traversal characters from a
// name fragment.
func sanitize(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer("/", "_", "\\", "_", "..", "_", " ", "_")
	name = replacer.Replace(name)
	if name == "" || name == "." {
		return "user"
	}
	return name
}
