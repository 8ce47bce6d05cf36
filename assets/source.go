package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DefaultDir is where the game looks for its images, music and scene file.
const DefaultDir = "assets"

// Source reads assets by assets-relative name.
type Source struct {
	fsys fs.FS
}

// Dir returns a Source backed by the directory dir on disk.
func Dir(dir string) *Source {
	return &Source{fsys: os.DirFS(dir)}
}

// FromFS returns a Source backed by fsys.
func FromFS(fsys fs.FS) *Source {
	return &Source{fsys: fsys}
}

// LoadFile reads an asset by assets-relative path.
func (s *Source) LoadFile(name string) ([]byte, error) {
	if s == nil || s.fsys == nil {
		return nil, fmt.Errorf("assets: read %q: no source", name)
	}
	clean := cleanAssetPath(name)
	if clean == "" {
		return nil, fmt.Errorf("assets: read %q: %w", name, fs.ErrInvalid)
	}
	b, err := fs.ReadFile(s.fsys, clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", clean, err)
	}
	return b, nil
}

// LoadImage reads and decodes an image asset.
func (s *Source) LoadImage(name string) (image.Image, error) {
	b, err := s.LoadFile(name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}

// Exists reports whether name can be opened.
func (s *Source) Exists(name string) bool {
	if s == nil || s.fsys == nil {
		return false
	}
	_, err := fs.Stat(s.fsys, cleanAssetPath(name))
	return err == nil
}

// IsNotExist reports whether err came from a missing asset.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		s := filepath.ToSlash(p)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return path.Clean(s[idx+len("/assets/"):])
		}
		return path.Base(s)
	}
	s := filepath.ToSlash(p)
	s = strings.TrimPrefix(s, "./")
	s = strings.TrimPrefix(s, "assets/")
	return path.Clean(s)
}
