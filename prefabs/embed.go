package prefabs

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultScene is the name of the scene file shipped with the binary.
const DefaultScene = "scene.yaml"

//go:embed *.yaml
var PrefabsFS embed.FS

// Load reads a prefab file. A copy under dir on disk wins over the embedded
// one, so a scene can be tuned without rebuilding. Only a missing disk copy
// falls back; any other read error is returned.
func Load(dir, name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if dir != "" {
		data, err := os.ReadFile(diskPrefabPath(dir, clean))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return PrefabsFS.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	for _, prefix := range []string{"prefabs/", "assets/"} {
		if after, ok := strings.CutPrefix(s, prefix); ok {
			return after
		}
	}
	return s
}

func diskPrefabPath(dir, clean string) string {
	return filepath.Join(dir, filepath.FromSlash(clean))
}
