package prefabs

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DiskDir is searched before the copies compiled into the binary. Pointing
// it at a working tree lets tuning changes land without a rebuild.
var DiskDir = "prefabs"

//go:embed *.yaml scripts/*.tengo
var bundled embed.FS

// Load reads a yaml prefab such as "boss.yaml".
func Load(name string) ([]byte, error) {
	return read(cleanPrefabPath(name))
}

// LoadScript reads a tengo script. Bare names resolve under scripts/.
func LoadScript(name string) ([]byte, error) {
	return read(cleanScriptPath(name))
}

func read(rel string) ([]byte, error) {
	if rel == "" {
		return nil, fs.ErrNotExist
	}
	data, err := os.ReadFile(filepath.Join(DiskDir, filepath.FromSlash(rel)))
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return bundled.ReadFile(rel)
}

// cleanPrefabPath turns any of "boss.yaml", "prefabs/boss.yaml" or a
// backslashed variant into the path relative to the prefab root.
func cleanPrefabPath(name string) string {
	s := strings.TrimPrefix(filepath.ToSlash(name), "prefabs/")
	if s == "" {
		return ""
	}
	return path.Clean(s)
}

func cleanScriptPath(name string) string {
	s := cleanPrefabPath(name)
	if s == "" {
		return ""
	}
	return path.Join("scripts", strings.TrimPrefix(s, "scripts/"))
}
