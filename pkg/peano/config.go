package peano

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ConfigFile is the name FindProjectConfig looks for.
const ConfigFile = "peano.toml"

// ProjectConfig represents a peano.toml file.
type ProjectConfig struct {
	// MaxDepth bounds evaluation nesting. Zero means DefaultMaxDepth.
	MaxDepth int `toml:"max_depth,omitempty"`

	// Jobs is how many programs may be evaluated at once. Zero means one
	// per program.
	Jobs int `toml:"jobs,omitempty"`

	// Programs selects which programs run when none are named.
	Programs []string `toml:"programs,omitempty"`
}

// LoadProjectConfig loads a peano.toml file from the given path.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	var config ProjectConfig
	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parsing %s: unknown keys %v", path, undecoded)
	}
	if config.MaxDepth < 0 {
		return nil, fmt.Errorf("parsing %s: max_depth must not be negative", path)
	}
	if config.Jobs < 0 {
		return nil, fmt.Errorf("parsing %s: jobs must not be negative", path)
	}
	return &config, nil
}

// FindProjectConfig looks for a peano.toml file in dir and then in each of
// its ancestors. The search ends without a result at the first directory
// holding .git, or at the filesystem root.
func FindProjectConfig(dir string) (string, *ProjectConfig, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, err
	}
	for d := abs; ; d = filepath.Dir(d) {
		path := filepath.Join(d, ConfigFile)
		info, err := os.Stat(path)
		switch {
		case err == nil && info.Mode().IsRegular():
			config, err := LoadProjectConfig(path)
			if err != nil {
				return "", nil, err
			}
			return path, config, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", nil, fmt.Errorf("looking for %s: %w", ConfigFile, err)
		}

		if exists(filepath.Join(d, ".git")) || filepath.Dir(d) == d {
			return "", nil, nil
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
