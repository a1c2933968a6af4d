package cli

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/bls2brs/pkg/errors"
)

// configFile is the name of the config file inside the config directory.
const configFile = "config.toml"

// Config holds user defaults read from a TOML file. Flags given on the
// command line always win over it.
//
//	map = "Beta City"
//	author = "Badspot"
//	formats = ["brs", "json"]
//	prefix_description = false
//	cache = true
type Config struct {
	Map               string   `toml:"map"`
	Author            string   `toml:"author"`
	Formats           []string `toml:"formats"`
	PrefixDescription *bool    `toml:"prefix_description"`
	Cache             *bool    `toml:"cache"`
}

func (c Config) prefixEnabled() bool { return c.PrefixDescription == nil || *c.PrefixDescription }
func (c Config) cacheEnabled() bool  { return c.Cache == nil || *c.Cache }

// loadConfig reads the config at path. An empty path means the default
// location, which may be absent; an explicit path must exist.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		if stderrors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config")
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
