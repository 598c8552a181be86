package util

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Configuration carries everything the binary needs to run one simulation.
// Build metadata is injected by the linker; the rest comes from defaults,
// an optional TOML file, and command line flags, in that order.
type Configuration struct {
	Version   string `toml:"-"`
	BuildDate string `toml:"-"`
	Commit    string `toml:"-"`

	Model      string   `toml:"model"`
	Seed       int64    `toml:"seed"`
	MaxSteps   int      `toml:"max_steps"`
	MaxRuns    int      `toml:"max_runs"`
	Invariants []string `toml:"invariants"`

	ArchiveDriver string `toml:"archive_driver"`
	ArchiveDSN    string `toml:"archive_dsn"`

	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

func DefaultConfiguration() Configuration {
	return Configuration{
		Model:    "counter",
		MaxSteps: 20,
		MaxRuns:  100,
		LogLevel: "error",
	}
}

// LoadConfiguration overlays the TOML file at path on top of cfg. Keys
// absent from the file keep their current values.
func LoadConfiguration(path string, cfg *Configuration) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	return nil
}
