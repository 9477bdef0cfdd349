// Package config provides configuration management for the tacloc CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	Output   string   `koanf:"output"`
	ASCII    bool     `koanf:"ascii"`
	Verbose  bool     `koanf:"verbose"`
	LogLevel string   `koanf:"log_level"`
	Workers  int      `koanf:"workers"`
	Reserved []string `koanf:"reserved"`

	// ProjectRoot is the directory holding the config file, or the working
	// directory when none was found.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultOutput   = "auto" // Auto-detect: TTY=text, non-TTY=json
	DefaultLogLevel = "warn"
	DefaultWorkers  = 0 // GOMAXPROCS
)

// ConfigFileNames are the file names searched for, in order.
var ConfigFileNames = []string{"tacloc.yaml", "tacloc.yml"}
