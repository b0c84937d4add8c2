package project

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest is a loaded grove.toml plus its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the grove.toml schema.
type Config struct {
	Package     PackageConfig     `toml:"package"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
}

type PackageConfig struct {
	Name string `toml:"name"`
	// Src is the source directory, relative to the project root.
	Src string `toml:"src"`
}

type DiagnosticsConfig struct {
	// Max bounds diagnostics collected per run; 0 keeps the default.
	Max int `toml:"max"`
	// Color is "auto", "on", or "off".
	Color string `toml:"color"`
}

// DefaultMaxDiagnostics is used when the manifest does not set one.
const DefaultMaxDiagnostics = 100

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.withDefaults()
	if cfg.Diagnostics.Color != "auto" && cfg.Diagnostics.Color != "on" && cfg.Diagnostics.Color != "off" {
		return nil, fmt.Errorf("%s: diagnostics.color must be auto, on, or off; got %q", path, cfg.Diagnostics.Color)
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// Discover walks up from startDir and loads the nearest manifest.
// ok is false when no grove.toml exists above startDir.
func Discover(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// SrcDir returns the absolute source directory of the project.
func (m *Manifest) SrcDir() string {
	if m.Config.Package.Src == "" {
		return m.Root
	}
	return filepath.Join(m.Root, m.Config.Package.Src)
}

func (c *Config) withDefaults() {
	if c.Diagnostics.Max == 0 {
		c.Diagnostics.Max = DefaultMaxDiagnostics
	}
	if c.Diagnostics.Color == "" {
		c.Diagnostics.Color = "auto"
	}
}
