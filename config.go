package hyperview

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// FourDimensional selects the hypercube instead of the cube.
	FourDimensional bool `yaml:"four_dimensional"`
	// InitialRotation is the one-off X-W rotation of the hypercube, in degrees.
	InitialRotation float64 `yaml:"initial_rotation"`

	Window WindowConfig `yaml:"window"`
	Render RenderConfig `yaml:"render"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type RenderConfig struct {
	Faces         bool    `yaml:"faces"`
	Lines         bool    `yaml:"lines"`
	CullBackfaces bool    `yaml:"cull_backfaces"`
	LineWidth     float32 `yaml:"line_width"`
}

func DefaultConfig() Config {
	return Config{
		FourDimensional: false,
		InitialRotation: 45,
		Window: WindowConfig{
			Width:  640,
			Height: 480,
			Title:  "hyperview",
			TPS:    60,
		},
		Render: RenderConfig{
			Faces:     true,
			Lines:     true,
			LineWidth: 1.5,
		},
	}
}

// LoadConfig reads YAML from r on top of DefaultConfig. Keys missing from the
// document keep their default values.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile is LoadConfig for a file path. A missing file yields the
// default configuration.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			Logger().Debug("config file not found, using defaults", "path", path)
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("could not open config file %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("invalid tps %d", c.Window.TPS)
	}
	if c.Render.LineWidth < 0 {
		return fmt.Errorf("invalid line width %v", c.Render.LineWidth)
	}
	return nil
}

// New builds the mesh selected by cfg.
func New(cfg Config) (Mesh, error) {
	if cfg.FourDimensional {
		h, err := NewHypercube(cfg.InitialRotation)
		if err != nil {
			return nil, err
		}
		return h, nil
	}

	c, err := NewCube()
	if err != nil {
		return nil, err
	}
	return c, nil
}
