package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/opd-ai/nv21/pipeline"
	yml "gopkg.in/yaml.v2"
)

// DefaultConfigFileName is read when no -config flag is given.
const DefaultConfigFileName = "nv21conv.yml"

// Output formats.
const (
	FormatNV21   = "nv21"
	FormatRGBA   = "rgba"
	FormatPNG    = "png"
	FormatPlanes = "planes"
)

// Config is the conversion job, merged from defaults, the YAML file and flags.
type Config struct {
	Input    string                `koanf:"input" yaml:"input"`
	Output   string                `koanf:"output" yaml:"output"`
	Width    int                   `koanf:"width" yaml:"width"`
	Height   int                   `koanf:"height" yaml:"height"`
	Stride   int                   `koanf:"stride" yaml:"stride"`
	Format   string                `koanf:"format" yaml:"format"`
	LogLevel string                `koanf:"log_level" yaml:"log_level"`
	Steps    []pipeline.StepConfig `koanf:"steps" yaml:"steps"`
}

func defaultConfig() Config {
	return Config{
		Input:    "frame.nv21",
		Output:   "out.png",
		Width:    640,
		Height:   480,
		Format:   FormatPNG,
		LogLevel: "info",
	}
}

// sampleConfig is what -mkconf writes: the defaults plus an example chain.
func sampleConfig() Config {
	c := defaultConfig()
	c.Steps = []pipeline.StepConfig{
		{Op: pipeline.OpRotate, Degrees: 90},
		{Op: pipeline.OpFlip, Axis: "horizontal"},
		{Op: pipeline.OpResize, Width: 240, Height: 320},
	}
	return c
}

// loadConfig layers the defaults, the YAML file at path and the explicitly
// set flag values in overrides, in that order. A missing file is not an
// error unless required is set.
func loadConfig(path string, required bool, overrides map[string]interface{}) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return Config{}, fmt.Errorf("applying flags: %w", err)
		}
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if c.Stride == 0 {
		c.Stride = c.Width
	}
	c.Format = strings.ToLower(c.Format)
	return c, nil
}

// validateConfig checks the fields the converter needs before any file I/O.
func validateConfig(c Config) error {
	if c.Input == "" {
		return fmt.Errorf("input path cannot be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	switch c.Format {
	case FormatNV21, FormatRGBA, FormatPNG, FormatPlanes:
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if _, err := pipeline.Build(c.Steps); err != nil {
		return err
	}
	return nil
}

// writeConfig writes c as YAML to path.
func writeConfig(path string, c Config) error {
	bs, err := yml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, bs, 0o644)
}
