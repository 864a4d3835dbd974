package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/opd-ai/nv21/frame"
	"github.com/opd-ai/nv21/pipeline"
	"github.com/sirupsen/logrus"
)

// CLI configuration
type CLIConfig struct {
	configPath string
	mkconf     bool
	help       bool

	// overrides holds only the flags given on the command line, keyed by
	// their config file names
	overrides map[string]interface{}
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"in":        "input",
	"out":       "output",
	"width":     "width",
	"height":    "height",
	"stride":    "stride",
	"format":    "format",
	"log-level": "log_level",
}

// parseCLIFlags parses command-line arguments and returns the configuration.
func parseCLIFlags(args []string, output io.Writer) (*CLIConfig, error) {
	config := &CLIConfig{overrides: make(map[string]interface{})}
	fs := flag.NewFlagSet("nv21conv", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&config.configPath, "config", "", "YAML config file (default: "+DefaultConfigFileName+" if present)")
	fs.BoolVar(&config.mkconf, "mkconf", false, "Write a sample config file and exit")
	fs.BoolVar(&config.help, "help", false, "Show help message")

	// Frame and output configuration
	fs.String("in", "", "Input NV21 file")
	fs.String("out", "", "Output file")
	fs.Int("width", 0, "Frame width in pixels")
	fs.Int("height", 0, "Frame height in pixels")
	fs.Int("stride", 0, "Bytes per row (default: width)")
	fs.String("format", "", "Output format: nv21, rgba, png or planes")
	fs.String("log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		if getter, ok := f.Value.(flag.Getter); ok {
			config.overrides[key] = getter.Get()
		}
	})

	return config, nil
}

// printUsage prints the usage information.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "nv21conv converts a raw NV21 frame")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  nv21conv [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Settings are read from the YAML config file, then overridden by flags.")
	fmt.Fprintln(w, "Steps (rotate, flip, resize) can only be given in the config file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  # Write a starting config")
	fmt.Fprintln(w, "  nv21conv -mkconf")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Convert a 1280x720 frame to PNG")
	fmt.Fprintln(w, "  nv21conv -in cam.nv21 -width 1280 -height 720 -out cam.png")
}

func setupLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return nil
}

// run converts one frame as described by c.
func run(c Config) error {
	chain, err := pipeline.Build(c.Steps)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	src, err := frame.Wrap(data, c.Width, c.Height, c.Stride)
	if err != nil {
		return fmt.Errorf("input %s: %w", c.Input, err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "run",
		"input":    c.Input,
		"frame":    src.String(),
		"steps":    chain.GetStepNames(),
	}).Info("Processing frame")

	result, err := chain.Apply(src)
	if err != nil {
		return err
	}

	if err := writeOutput(result, c.Format, c.Output); err != nil {
		return fmt.Errorf("writing %s: %w", c.Output, err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "run",
		"output":   c.Output,
		"format":   c.Format,
		"frame":    result.String(),
	}).Info("Frame written")

	return nil
}

func writeOutput(f frame.Frame, format, path string) error {
	switch format {
	case FormatNV21:
		return os.WriteFile(path, f.Clone().Data, 0o644)
	case FormatRGBA:
		rgba, err := pipeline.ToRGBA(f)
		if err != nil {
			return err
		}
		return os.WriteFile(path, rgba, 0o644)
	case FormatPNG:
		rgba, err := pipeline.ToRGBA(f)
		if err != nil {
			return err
		}
		img := &image.RGBA{
			Pix:    rgba,
			Stride: f.Width * 4,
			Rect:   image.Rect(0, 0, f.Width, f.Height),
		}
		out, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(out, img); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	case FormatPlanes:
		y, vu, err := pipeline.SplitPlanes(f)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path+".y", y, 0o644); err != nil {
			return err
		}
		return os.WriteFile(path+".vu", vu, 0o644)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// main is the entry point for the converter.
func main() {
	cliConfig, err := parseCLIFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if cliConfig.help {
		printUsage(os.Stdout)
		os.Exit(0)
	}

	path := cliConfig.configPath
	required := path != ""
	if path == "" {
		path = DefaultConfigFileName
	}

	if cliConfig.mkconf {
		if err := writeConfig(path, sampleConfig()); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		os.Exit(0)
	}

	cfg, err := loadConfig(path, required, cliConfig.overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := setupLogging(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := validateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Use -help for usage information.\n")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "main",
			"error":    err.Error(),
		}).Error("Conversion failed")
		os.Exit(1)
	}
}
