package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	charmlog "github.com/charmbracelet/log"

	"github.com/arloliu/heatmap"
	"github.com/arloliu/heatmap/format"
)

// Config holds the defaults read from a --config TOML file.
//
// Example:
//
//	compression = "zstd"
//	endian = "little"
//	checksum = true
//	log_level = "debug"
//
//	[render]
//	palette = ["236", "24", "31", "37", "220", "196"]
//	axis = "z=0"
type Config struct {
	Compression string       `toml:"compression"`
	Endian      string       `toml:"endian"`
	Checksum    *bool        `toml:"checksum"`
	LogLevel    string       `toml:"log_level"`
	Render      RenderConfig `toml:"render"`
}

// RenderConfig holds the defaults of the render command.
type RenderConfig struct {
	Palette []string `toml:"palette"`
	Axis    string   `toml:"axis"`
}

// loadConfig reads the TOML file at path. An empty path yields the zero Config.
// Unknown keys are rejected so typos do not go unnoticed.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return Config{}, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if _, err := format.ParseCompressionType(c.Compression); err != nil {
		return err
	}
	switch c.Endian {
	case "", "little", "big":
	default:
		return fmt.Errorf("endian must be \"little\" or \"big\", got %q", c.Endian)
	}
	if c.LogLevel != "" {
		if _, err := charmlog.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	if c.Render.Axis != "" {
		if _, err := parseAxis(c.Render.Axis); err != nil {
			return err
		}
	}

	return nil
}

// logLevel resolves the effective log level. --verbose always selects debug.
func (c Config) logLevel(verbose bool) charmlog.Level {
	if verbose {
		return charmlog.DebugLevel
	}
	if lvl, err := charmlog.ParseLevel(c.LogLevel); err == nil && c.LogLevel != "" {
		return lvl
	}

	return charmlog.InfoLevel
}

// saveFlags are the envelope flags shared by gen and convert. An empty
// compression means "not given on the command line".
type saveFlags struct {
	compression string
	bigEndian   bool
	noChecksum  bool
}

// saveOptions merges the file defaults with the command line flags.
func (c Config) saveOptions(f saveFlags) ([]heatmap.SaveOption, error) {
	name := c.Compression
	if f.compression != "" {
		name = f.compression
	}
	comp, err := format.ParseCompressionType(name)
	if err != nil {
		return nil, err
	}

	opts := []heatmap.SaveOption{heatmap.WithCompression(comp)}
	if f.bigEndian || c.Endian == "big" {
		opts = append(opts, heatmap.WithBigEndian())
	}

	checksum := c.Checksum == nil || *c.Checksum
	if f.noChecksum {
		checksum = false
	}
	opts = append(opts, heatmap.WithChecksum(checksum))

	return opts, nil
}

func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the Config attached by the root command, or the
// zero Config.
func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}

	return Config{}
}
