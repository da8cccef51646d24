package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/heatmap"
	"github.com/arloliu/heatmap/errs"
	"github.com/arloliu/heatmap/format"
	"github.com/arloliu/heatmap/lattice"
	"github.com/arloliu/heatmap/sparse"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "heatmapctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("Empty path", func(t *testing.T) {
		cfg, err := loadConfig("")
		require.NoError(t, err)
		require.Equal(t, Config{}, cfg)
	})

	t.Run("All keys", func(t *testing.T) {
		path := writeConfig(t, `
compression = "lz4"
endian = "big"
checksum = false
log_level = "warn"

[render]
palette = ["1", "#ff0000"]
axis = "y=-2"
`)
		cfg, err := loadConfig(path)
		require.NoError(t, err)
		require.Equal(t, "lz4", cfg.Compression)
		require.Equal(t, "big", cfg.Endian)
		require.NotNil(t, cfg.Checksum)
		require.False(t, *cfg.Checksum)
		require.Equal(t, charmlog.WarnLevel, cfg.logLevel(false))
		require.Equal(t, charmlog.DebugLevel, cfg.logLevel(true))
		require.Equal(t, []string{"1", "#ff0000"}, cfg.Render.Palette)
		require.Equal(t, "y=-2", cfg.Render.Axis)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err)
	})

	invalid := []struct {
		name    string
		content string
		want    string
	}{
		{"Unknown key", `compresion = "zstd"`, "unknown config keys"},
		{"Bad compression", `compression = "gzip"`, "invalid compression"},
		{"Bad endian", `endian = "middle"`, "endian"},
		{"Bad log level", `log_level = "loud"`, "invalid config"},
		{"Bad axis", "[render]\naxis = \"w=1\"", "unknown axis"},
		{"Not TOML", `compression = `, "failed to read config"},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content))
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestConfig_SaveOptions(t *testing.T) {
	h := sparse.New2(0, sparse.Identity2x3())
	h.Add(lattice.C2(1, 1), 3)

	header := func(t *testing.T, cfg Config, flags saveFlags) (format.CompressionType, bool, bool) {
		t.Helper()

		opts, err := cfg.saveOptions(flags)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, heatmap.Save(context.Background(), &buf, h, opts...))
		hdr, err := heatmap.Peek(&buf)
		require.NoError(t, err)

		return hdr.Flag.Compression, hdr.Flag.IsBigEndian(), hdr.Flag.HasChecksum()
	}

	t.Run("Defaults", func(t *testing.T) {
		comp, big, sum := header(t, Config{}, saveFlags{})
		require.Equal(t, format.CompressionNone, comp)
		require.False(t, big)
		require.True(t, sum)
	})

	off := false
	cfg := Config{Compression: "zstd", Endian: "big", Checksum: &off}

	t.Run("File values", func(t *testing.T) {
		comp, big, sum := header(t, cfg, saveFlags{})
		require.Equal(t, format.CompressionZstd, comp)
		require.True(t, big)
		require.False(t, sum)
	})

	t.Run("Flags override file", func(t *testing.T) {
		comp, _, _ := header(t, cfg, saveFlags{compression: "s2"})
		require.Equal(t, format.CompressionS2, comp)
	})

	t.Run("Invalid flag", func(t *testing.T) {
		_, err := Config{}.saveOptions(saveFlags{compression: "brotli"})
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})
}
