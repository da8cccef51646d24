package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type renderConfig struct {
	layer   int
	palette string
	calls   []string
}

var errNegativeLayer = errors.New("negative layer")

func withLayer(layer int) Option[*renderConfig] {
	return New(func(c *renderConfig) error {
		if layer < 0 {
			return errNegativeLayer
		}
		c.layer = layer
		c.calls = append(c.calls, "layer")

		return nil
	})
}

func withPalette(name string) Option[*renderConfig] {
	return NoError(func(c *renderConfig) {
		c.palette = name
		c.calls = append(c.calls, "palette")
	})
}

func TestApply(t *testing.T) {
	t.Run("Applies in order", func(t *testing.T) {
		cfg := &renderConfig{}
		err := Apply(cfg, withPalette("heat"), withLayer(3), withPalette("gray"))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.layer)
		require.Equal(t, "gray", cfg.palette)
		require.Equal(t, []string{"palette", "layer", "palette"}, cfg.calls)
	})

	t.Run("Stops at first error", func(t *testing.T) {
		cfg := &renderConfig{}
		err := Apply(cfg, withLayer(-1), withPalette("heat"))
		require.ErrorIs(t, err, errNegativeLayer)
		require.Empty(t, cfg.palette)
		require.Empty(t, cfg.calls)
	})

	t.Run("No options", func(t *testing.T) {
		cfg := &renderConfig{layer: 7}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 7, cfg.layer)
	})
}
