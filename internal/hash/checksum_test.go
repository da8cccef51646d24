package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	payload := []byte(`{"Matrix":[1,0,0,1,0,0],"Bounds":[0,0,1,1],"Strengths":[1]}`)

	t.Run("Deterministic", func(t *testing.T) {
		require.Equal(t, Checksum(payload), Checksum(payload))
	})

	t.Run("Sensitive to a single byte", func(t *testing.T) {
		changed := append([]byte(nil), payload...)
		changed[len(changed)-3] = '2'
		require.NotEqual(t, Checksum(payload), Checksum(changed))
	})

	t.Run("Known values", func(t *testing.T) {
		require.Equal(t, uint64(0xef46db3751d8e999), Checksum(nil))
		require.Equal(t, uint64(0x4fdcca5ddb678139), Checksum([]byte("test")))
	})
}
