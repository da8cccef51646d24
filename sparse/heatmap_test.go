package sparse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/heatmap/lattice"
)

func TestHeatmap2_Add(t *testing.T) {
	t.Run("Creates and accumulates", func(t *testing.T) {
		h := New2(0, Identity2x3())
		require.Equal(t, int64(3), h.Add(lattice.C2(1, 1), 3))
		require.Equal(t, int64(5), h.Add(lattice.C2(1, 1), 2))
		require.Equal(t, int64(5), h.Get(lattice.C2(1, 1)))
		require.Equal(t, 1, h.Len())
	})

	t.Run("Removes entry when total returns to zero", func(t *testing.T) {
		h := New2(0, Identity2x3())
		h.Add(lattice.C2(0, 0), 4)
		require.Equal(t, int64(0), h.Add(lattice.C2(0, 0), -4))
		require.Equal(t, 0, h.Len())
		require.Equal(t, int64(0), h.Get(lattice.C2(0, 0)))
	})

	t.Run("Crossing zero keeps the entry", func(t *testing.T) {
		h := New2(0, Identity2x3())
		h.Add(lattice.C2(0, 0), 2)
		require.Equal(t, int64(-3), h.Add(lattice.C2(0, 0), -5))
		require.Equal(t, 1, h.Len())
	})

	t.Run("Adding zero to empty cell creates nothing", func(t *testing.T) {
		h := New2(0, Identity2x3())
		require.Equal(t, int64(0), h.Add(lattice.C2(7, 7), 0))
		require.Equal(t, 0, h.Len())
	})
}

func TestHeatmap2_Set(t *testing.T) {
	h := New2(4, Identity2x3())
	h.Set(lattice.C2(1, 2), 9)
	h.Set(lattice.C2(1, 2), 4)
	require.Equal(t, int64(4), h.Get(lattice.C2(1, 2)))

	h.Set(lattice.C2(1, 2), 0)
	require.Equal(t, 0, h.Len())
}

func TestHeatmap2_CellsAndBounds(t *testing.T) {
	h := New2(0, Identity2x3())
	h.Add(lattice.C2(3, 3), 1)
	h.Add(lattice.C2(-3, 0), 1)
	h.Add(lattice.C2(0, -3), 1)
	h.Add(lattice.C2(-3, -3), 1)

	require.Equal(t, []lattice.Cell2{
		lattice.C2(-3, -3), lattice.C2(0, -3), lattice.C2(-3, 0), lattice.C2(3, 3),
	}, h.Cells())
	require.Equal(t, lattice.Rect{X: -3, Y: -3, Width: 7, Height: 7}, h.Bounds())
}

func TestHeatmap2_EqualClone(t *testing.T) {
	h := New2(0, Scale2x3(2, 2, 1, 1))
	h.Add(lattice.C2(1, 2), 3)

	c := h.Clone()
	require.True(t, h.Equal(c))

	c.Add(lattice.C2(1, 2), 1)
	require.False(t, h.Equal(c))

	c = h.Clone()
	c.SetTransform(Identity2x3())
	require.False(t, h.Equal(c))

	var nilMap *Heatmap2
	require.False(t, h.Equal(nilMap))
	require.True(t, nilMap.Equal(nil))
}

func TestHeatmap2_Trim(t *testing.T) {
	h := New2(1000, Identity2x3())
	h.Add(lattice.C2(1, 1), 1)
	h.Trim()

	require.Equal(t, 1, h.Len())
	require.Equal(t, 1, h.hint)
	require.Equal(t, int64(1), h.Get(lattice.C2(1, 1)))
}

func TestNew_CapacityClamped(t *testing.T) {
	h := New2(math.MaxInt, Identity2x3())
	require.Equal(t, MaxInitialCapacity, h.hint)

	h = New2(-5, Identity2x3())
	require.Equal(t, 0, h.hint)
}

func TestHeatmap3_Project(t *testing.T) {
	h := New3(0, Identity4x4())
	h.Add(lattice.C3(1, 2, 0), 3)
	h.Add(lattice.C3(1, 2, 5), 4)
	h.Add(lattice.C3(0, 0, 1), 1)

	p := h.Project(lattice.SwizzleXY)
	require.Equal(t, lattice.SwizzleXY, p.Swizzle())
	require.Equal(t, 2, p.Len())
	require.Equal(t, int64(7), p.Get(lattice.C2(1, 2)))
	require.Equal(t, int64(1), p.Get(lattice.C2(0, 0)))

	p = h.Project(lattice.SwizzleYZ)
	require.Equal(t, 3, p.Len())
	require.Equal(t, int64(4), p.Get3(lattice.C3(99, 2, 5)))
}

func TestHeatmap3to2_Add3(t *testing.T) {
	h := New3to2(0, Identity4x4(), lattice.SwizzleXZ)
	h.Add3(lattice.C3(1, 5, 2), 2)
	h.Add3(lattice.C3(1, -9, 2), 3)

	require.Equal(t, 1, h.Len())
	require.Equal(t, int64(5), h.Get(lattice.C2(1, 2)))

	h.Add3(lattice.C3(1, 0, 2), -5)
	require.Equal(t, 0, h.Len())
}

func TestMatrix_Apply(t *testing.T) {
	m := Scale2x3(2, 3, 10, 20)
	assert.Equal(t, Vec2{X: 12, Y: 26}, m.Apply(lattice.C2(1, 2)))
	assert.Equal(t, Vec2{X: 1, Y: 2}, Identity2x3().Apply(lattice.C2(1, 2)))

	m4 := Identity4x4()
	m4[12], m4[13], m4[14] = 5, 6, 7
	assert.Equal(t, Vec3{X: 6, Y: 8, Z: 10}, m4.Apply(lattice.C3(1, 2, 3)))

	require.True(t, m4.IsFinite())
	m4[0] = math.NaN()
	require.False(t, m4.IsFinite())
	require.False(t, Matrix2x3{math.Inf(1)}.IsFinite())
}
