package poisson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type xy struct {
	X, Y float64
}

func TestMap(t *testing.T) {
	toXY := func(p Point) xy { return xy{X: p[0], Y: p[1]} }

	t.Run("Lazy", func(t *testing.T) {
		// mapping composes with the pull protocol: taking 3 converted
		// points advances the engine exactly 3 points
		it, err := New2D().WithSeed(21).Iter()
		require.NoError(t, err)
		m := Map(it, toXY)

		var got []xy
		for i := 0; i < 3; i++ {
			v, ok := m.Next()
			require.True(t, ok)
			got = append(got, v)
		}

		want, err := New2D().WithSeed(21).Generate()
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			assert.Equal(t, toXY(want[i]), got[i])
		}
	})

	t.Run("Collect", func(t *testing.T) {
		it, err := New2D().WithSeed(21).Iter()
		require.NoError(t, err)
		converted := Map(it, toXY).Collect()

		pts, err := New2D().WithSeed(21).Generate()
		require.NoError(t, err)

		require.Equal(t, len(pts), len(converted))
		for i, p := range pts {
			assert.Equal(t, toXY(p), converted[i])
		}
	})

	t.Run("ExhaustedReportsDone", func(t *testing.T) {
		it, err := New2D().WithRadius(0.5).WithSeed(2).Iter()
		require.NoError(t, err)
		m := Map(it, toXY)
		for _, ok := m.Next(); ok; _, ok = m.Next() {
		}
		_, ok := m.Next()
		assert.False(t, ok)
	})
}

func TestForEach(t *testing.T) {
	it, err := New2D().WithSeed(8).Iter()
	require.NoError(t, err)

	n := 0
	ForEach(it, func(p Point) {
		require.Len(t, []float64(p), 2)
		n++
	})

	pts, err := New2D().WithSeed(8).Generate()
	require.NoError(t, err)
	assert.Equal(t, len(pts), n)
}
