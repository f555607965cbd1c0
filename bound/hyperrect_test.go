package bound

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/npillmayer/spacetree/codec"
)

func TestEmptyHyperrectGrows(t *testing.T) {
	h := EmptyHyperrect(2)
	require.True(t, math.IsInf(h.Min()[0], 1))
	h.Grow([]float64{1, 2})
	require.Equal(t, []float64{1, 2}, h.Min())
	require.Equal(t, []float64{1, 2}, h.Max())
	h.Grow([]float64{-1, 5})
	require.Equal(t, []float64{-1, 2}, h.Min())
	require.Equal(t, []float64{1, 5}, h.Max())
}

func TestGrowBound(t *testing.T) {
	a := EmptyHyperrect(2)
	a.Grow([]float64{0, 0})
	b := EmptyHyperrect(2)
	b.Grow([]float64{3, -2})
	a.GrowBound(b)
	require.Equal(t, []float64{0, -2}, a.Min())
	require.Equal(t, []float64{3, 0}, a.Max())
}

func TestContains(t *testing.T) {
	h := EmptyHyperrect(2)
	h.Grow([]float64{0, 0})
	h.Grow([]float64{2, 2})
	require.True(t, h.Contains([]float64{1, 1}))
	require.True(t, h.Contains([]float64{0, 2})) // border inclusive
	require.False(t, h.Contains([]float64{3, 1}))
}

func TestCenterAndWidth(t *testing.T) {
	h := EmptyHyperrect(2)
	h.Grow([]float64{0, 1})
	h.Grow([]float64{4, 3})
	require.Equal(t, []float64{2, 2}, h.Center())
	require.Equal(t, 4.0, h.Width(0))
	require.Equal(t, 2.0, h.Width(1))
	require.Equal(t, 0, h.WidestDim())
}

func TestMinDistance(t *testing.T) {
	h := EmptyHyperrect(2)
	h.Grow([]float64{0, 0})
	h.Grow([]float64{1, 1})
	require.Equal(t, 0.0, h.MinDistance([]float64{0.5, 0.5}))
	require.Equal(t, 2.0, h.MinDistance([]float64{3, 1}))
	require.InDelta(t, math.Sqrt(2), h.MinDistance([]float64{2, 2}), 1e-12)
}

func TestHyperrectCodecRoundTrip(t *testing.T) {
	h := EmptyHyperrect(3)
	h.Grow([]float64{1, -2, 0.5})
	h.Grow([]float64{4, 0, 2})

	var buf bytes.Buffer
	require.NoError(t, HyperrectCodec{}.Serialize(codec.NewEncoder(&buf), h))
	re, err := HyperrectCodec{}.Deserialize(codec.NewDecoder(&buf))
	require.NoError(t, err)
	require.Equal(t, h.Min(), re.Min())
	require.Equal(t, h.Max(), re.Max())
}

func TestBoundMagicsDiffer(t *testing.T) {
	require.NotEqual(t, HyperrectCodec{}.Magic(), BallCodec{}.Magic())
}
