package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_Symmetric(t *testing.T) {
	cases := []struct {
		lat1, lon1, lat2, lon2 float64
	}{
		{-6.2000, 106.8167, -6.9175, 107.6191}, // Jakarta - Bandung
		{-6.2000, 106.8167, -6.2000, 106.8168},
		{0, 0, 51.5074, -0.1278},
	}
	for _, c := range cases {
		ab := Distance(c.lat1, c.lon1, c.lat2, c.lon2)
		ba := Distance(c.lat2, c.lon2, c.lat1, c.lon1)
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestDistance_SamePointIsZero(t *testing.T) {
	assert.Zero(t, Distance(-6.2000, 106.8167, -6.2000, 106.8167))
	assert.Zero(t, Distance(0, 0, 0, 0))
}

func TestEvaluate_InsideRadius(t *testing.T) {
	// Office in central Jakarta, employee one ten-thousandth of a degree of
	// longitude away: roughly 11 meters.
	v := Evaluate(-6.2000, 106.8168, -6.2000, 106.8167, 100)

	assert.InDelta(t, 11.0, v.DistanceMeters, 0.5)
	assert.True(t, v.WithinRadius)
}

func TestEvaluate_OutsideRadius(t *testing.T) {
	// Same point but a 10 meter radius.
	v := Evaluate(-6.2000, 106.8168, -6.2000, 106.8167, 10)

	assert.False(t, v.WithinRadius)
}

func TestEvaluate_BoundaryIsInside(t *testing.T) {
	v := Evaluate(-6.2000, 106.8167, -6.2000, 106.8167, 0)

	assert.True(t, v.WithinRadius)
}
