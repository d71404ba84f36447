package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeters(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"London to Paris rounds up", 343561.9834, "343.6 km"},
		{"Precision eight cell height", 19.09, "19.1 m"},
		{"Rounds down below the half", 38.14, "38.1 m"},
		{"Whole kilometres drop the decimal", 2000, "2 km"},
		{"Zero", 0, "0 m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, meters(tt.input))
		})
	}
}

func TestMapsURL(t *testing.T) {
	assert.Equal(t, "https://www.google.com/maps?q=31.235761642456055,30.04434585571289",
		mapsURL(31.235761642456055, 30.04434585571289))
	assert.Equal(t, "https://www.google.com/maps?q=-33.5,151", mapsURL(-33.5, 151))
}

func TestDescribeCell(t *testing.T) {
	ns, ew, err := cellExtent(8, 0)
	require.NoError(t, err)
	assert.InDelta(t, 19.09, ns, 0.01)
	assert.InDelta(t, 38.18, ew, 0.01)
	assert.Equal(t, "19.1 m × 38.2 m", describeCell(8, 0))
	assert.Equal(t, "unknown", describeCell(12, 0))
}
