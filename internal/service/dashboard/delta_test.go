package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	cases := []struct {
		name     string
		current  int
		previous int
		want     float64
	}{
		{"growth", 15, 10, 50},
		{"drop", 5, 10, -50},
		{"flat", 10, 10, 0},
		{"zero previous positive current saturates", 7, 0, 100},
		{"zero previous zero current", 0, 0, 0},
		{"to zero", 0, 4, -100},
		{"fractional result unrounded", 1, 3, float64(1-3) / 3 * 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PercentChange(tc.current, tc.previous))
		})
	}
}
