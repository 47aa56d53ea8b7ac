package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceWindow(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		limit     int
		offset    int
		wantStart int
		wantEnd   int
	}{
		{"first full page", 10, 3, 0, 0, 3},
		{"middle page", 10, 3, 3, 3, 6},
		{"final partial page", 10, 3, 9, 9, 10},
		{"offset at end", 10, 3, 10, 10, 10},
		{"offset past end", 10, 3, 50, 10, 10},
		{"zero limit takes the tail", 10, 0, 4, 4, 10},
		{"negative limit takes the tail", 10, -1, 4, 4, 10},
		{"negative offset clamps to start", 10, 3, -5, 0, 3},
		{"empty list", 0, 3, 0, 0, 0},
		{"limit larger than list", 4, 100, 0, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := SliceWindow(tt.length, tt.limit, tt.offset)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
