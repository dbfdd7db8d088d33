package vtf

import "testing"

func TestComputeMipLevels(t *testing.T) {
	tests := []struct {
		width, height uint16
		noMip         bool
		want          uint8
	}{
		{256, 256, false, 9},
		{1, 1, false, 1},
		{3, 5, false, 2},
		{0, 0, false, 1},
		{4, 4, false, 3},
		{512, 64, false, 7},
		{64, 512, false, 7},
		{0, 256, false, 1},
		{65535, 65535, false, 16},
		{256, 256, true, 1},
		{3, 5, true, 1},
		{0, 0, true, 1},
	}

	for _, tt := range tests {
		got := ComputeMipLevels(tt.width, tt.height, tt.noMip)
		if got != tt.want {
			t.Errorf("ComputeMipLevels(%d, %d, %v): expected %d, got %d",
				tt.width, tt.height, tt.noMip, tt.want, got)
		}
	}
}
