package awards

import "testing"

func TestMonthNumber(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"Oct", 10, true},
		{"OCT.", 10, true},
		{"october", 10, true},
		{"Oct/Nov", 11, true},
		{"oct/nov", 11, true},
		{"Jan", 1, true},
		{"January", 1, true},
		{"May", 5, true},
		{" Dec. ", 12, true},
		{"", 0, false},
		{"Smarch", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := MonthNumber(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("MonthNumber(%q) = (%d, %v), expected (%d, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}
