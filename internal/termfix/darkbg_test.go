package termfix

import "testing"

func TestDarkBackground(t *testing.T) {
	t.Parallel()

	tests := []struct {
		theme string
		want  bool
	}{
		{"", true},
		{"dark", true},
		{"auto", true},
		{"light", false},
		{" Light ", false},
	}
	for _, tt := range tests {
		if got := darkBackground(tt.theme); got != tt.want {
			t.Errorf("darkBackground(%q) = %v, want %v", tt.theme, got, tt.want)
		}
	}
}
