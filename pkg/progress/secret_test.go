package progress

import "testing"

func TestIsSecretCode(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"cappuccino", true},
		{"  CapPuccino ", true},
		{"cap puc cino", true},
		{"cappuccino!", false},
		{"xcappuccino", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSecretCode(tt.text); got != tt.want {
			t.Errorf("IsSecretCode(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
