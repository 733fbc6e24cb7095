package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosestMatch(t *testing.T) {
	candidates := []string{"Leaf", "Flower", "upward", "identity"}

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"prefix", "Lef", "Leaf"},
		{"case insensitive", "flwr", "Flower"},
		{"subsequence", "up", "upward"},
		{"no match", "Stem", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClosestMatch(tt.target, candidates))
		})
	}

	assert.Equal(t, "", ClosestMatch("Leaf", nil))
}
