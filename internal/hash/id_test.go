package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, Range(3, 9), Range(3, 9))
	})

	t.Run("distinguishes bounds", func(t *testing.T) {
		assert.NotEqual(t, Range(3, 9), Range(9, 3))
		assert.NotEqual(t, Range(3, 9), Range(3, 10))
	})

	t.Run("zero range is stable", func(t *testing.T) {
		assert.Equal(t, Range(0, 0), Range(0, 0))
	})
}

func BenchmarkRange(b *testing.B) {
	for b.Loop() {
		Range(1234, 5678)
	}
}
