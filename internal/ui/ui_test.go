package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 5, 5))
	assert.Equal(t, "██████████ 100%", ProgressBar(7, 7, 10))
	// never overflows the width
	assert.Equal(t, "█████ 200%", ProgressBar(2, 1, 5))
}
