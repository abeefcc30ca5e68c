package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%riga%", likePattern("Riga"))
	assert.Equal(t, "%riga%", likePattern("  RIGA  "))
	assert.Equal(t, "%%", likePattern(""))
}
