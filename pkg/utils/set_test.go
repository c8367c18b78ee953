package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := SetFrom("a", "b", "a")
	assert.Equal(t, 2, set.Size())
	assert.True(t, set.Contains("a"))
	assert.False(t, set.Contains("c"))
	assert.ElementsMatch(t, []string{"a", "b"}, set.Items())

	set.Remove("a")
	assert.False(t, set.Contains("a"))
	assert.Equal(t, 1, set.Size())
}
